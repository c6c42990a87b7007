package jsongen

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type scope uint8

const (
	scopeObject scope = iota + 1
	scopeArray
)

// Generator is a scope-checked JSON emitter. The zero value is ready to use.
// Invalid operations return an error and leave the buffer untouched.
type Generator struct {
	buf      []byte
	scopes   []scope
	first    bool
	awaiting bool
	rooted   bool
}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// BeginObject opens an object.
func (g *Generator) BeginObject() error {
	return g.open(scopeObject, '{')
}

// EndObject closes the innermost object.
func (g *Generator) EndObject() error {
	return g.close(scopeObject, '}')
}

// BeginArray opens an array.
func (g *Generator) BeginArray() error {
	return g.open(scopeArray, '[')
}

// EndArray closes the innermost array.
func (g *Generator) EndArray() error {
	return g.close(scopeArray, ']')
}

// Member writes an object key. The next call must emit its value.
func (g *Generator) Member(key string) error {
	if g.top() != scopeObject {
		return ErrNotInObject
	}
	if g.awaiting {
		return ErrAwaitingValue
	}
	if !g.first {
		g.buf = append(g.buf, ',')
	}
	g.first = false
	g.buf = appendQuoted(g.buf, key)
	g.buf = append(g.buf, ':')
	g.awaiting = true
	return nil
}

// String writes a string value.
func (g *Generator) String(v string) error {
	if err := g.beginValue(); err != nil {
		return err
	}
	g.buf = appendQuoted(g.buf, v)
	return nil
}

// Number writes an integer value.
func (g *Generator) Number(v int64) error {
	if err := g.beginValue(); err != nil {
		return err
	}
	g.buf = strconv.AppendInt(g.buf, v, 10)
	return nil
}

// Bool writes a boolean value.
func (g *Generator) Bool(v bool) error {
	if err := g.beginValue(); err != nil {
		return err
	}
	g.buf = strconv.AppendBool(g.buf, v)
	return nil
}

// Null writes null.
func (g *Generator) Null() error {
	if err := g.beginValue(); err != nil {
		return err
	}
	g.buf = append(g.buf, "null"...)
	return nil
}

// Value writes a string, bool, integer, nil, a slice of strings or integers,
// or a nested object given as a slice of Pair.
func (g *Generator) Value(v any) error {
	switch v := v.(type) {
	case nil:
		return g.Null()
	case string:
		return g.String(v)
	case bool:
		return g.Bool(v)
	case int:
		return g.Number(int64(v))
	case int64:
		return g.Number(v)
	case []string:
		return array(g, v, g.String)
	case []int:
		return array(g, v, func(n int) error { return g.Number(int64(n)) })
	case []int64:
		return array(g, v, g.Number)
	case []Pair:
		return g.object(v)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// Buffered returns the bytes emitted so far.
func (g *Generator) Buffered() []byte {
	return g.buf
}

// Finish returns the document once every scope is closed.
func (g *Generator) Finish() ([]byte, error) {
	if len(g.scopes) > 0 {
		return nil, fmt.Errorf("%w: %d open", ErrUnterminated, len(g.scopes))
	}
	if !g.rooted {
		return nil, ErrEmptyDocument
	}
	return g.buf, nil
}

func (g *Generator) open(s scope, c byte) error {
	if err := g.beginValue(); err != nil {
		return err
	}
	g.buf = append(g.buf, c)
	g.scopes = append(g.scopes, s)
	g.first = true
	return nil
}

func (g *Generator) close(s scope, c byte) error {
	if g.top() != s {
		return ErrScopeMismatch
	}
	if g.awaiting {
		return ErrAwaitingValue
	}
	g.buf = append(g.buf, c)
	g.scopes = g.scopes[:len(g.scopes)-1]
	g.first = false
	return nil
}

// beginValue validates that a value may be written here and emits the
// separator that precedes it.
func (g *Generator) beginValue() error {
	switch g.top() {
	case 0:
		if g.rooted {
			return ErrRootWritten
		}
		g.rooted = true
	case scopeObject:
		if !g.awaiting {
			return ErrMissingMember
		}
		g.awaiting = false
	case scopeArray:
		if !g.first {
			g.buf = append(g.buf, ',')
		}
		g.first = false
	}
	return nil
}

func (g *Generator) top() scope {
	if len(g.scopes) == 0 {
		return 0
	}
	return g.scopes[len(g.scopes)-1]
}

func array[V any](g *Generator, values []V, emit func(V) error) error {
	if err := g.BeginArray(); err != nil {
		return err
	}
	for _, v := range values {
		if err := emit(v); err != nil {
			return err
		}
	}
	return g.EndArray()
}

const hex = "0123456789abcdef"

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				buf = append(buf, '\\', c)
			case c == '\n':
				buf = append(buf, '\\', 'n')
			case c == '\r':
				buf = append(buf, '\\', 'r')
			case c == '\t':
				buf = append(buf, '\\', 't')
			case c == '\b':
				buf = append(buf, '\\', 'b')
			case c == '\f':
				buf = append(buf, '\\', 'f')
			case c < 0x20:
				buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			default:
				buf = append(buf, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, `\ufffd`...)
		} else {
			buf = append(buf, s[i:i+size]...)
		}
		i += size
	}
	return append(buf, '"')
}
