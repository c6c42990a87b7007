package jsonstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind is the type of a single token in the stream.
type Kind uint8

// Token kinds.
const (
	Invalid Kind = iota
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
	String
	Number
	Bool
	Null
	EOF
)

var kindNames = [...]string{
	Invalid:     "invalid",
	ObjectStart: "object start",
	ObjectEnd:   "object end",
	ArrayStart:  "array start",
	ArrayEnd:    "array end",
	String:      "string",
	Number:      "number",
	Bool:        "bool",
	Null:        "null",
	EOF:         "end of input",
}

// String returns a human readable name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Token is a single structural or scalar event.
// Object keys are reported as String tokens.
type Token struct {
	Kind Kind
	Str  string
	Num  json.Number
	Bool bool
}

// Stream is a forward-only cursor over a JSON document.
// It holds at most one token of lookahead and never rewinds.
type Stream struct {
	dec    *json.Decoder
	next   Token
	peeked bool
}

// New creates a stream reading from r.
func New(r io.Reader) *Stream {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Stream{dec: dec}
}

// NewBytes creates a stream over an in-memory buffer.
func NewBytes(b []byte) *Stream {
	return New(bytes.NewReader(b))
}

// Peek returns the kind of the next token without consuming it.
func (s *Stream) Peek() (Kind, error) {
	if !s.peeked {
		tok, err := s.read()
		if err != nil {
			return Invalid, err
		}
		s.next = tok
		s.peeked = true
	}
	return s.next.Kind, nil
}

// Next consumes and returns the next token.
func (s *Stream) Next() (Token, error) {
	if s.peeked {
		s.peeked = false
		return s.next, nil
	}
	return s.read()
}

// Offset returns the input offset of the stream, for diagnostics.
func (s *Stream) Offset() int64 {
	return s.dec.InputOffset()
}

// Expect consumes the next token and fails unless it has the given kind.
func (s *Stream) Expect(kind Kind) (Token, error) {
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind == kind {
		return tok, nil
	}
	if tok.Kind == EOF {
		return tok, fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, kind)
	}
	return tok, fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, kind, tok.Kind)
}

func (s *Stream) read() (Token, error) {
	raw, err := s.dec.Token()
	if errors.Is(err, io.EOF) {
		return Token{Kind: EOF}, nil
	}
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	switch v := raw.(type) {
	case json.Delim:
		switch v {
		case '{':
			return Token{Kind: ObjectStart}, nil
		case '}':
			return Token{Kind: ObjectEnd}, nil
		case '[':
			return Token{Kind: ArrayStart}, nil
		default:
			return Token{Kind: ArrayEnd}, nil
		}
	case string:
		return Token{Kind: String, Str: v}, nil
	case json.Number:
		return Token{Kind: Number, Num: v}, nil
	case bool:
		return Token{Kind: Bool, Bool: v}, nil
	case nil:
		return Token{Kind: Null}, nil
	}

	return Token{}, fmt.Errorf("%w: %T", ErrUnexpectedToken, raw)
}
