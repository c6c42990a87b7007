package jsonstream

import (
	"fmt"
	"strconv"
	"strings"
)

// Extractor consumes exactly one JSON value and converts it.
type Extractor[V any] func(s *Stream) (V, error)

// Scalar extractors accept null as the zero value: a forge omitting a value is
// not the same as a forge changing its type.

// GetInt extracts an integer number.
func GetInt(s *Stream) (int, error) {
	n, err := GetInt64(s)
	return int(n), err
}

// GetInt64 extracts a 64 bit integer number.
func GetInt64(s *Stream) (int64, error) {
	tok, err := scalar(s, Number)
	if err != nil || tok.Kind == Null {
		return 0, err
	}
	n, err := tok.Num.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, tok.Num)
	}
	return n, nil
}

// GetFloat extracts a floating point number.
func GetFloat(s *Stream) (float64, error) {
	tok, err := scalar(s, Number)
	if err != nil || tok.Kind == Null {
		return 0, err
	}
	f, err := tok.Num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, tok.Num)
	}
	return f, nil
}

// GetBool extracts a boolean.
func GetBool(s *Stream) (bool, error) {
	tok, err := scalar(s, Bool)
	return tok.Bool, err
}

// GetBoolRelaxed extracts a boolean that some forges encode as 0/1.
func GetBoolRelaxed(s *Stream) (bool, error) {
	tok, err := s.Next()
	if err != nil {
		return false, err
	}
	switch tok.Kind {
	case Bool:
		return tok.Bool, nil
	case Null:
		return false, nil
	case Number:
		return tok.Num.String() != "0", nil
	}
	return false, mismatch(Bool, tok.Kind)
}

// GetString extracts a string.
func GetString(s *Stream) (string, error) {
	tok, err := scalar(s, String)
	return tok.Str, err
}

// GetStringView extracts a string as raw bytes.
func GetStringView(s *Stream) ([]byte, error) {
	tok, err := scalar(s, String)
	if err != nil || tok.Kind == Null {
		return nil, err
	}
	return []byte(tok.Str), nil
}

// GetID extracts an identifier that may be encoded as a string or a number.
func GetID(s *Stream) (string, error) {
	tok, err := s.Next()
	if err != nil {
		return "", err
	}
	switch tok.Kind {
	case String:
		return tok.Str, nil
	case Number:
		return tok.Num.String(), nil
	case Null:
		return "", nil
	}
	return "", mismatch(String, tok.Kind)
}

// GetParseInt extracts an integer that may be encoded inside a string. A
// trailing '+' on strings ("1000+") is dropped.
func GetParseInt(s *Stream) (int, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case Null:
		return 0, nil
	case Number:
		n, err := tok.Num.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, tok.Num)
		}
		return int(n), nil
	case String:
		n, err := strconv.Atoi(strings.TrimSuffix(tok.Str, "+"))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok.Str)
		}
		return n, nil
	}
	return 0, mismatch(Number, tok.Kind)
}

// GetParseFloat extracts a float that may be encoded inside a string.
func GetParseFloat(s *Stream) (float64, error) {
	tok, err := s.Next()
	if err != nil {
		return 0, err
	}
	var raw string
	switch tok.Kind {
	case Null:
		return 0, nil
	case Number:
		raw = tok.Num.String()
	case String:
		raw = tok.Str
	default:
		return 0, mismatch(Number, tok.Kind)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return f, nil
}

// GetUser extracts a user name. Forges send either a plain string or a user
// object carrying "login" (GitHub, Gitea) or "username" (GitLab).
func GetUser(s *Stream) (string, error) {
	return nameFromObject(s, "login", "username")
}

// GetLabel extracts a label name from a label object or a plain string.
func GetLabel(s *Stream) (string, error) {
	return nameFromObject(s, "name")
}

// GetGitHubColour extracts a "rrggbb" colour.
func GetGitHubColour(s *Stream) (uint32, error) {
	return colour(s)
}

// GetGitLabColour extracts a "#rrggbb" colour.
func GetGitLabColour(s *Stream) (uint32, error) {
	return colour(s)
}

// GetIsString reports whether the next value is a string and consumes it.
func GetIsString(s *Stream) (bool, error) {
	kind, err := s.Peek()
	if err != nil {
		return false, err
	}
	return kind == String, SkipValue(s)
}

// SkipValue consumes one complete value, including nested objects and arrays.
func SkipValue(s *Stream) error {
	depth := 0
	for {
		tok, err := s.Next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case ObjectStart, ArrayStart:
			depth++
		case ObjectEnd, ArrayEnd:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: %s where a value was expected", ErrUnexpectedToken, tok.Kind)
			}
		case EOF:
			return ErrUnexpectedEOF
		}
		if depth == 0 {
			return nil
		}
	}
}

// ForEachMember consumes an object and calls fn once per key, with the stream
// positioned at the member value. fn must consume exactly that value.
func ForEachMember(s *Stream, fn func(key string) error) error {
	if _, err := s.Expect(ObjectStart); err != nil {
		return err
	}
	for {
		tok, err := s.Next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case ObjectEnd:
			return nil
		case String:
			if err := fn(tok.Str); err != nil {
				return err
			}
		case EOF:
			return fmt.Errorf("%w: unterminated object", ErrUnexpectedEOF)
		default:
			return fmt.Errorf("%w: %s inside object", ErrUnexpectedToken, tok.Kind)
		}
	}
}

// ForEachElement consumes an array and calls fn once per element, with the
// stream positioned at the element. fn must consume exactly that element.
func ForEachElement(s *Stream, fn func(index int) error) error {
	if _, err := s.Expect(ArrayStart); err != nil {
		return err
	}
	for i := 0; ; i++ {
		kind, err := s.Peek()
		if err != nil {
			return err
		}
		switch kind {
		case ArrayEnd:
			_, err := s.Next()
			return err
		case EOF:
			return fmt.Errorf("%w: unterminated array", ErrUnexpectedEOF)
		case ObjectEnd:
			return fmt.Errorf("%w: %s inside array", ErrUnexpectedToken, kind)
		}
		if err := fn(i); err != nil {
			return err
		}
	}
}

func nameFromObject(s *Stream, keys ...string) (string, error) {
	kind, err := s.Peek()
	if err != nil {
		return "", err
	}
	switch kind {
	case Null:
		_, err := s.Next()
		return "", err
	case String:
		return GetString(s)
	case ObjectStart:
	default:
		_, err := s.Next()
		if err != nil {
			return "", err
		}
		return "", mismatch(ObjectStart, kind)
	}

	var name string
	err = ForEachMember(s, func(key string) error {
		for _, k := range keys {
			if key == k {
				v, err := GetString(s)
				if err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
				name = v
				return nil
			}
		}
		return SkipValue(s)
	})
	return name, err
}

func colour(s *Stream) (uint32, error) {
	str, err := GetString(s)
	if err != nil || str == "" {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(str, "#"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColour, str)
	}
	return uint32(v), nil
}

func scalar(s *Stream, want Kind) (Token, error) {
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind == want || tok.Kind == Null {
		return tok, nil
	}
	return tok, mismatch(want, tok.Kind)
}

func mismatch(want, got Kind) error {
	if got == EOF {
		return fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, want)
	}
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}
