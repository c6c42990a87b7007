package schema

import "github.com/lerenn/gcli/pkg/jsonstream"

// Value maps a member through a scalar extractor.
func Value[T, V any](name string, extract jsonstream.Extractor[V], get func(*T) *V) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			v, err := extract(s)
			if err != nil {
				return err
			}
			*get(rec) = v
			return nil
		},
	}
}

// Int maps an integer member.
func Int[T any](name string, get func(*T) *int) Field[T] {
	return Value(name, jsonstream.GetInt, get)
}

// Int64 maps a 64 bit integer member.
func Int64[T any](name string, get func(*T) *int64) Field[T] {
	return Value(name, jsonstream.GetInt64, get)
}

// Float maps a floating point member.
func Float[T any](name string, get func(*T) *float64) Field[T] {
	return Value(name, jsonstream.GetFloat, get)
}

// String maps a string member.
func String[T any](name string, get func(*T) *string) Field[T] {
	return Value(name, jsonstream.GetString, get)
}

// Bool maps a boolean member.
func Bool[T any](name string, get func(*T) *bool) Field[T] {
	return Value(name, jsonstream.GetBool, get)
}

// User maps a user object (or plain user name) to its name.
func User[T any](name string, get func(*T) *string) Field[T] {
	return Value(name, jsonstream.GetUser, get)
}

// Present sets the flag when the member exists with a non-null value.
// The value itself is skipped.
func Present[T any](name string, get func(*T) *bool) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			kind, err := s.Peek()
			if err != nil {
				return err
			}
			*get(rec) = kind != jsonstream.Null
			return jsonstream.SkipValue(s)
		},
	}
}

// List maps an array member through a per-element extractor. A null member
// leaves the list empty.
func List[T, V any](name string, extract jsonstream.Extractor[V], get func(*T) *[]V) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			*get(rec) = nil
			if null, err := skipNull(s); null || err != nil {
				return err
			}
			var list []V
			err := jsonstream.ForEachElement(s, func(_ int) error {
				v, err := extract(s)
				if err != nil {
					return err
				}
				list = append(list, v)
				return nil
			})
			if err != nil {
				return err
			}
			*get(rec) = list
			return nil
		},
	}
}

// Nested maps an object member to a sub-record with its own schema.
func Nested[T, U any](name string, sub *Object[U], get func(*T) *U) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			var zero U
			*get(rec) = zero
			if null, err := skipNull(s); null || err != nil {
				return err
			}
			return sub.Parse(s, get(rec))
		},
	}
}

// ObjectList maps an array of objects to a slice of sub-records.
func ObjectList[T, U any](name string, sub *Object[U], get func(*T) *[]U) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			*get(rec) = nil
			if null, err := skipNull(s); null || err != nil {
				return err
			}
			var list []U
			if err := sub.ParseArray(s, &list, -1); err != nil {
				return err
			}
			*get(rec) = list
			return nil
		},
	}
}

// Flatten parses a nested object with a schema over the same record type, so
// members like {"head": {"sha": ...}} land directly in the outer record.
func Flatten[T any](name string, sub *Object[T]) Field[T] {
	return Field[T]{
		Name: name,
		parse: func(s *jsonstream.Stream, rec *T) error {
			if null, err := skipNull(s); null || err != nil {
				return err
			}
			return sub.parseInto(s, rec)
		},
	}
}

// Custom hands the member value to fn, for wire shapes the declarative kinds
// cannot express. fn must consume exactly one value. It runs once per
// occurrence of the member, so fn decides how repeated keys combine.
func Custom[T any](name string, fn func(s *jsonstream.Stream, rec *T) error) Field[T] {
	return Field[T]{Name: name, parse: fn}
}

func skipNull(s *jsonstream.Stream) (bool, error) {
	kind, err := s.Peek()
	if err != nil || kind != jsonstream.Null {
		return false, err
	}
	_, err = s.Next()
	return true, err
}
