package schema

import (
	"errors"
	"fmt"

	"github.com/lerenn/gcli/pkg/jsonstream"
)

// Field describes one wire member of an object and where it lands in the record.
type Field[T any] struct {
	Name  string
	parse func(s *jsonstream.Stream, rec *T) error
}

// Object is the schema of a record type T.
type Object[T any] struct {
	name   string
	fields []Field[T]
	index  map[string]int
}

// PageParser consumes one page worth of records, appending at most max of
// them to out (max < 0 means no limit).
type PageParser[T any] func(s *jsonstream.Stream, out *[]T, max int) error

// NewObject builds a schema. Duplicate wire names are a programming error.
func NewObject[T any](name string, fields ...Field[T]) *Object[T] {
	o := &Object[T]{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := o.index[f.Name]; dup {
			panic(fmt.Sprintf("schema %s: duplicate field %q", name, f.Name))
		}
		o.index[f.Name] = i
	}
	return o
}

// Name returns the record name used in diagnostics.
func (o *Object[T]) Name() string {
	return o.name
}

// Parse consumes one object from s. out is left untouched unless the whole
// object parsed successfully. When a member is repeated the last occurrence
// wins, as with encoding/json.
func (o *Object[T]) Parse(s *jsonstream.Stream, out *T) error {
	var rec T
	if err := o.parseInto(s, &rec); err != nil {
		return err
	}
	*out = rec
	return nil
}

// ParseArray consumes an array of objects and appends the records to out.
// Once max records are parsed the remaining elements are skipped without being
// materialised. On error out is left untouched.
func (o *Object[T]) ParseArray(s *jsonstream.Stream, out *[]T, max int) error {
	var list []T
	err := jsonstream.ForEachElement(s, func(_ int) error {
		if max >= 0 && len(list) >= max {
			return jsonstream.SkipValue(s)
		}
		var rec T
		if err := o.Parse(s, &rec); err != nil {
			return err
		}
		list = append(list, rec)
		return nil
	})
	if err != nil {
		return o.wrap("", err)
	}
	*out = append(*out, list...)
	return nil
}

// List parses an array of objects into a new slice.
func (o *Object[T]) List(s *jsonstream.Stream, max int) ([]T, error) {
	var list []T
	if err := o.ParseArray(s, &list, max); err != nil {
		return nil, err
	}
	return list, nil
}

// Envelope returns a page parser for responses that wrap the record array in
// an object member, like {"items": [...]}. Other members are skipped.
func Envelope[T any](key string, o *Object[T]) PageParser[T] {
	return func(s *jsonstream.Stream, out *[]T, max int) error {
		var list []T
		found := false
		err := jsonstream.ForEachMember(s, func(k string) error {
			if k != key {
				return jsonstream.SkipValue(s)
			}
			found = true
			list = nil
			return o.ParseArray(s, &list, max)
		})
		if err != nil {
			return o.wrap(key, err)
		}
		if !found {
			return &StructuralError{Record: o.name, Field: key, Err: errors.New("missing envelope member")}
		}
		*out = append(*out, list...)
		return nil
	}
}

func (o *Object[T]) parseInto(s *jsonstream.Stream, rec *T) error {
	err := jsonstream.ForEachMember(s, func(key string) error {
		i, known := o.index[key]
		if !known {
			return jsonstream.SkipValue(s)
		}
		if err := o.fields[i].parse(s, rec); err != nil {
			return &StructuralError{Record: o.name, Field: key, Err: err}
		}
		return nil
	})
	return o.wrap("", err)
}

// End checks that nothing but whitespace follows the document parsed from s.
// Leftovers are reported against record.
func End(s *jsonstream.Stream, record string) error {
	tok, err := s.Next()
	if err == nil && tok.Kind == jsonstream.EOF {
		return nil
	}
	if err == nil {
		err = fmt.Errorf("%w: %s after end of document", jsonstream.ErrUnexpectedToken, tok.Kind)
	}
	return &StructuralError{Record: record, Err: err}
}

func (o *Object[T]) wrap(field string, err error) error {
	if err == nil {
		return nil
	}
	var se *StructuralError
	if errors.As(err, &se) {
		return err
	}
	return &StructuralError{Record: o.name, Field: field, Err: err}
}
