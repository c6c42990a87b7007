package jsongen

// Pair is one member of a flat object built with Object.
type Pair struct {
	Key   string
	Value any
}

// M is shorthand for a Pair.
func M(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Object renders a single object with the given members in order. Values
// follow the rules of Generator.Value.
func Object(members ...Pair) ([]byte, error) {
	g := New()
	if err := g.object(members); err != nil {
		return nil, err
	}
	return g.Finish()
}

// MustObject is like Object but panics if a member value has an unsupported
// type. Payloads built from literal keys and typed values never fail.
func MustObject(members ...Pair) []byte {
	b, err := Object(members...)
	if err != nil {
		panic(err)
	}
	return b
}

func (g *Generator) object(members []Pair) error {
	if err := g.BeginObject(); err != nil {
		return err
	}
	for _, m := range members {
		if err := g.Member(m.Key); err != nil {
			return err
		}
		if err := g.Value(m.Value); err != nil {
			return err
		}
	}
	return g.EndObject()
}
