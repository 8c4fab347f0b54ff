package dialect

// Keyword is a single named validation capability attached to a schema, for
// example "type", "enum" or "$ref". The value is kept as decoded JSON/YAML;
// this package never evaluates it against instances.
type Keyword struct {
	Name  string
	Value any
}

// IsRef reports whether the keyword is the reference keyword.
func (k Keyword) IsRef() bool { return k.Name == "$ref" }

// Schema is an order-irrelevant set of keywords, constructed once and
// read-only afterwards. Source order is preserved for deterministic output,
// but carries no semantics.
type Schema struct {
	keywords []Keyword
}

// NewSchema builds a schema from the given keywords. The slice is copied; the
// caller keeps ownership of its argument.
func NewSchema(kws ...Keyword) *Schema {
	s := &Schema{keywords: make([]Keyword, len(kws))}
	copy(s.keywords, kws)
	return s
}

// Keywords returns the schema's keyword set. Callers must not mutate the
// returned slice.
func (s *Schema) Keywords() []Keyword {
	if s == nil {
		return nil
	}
	return s.keywords
}

// MetaSchema returns the URI of the meta-schema the document declares for
// itself (the value of its "$schema" keyword), or "" when absent or not a
// string.
func (s *Schema) MetaSchema() string {
	if s == nil {
		return ""
	}
	for _, k := range s.keywords {
		if k.Name == "$schema" {
			uri, _ := k.Value.(string)
			return uri
		}
	}
	return ""
}

// RefTarget returns the URI the schema's "$ref" keyword points to, if exactly
// one is present with a string value.
func (s *Schema) RefTarget() (string, bool) {
	if s == nil {
		return "", false
	}
	kw, n := findRef(s.keywords)
	if n != refOne {
		return "", false
	}
	uri, ok := kw.Value.(string)
	return uri, ok && uri != ""
}
