package dialect_test

import (
	"testing"

	dialect "github.com/openvocab/dialect"
)

func TestParseSchema_KeywordsAndAccessors(t *testing.T) {
	s, err := dialect.ParseSchema([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "https://example.com/common#/defs/base",
		"type": "object",
		"minimum": 3
	}`))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if got := s.MetaSchema(); got != dialect.MetaSchema2020 {
		t.Errorf("MetaSchema() = %q", got)
	}
	target, ok := s.RefTarget()
	if !ok || target != "https://example.com/common#/defs/base" {
		t.Errorf("RefTarget() = %q, %v", target, ok)
	}
	if len(s.Keywords()) != 4 {
		t.Errorf("want 4 keywords, got %v", len(s.Keywords()))
	}
}

func TestParseSchema_DuplicateMemberRejected(t *testing.T) {
	_, err := dialect.ParseSchema([]byte(`{"$ref": "#/a", "$ref": "#/b"}`))
	iss, ok := dialect.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dialect.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
	if iss[0].Path != "/$ref" {
		t.Errorf("path = %q", iss[0].Path)
	}
}

func TestParseSchema_NonObjectRejected(t *testing.T) {
	for _, in := range []string{`true`, `[1,2]`, `"str"`, `42`} {
		if _, err := dialect.ParseSchema([]byte(in)); err == nil {
			t.Errorf("ParseSchema(%s) should fail", in)
		}
	}
}

func TestParseSchema_TrailingContentRejected(t *testing.T) {
	if _, err := dialect.ParseSchema([]byte(`{} {}`)); err == nil {
		t.Fatalf("trailing content should fail")
	}
}

func TestParseSchema_TrailingGarbageCarriesCause(t *testing.T) {
	// not a JSON token at all: the decoder error must be preserved, not
	// reported as well-formed trailing content
	_, err := dialect.ParseSchema([]byte(`{} @`))
	iss, ok := dialect.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dialect.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("decode failure after the document should carry its cause")
	}
}

func TestParseSchema_MalformedJSON(t *testing.T) {
	_, err := dialect.ParseSchema([]byte(`{"type": `))
	iss, ok := dialect.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dialect.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseSchemaYAML_Basics(t *testing.T) {
	s, err := dialect.ParseSchemaYAML([]byte(`
$schema: "http://json-schema.org/draft-07/schema#"
type: object
required: [name]
`))
	if err != nil {
		t.Fatalf("ParseSchemaYAML: %v", err)
	}
	if got := s.MetaSchema(); got != dialect.MetaSchema7 {
		t.Errorf("MetaSchema() = %q", got)
	}
	res, err := dialect.Filter(s)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if res.Draft != dialect.Draft7 {
		t.Errorf("Draft = %v", res.Draft)
	}
}

func TestParseSchemaYAML_DuplicateKeyRejected(t *testing.T) {
	_, err := dialect.ParseSchemaYAML([]byte("type: object\ntype: string\n"))
	iss, ok := dialect.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != dialect.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}

func TestParseSchemaYAML_NonMappingRejected(t *testing.T) {
	if _, err := dialect.ParseSchemaYAML([]byte(`[1, 2, 3]`)); err == nil {
		t.Fatalf("sequence root should fail")
	}
}
