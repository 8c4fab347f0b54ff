package dialect_test

import (
	"testing"

	dialect "github.com/openvocab/dialect"
)

func TestIdentifyDraft_CanonicalURIs(t *testing.T) {
	cases := []struct {
		uri  string
		want dialect.Draft
	}{
		{dialect.MetaSchema6, dialect.Draft6},
		{dialect.MetaSchema7, dialect.Draft7},
		{dialect.MetaSchema2019, dialect.Draft2019_09},
		{dialect.MetaSchema2020, dialect.Draft2020_12},
		// spelling variants seen in the wild
		{"http://json-schema.org/draft-07/schema", dialect.Draft7},
		{"https://json-schema.org/draft-06/schema#", dialect.Draft6},
		{"https://json-schema.org/draft/2020-12/schema#", dialect.Draft2020_12},
		{"https://example.com/my/schema", dialect.DraftUnspecified},
		{"", dialect.DraftUnspecified},
	}
	for _, tc := range cases {
		if got := dialect.IdentifyDraft(tc.uri); got != tc.want {
			t.Errorf("IdentifyDraft(%q) = %v, want %v", tc.uri, got, tc.want)
		}
	}
}

func TestDraft_MetaSchemaURIRoundTrip(t *testing.T) {
	for _, d := range []dialect.Draft{dialect.Draft6, dialect.Draft7, dialect.Draft2019_09, dialect.Draft2020_12} {
		if got := dialect.IdentifyDraft(d.MetaSchemaURI()); got != d {
			t.Errorf("IdentifyDraft(%v.MetaSchemaURI()) = %v", d, got)
		}
	}
	if dialect.DraftUnspecified.MetaSchemaURI() != "" {
		t.Errorf("DraftUnspecified should have no canonical URI")
	}
}

func TestParseDraft(t *testing.T) {
	cases := []struct {
		in      string
		want    dialect.Draft
		wantErr bool
	}{
		{"6", dialect.Draft6, false},
		{"draft-07", dialect.Draft7, false},
		{"2019-09", dialect.Draft2019_09, false},
		{"2020-12", dialect.Draft2020_12, false},
		{"", dialect.DraftUnspecified, false},
		{"draft-05", dialect.DraftUnspecified, true},
	}
	for _, tc := range cases {
		got, err := dialect.ParseDraft(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDraft(%q) err = %v, wantErr=%v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDraft(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
