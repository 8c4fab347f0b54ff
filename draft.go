package dialect

import (
	"fmt"
	"strings"
)

// Draft identifies a JSON Schema dialect revision. Drafts carry no ordering
// semantics; compare with == only.
type Draft int

const (
	// DraftUnspecified means the dialect is not (yet) known. Filtering under
	// DraftUnspecified is the identity: no keyword can be excluded without
	// knowing which dialect governs the document.
	DraftUnspecified Draft = iota
	Draft6
	Draft7
	Draft2019_09
	Draft2020_12
)

// Canonical meta-schema URIs. Drafts 6 and 7 were published under the http
// scheme with a trailing empty fragment; documents in the wild use both forms,
// so IdentifyDraft normalizes before matching.
const (
	MetaSchema6    = "http://json-schema.org/draft-06/schema#"
	MetaSchema7    = "http://json-schema.org/draft-07/schema#"
	MetaSchema2019 = "https://json-schema.org/draft/2019-09/schema"
	MetaSchema2020 = "https://json-schema.org/draft/2020-12/schema"
)

func (d Draft) String() string {
	switch d {
	case Draft6:
		return "draft-06"
	case Draft7:
		return "draft-07"
	case Draft2019_09:
		return "draft 2019-09"
	case Draft2020_12:
		return "draft 2020-12"
	default:
		return "unspecified"
	}
}

// MetaSchemaURI returns the canonical meta-schema URI for d, or "" for
// DraftUnspecified.
func (d Draft) MetaSchemaURI() string {
	switch d {
	case Draft6:
		return MetaSchema6
	case Draft7:
		return MetaSchema7
	case Draft2019_09:
		return MetaSchema2019
	case Draft2020_12:
		return MetaSchema2020
	default:
		return ""
	}
}

// canonicalURI folds the forms under which a meta-schema URI circulates:
// trailing empty fragments are dropped and the http/https scheme split is
// ignored, for any host. json-schema.org itself moved from http to https
// between draft 7 and 2019-09 without re-publishing the old documents, and
// custom meta-schema hosts migrate the same way.
func canonicalURI(uri string) string {
	uri = strings.TrimSuffix(uri, "#")
	uri = strings.TrimPrefix(uri, "http://")
	uri = strings.TrimPrefix(uri, "https://")
	return uri
}

var draftByURI = map[string]Draft{
	canonicalURI(MetaSchema6):    Draft6,
	canonicalURI(MetaSchema7):    Draft7,
	canonicalURI(MetaSchema2019): Draft2019_09,
	canonicalURI(MetaSchema2020): Draft2020_12,
}

// IdentifyDraft maps a meta-schema URI to the dialect it denotes. Unknown or
// empty URIs yield DraftUnspecified. Pure lookup; no side effects.
func IdentifyDraft(uri string) Draft {
	if uri == "" {
		return DraftUnspecified
	}
	return draftByURI[canonicalURI(uri)]
}

// ParseDraft converts a user-facing draft label ("6", "draft-07", "2020-12",
// ...) into a Draft. Intended for flag and config parsing.
func ParseDraft(s string) (Draft, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return DraftUnspecified, nil
	case "6", "06", "draft-06", "draft6":
		return Draft6, nil
	case "7", "07", "draft-07", "draft7":
		return Draft7, nil
	case "2019-09", "draft2019-09", "201909":
		return Draft2019_09, nil
	case "2020-12", "draft2020-12", "202012":
		return Draft2020_12, nil
	default:
		return DraftUnspecified, fmt.Errorf("dialect: unknown draft %q", s)
	}
}
