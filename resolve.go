package dialect

import "fmt"

// RefPolicy describes how the $ref keyword interacts with its siblings under
// a given dialect.
type RefPolicy int

const (
	// PolicyDeferred means chain resolution could not determine a dialect;
	// the orchestrator decides the policy from the explicit override.
	PolicyDeferred RefPolicy = iota
	// RefReplacesSiblings is the drafts 6/7 rule: a $ref keyword replaces the
	// entire schema object it appears in, and siblings are ignored.
	RefReplacesSiblings
	// RefAsAnnotation is the 2019-09/2020-12 rule: $ref is an ordinary
	// applicator and siblings are evaluated normally.
	RefAsAnnotation
)

func (p RefPolicy) String() string {
	switch p {
	case RefReplacesSiblings:
		return "ref-replaces-siblings"
	case RefAsAnnotation:
		return "ref-as-annotation"
	default:
		return "deferred"
	}
}

// refPolicyFor returns the sibling policy a terminal draft dictates.
func refPolicyFor(d Draft) RefPolicy {
	switch d {
	case Draft6, Draft7:
		return RefReplacesSiblings
	case Draft2019_09, Draft2020_12:
		return RefAsAnnotation
	default:
		return PolicyDeferred
	}
}

// ResolveDialect walks the chain of self-declared meta-schemas starting at
// startURI until it reaches a canonical draft URI. A URI that is neither
// canonical nor registered ends the walk with DraftUnspecified and
// PolicyDeferred; the caller falls back to its explicit override. A chain
// that revisits a URI is malformed and yields a cyclic_chain error.
//
// The registry is only read; a nil registry behaves as an empty one.
func ResolveDialect(startURI string, reg *Registry) (Draft, RefPolicy, error) {
	uri := startURI
	var visited map[string]struct{}
	for uri != "" {
		if d := IdentifyDraft(uri); d != DraftUnspecified {
			return d, refPolicyFor(d), nil
		}
		key := canonicalURI(uri)
		if _, seen := visited[key]; seen {
			return DraftUnspecified, PolicyDeferred, Issues{Issue{
				Code:    CodeCyclicChain,
				Path:    uri,
				Message: fmt.Sprintf("meta-schema chain starting at %q revisits %q", startURI, uri),
				Hint:    "break the $schema cycle among the registered meta-schemas",
			}}
		}
		if visited == nil {
			visited = make(map[string]struct{})
		}
		visited[key] = struct{}{}

		meta, ok := reg.Lookup(uri)
		if !ok {
			// Unregistered mid-chain URI: resolution cannot complete. Not an
			// error; the orchestrator records that it fell back.
			return DraftUnspecified, PolicyDeferred, nil
		}
		uri = meta.MetaSchema()
	}
	return DraftUnspecified, PolicyDeferred, nil
}
