package dialect

// refMatch is the multiplicity of $ref keywords found in one schema object.
// An explicit three-way result, so callers handle the malformed case instead
// of relying on a lookup that cannot express it.
type refMatch int

const (
	refNone refMatch = iota
	refOne
	refMany
)

// findRef scans the keyword set for $ref. With refOne the returned keyword is
// the match; otherwise it is the zero Keyword.
func findRef(kws []Keyword) (Keyword, refMatch) {
	var found Keyword
	n := refNone
	for _, k := range kws {
		if !k.IsRef() {
			continue
		}
		if n == refOne {
			return Keyword{}, refMany
		}
		found, n = k, refOne
	}
	return found, n
}

// applyPolicy produces the applicable subset of kws for the given draft and
// sibling policy. Duplicate $ref keywords are malformed input under any
// dialect and abort the call.
func applyPolicy(kws []Keyword, d Draft, p RefPolicy) ([]Keyword, error) {
	ref, n := findRef(kws)
	if n == refMany {
		return nil, singleIssue(CodeAmbiguousRef, "/",
			"schema object contains more than one $ref keyword")
	}
	if p == RefReplacesSiblings && n == refOne {
		// Historical rule: the reference replaces the whole schema object.
		return []Keyword{ref}, nil
	}
	return filterByDraft(kws, d), nil
}

// filterByDraft keeps the keywords defined for d, in input order. Without a
// known draft no keyword can be excluded, so the set passes through intact.
func filterByDraft(kws []Keyword, d Draft) []Keyword {
	if d == DraftUnspecified {
		return kws
	}
	out := make([]Keyword, 0, len(kws))
	for _, k := range kws {
		if Supports(k, d) {
			out = append(out, k)
		}
	}
	return out
}
