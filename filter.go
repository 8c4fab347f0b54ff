package dialect

// DraftSource tells how the effective draft of a Filter call was determined.
type DraftSource int

const (
	// SourceNone: no chain evidence and no explicit override; keywords pass
	// through unfiltered.
	SourceNone DraftSource = iota
	// SourceChain: the meta-schema chain reached a canonical draft URI.
	SourceChain
	// SourceOverride: the chain did not terminate and the caller's explicit
	// override was used instead.
	SourceOverride
)

func (s DraftSource) String() string {
	switch s {
	case SourceChain:
		return "chain"
	case SourceOverride:
		return "override"
	default:
		return "none"
	}
}

// Result is the outcome of a single Filter call. The effective draft is part
// of the result rather than state on the options value: options are commonly
// shared across concurrent calls, and call-specific state stored there races.
type Result struct {
	// Keywords is the applicable subset of the input, in input order.
	Keywords []Keyword
	// Draft is the dialect the call validated against; DraftUnspecified when
	// neither chain nor override produced one.
	Draft Draft
	// Source records whether Draft came from chain evidence or from the
	// override fallback, for diagnostics.
	Source DraftSource
	// Warnings carries non-fatal diagnostics, currently an unresolved_chain
	// issue when the document declared a meta-schema whose chain could not
	// be resolved. Callers that trust their registries may ignore it.
	Warnings Issues
}

// FilterOpt bundles filtering options. The zero value means no explicit draft
// override and no registry. Filter never mutates it, so a single FilterOpt
// may be shared across concurrent calls.
type FilterOpt struct {
	// Draft is the explicit dialect override. It applies only when chain
	// resolution cannot determine a dialect; chain evidence wins.
	Draft Draft
	// Registry supplies previously loaded meta-schema documents for the
	// chain walk. Nil behaves as an empty registry.
	Registry *Registry
}

// Filter resolves the dialect governing s from its own $schema declaration
// and returns the applicable subset of its keywords. See FilterKeywords.
func Filter(s *Schema, opts ...FilterOpt) (Result, error) {
	return FilterKeywords(s.Keywords(), s.MetaSchema(), opts...)
}

// FilterKeywords is the core entry point. It determines the effective dialect
// for a keyword set whose document declares startURI as its meta-schema, then
// applies the dialect's sibling-ref policy and capability filtering.
//
// Dialect determination: the meta-schema chain is walked first; if it reaches
// a canonical draft URI that draft is used, regardless of any override. If
// the walk cannot complete (no starting URI, or an unregistered URI
// mid-chain) the explicit override decides: drafts 6/7 keep the historical
// $ref-replaces-siblings rule, everything else treats $ref as an ordinary
// keyword.
//
// Errors: a cyclic meta-schema chain and a keyword set carrying more than one
// $ref are malformed input and abort the call with Issues. A registry miss is
// not an error; Result.Source exposes that the call fell back.
func FilterKeywords(kws []Keyword, startURI string, opts ...FilterOpt) (Result, error) {
	var opt FilterOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	d, pol, err := ResolveDialect(startURI, opt.Registry)
	if err != nil {
		return Result{}, err
	}
	src := SourceChain
	var warnings Issues
	if pol == PolicyDeferred {
		d = opt.Draft
		pol = RefAsAnnotation
		if d == Draft6 || d == Draft7 {
			pol = RefReplacesSiblings
		}
		src = SourceOverride
		if d == DraftUnspecified {
			src = SourceNone
		}
		if startURI != "" {
			warnings = Issues{Issue{
				Code:    CodeUnresolvedChain,
				Path:    startURI,
				Message: "meta-schema chain could not be resolved; dialect inferred by fallback",
				Hint:    "register the missing meta-schema documents or set an explicit draft override",
			}}
		}
	}

	out, err := applyPolicy(kws, d, pol)
	if err != nil {
		return Result{}, err
	}
	return Result{Keywords: out, Draft: d, Source: src, Warnings: warnings}, nil
}
