package dialect

import "sync"

// draftSet is a small bitset over the concrete drafts.
type draftSet uint8

func (s draftSet) has(d Draft) bool { return s&(1<<uint(d)) != 0 }

func setOf(drafts ...Draft) draftSet {
	var s draftSet
	for _, d := range drafts {
		if d != DraftUnspecified {
			s |= 1 << uint(d)
		}
	}
	return s
}

// The capability table maps a keyword name to the set of drafts it is defined
// for. It is populated at init from the built-in vocabulary and may be
// extended via RegisterKeyword; reads vastly outnumber writes, so it is
// guarded by an RWMutex rather than copied per call.
var (
	capMu      sync.RWMutex
	capability = map[string]draftSet{}
)

// RegisterKeyword declares (or extends) the set of drafts a keyword is
// defined for. Registering with no drafts is a no-op: a keyword absent from
// the table is dialect-agnostic already.
func RegisterKeyword(name string, drafts ...Draft) {
	set := setOf(drafts...)
	if set == 0 {
		return
	}
	capMu.Lock()
	capability[name] |= set
	capMu.Unlock()
}

// Supports reports whether the keyword is defined for draft d. Keywords with
// no declared draft set are dialect-agnostic and supported everywhere; this
// keeps custom and pre-tagging structural keywords from being silently
// dropped by filtering.
func Supports(kw Keyword, d Draft) bool {
	if d == DraftUnspecified {
		return true
	}
	capMu.RLock()
	set, ok := capability[kw.Name]
	capMu.RUnlock()
	if !ok || set == 0 {
		return true
	}
	return set.has(d)
}
