package dialect

import "sync"

// Registry maps meta-schema URIs to previously loaded schema documents. It is
// safe for concurrent use: many Filter calls may look up entries while
// registration of new meta-schemas is serialized. The resolver never mutates
// a registry.
type Registry struct {
	mu    sync.RWMutex
	byURI map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byURI: make(map[string]*Schema)}
}

// Register stores the document under the given meta-schema URI, replacing any
// previous entry. URIs are matched in canonical form, so the draft-6/7
// trailing-fragment spelling and the http/https split do not produce distinct
// entries.
func (r *Registry) Register(uri string, s *Schema) {
	if uri == "" || s == nil {
		return
	}
	r.mu.Lock()
	r.byURI[canonicalURI(uri)] = s
	r.mu.Unlock()
}

// Lookup returns the document registered under uri, if any.
func (r *Registry) Lookup(uri string) (*Schema, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	s, ok := r.byURI[canonicalURI(uri)]
	r.mu.RUnlock()
	return s, ok
}

// Len reports the number of registered documents.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	n := len(r.byURI)
	r.mu.RUnlock()
	return n
}
