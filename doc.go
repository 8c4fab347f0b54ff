package dialect

// Package dialect decides which keywords of a JSON Schema document apply
// under the draft dialect that governs it.
//
// It provides:
//
// - Draft identification from canonical meta-schema URIs (IdentifyDraft)
// - Chain resolution across registered meta-schemas (ResolveDialect), with
//   cycle detection
// - Sibling-$ref semantics per draft era: drafts 6/7 let $ref replace its
//   whole schema object, 2019-09/2020-12 evaluate siblings normally
// - Keyword capability filtering over a static per-draft table
//   (RegisterKeyword/Supports)
//
// Design policy:
// - The effective draft of a call is part of its Result; options values are
//   shared across concurrent calls and never carry per-call state.
// - Chain evidence wins over an explicit override; overrides only decide the
//   fallback when resolution cannot complete.
// - Registries are read-only during filtering and safe for concurrent reads.
//
// Typical usage:
//
//	s, err := dialect.ParseSchema(data)
//	res, err := dialect.Filter(s, dialect.FilterOpt{Registry: reg})
//	// res.Keywords, res.Draft, res.Source
