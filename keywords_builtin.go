package dialect

// Built-in keyword vocabulary with per-draft availability. Keywords that are
// defined identically across all known drafts are registered with the full
// set; the interesting entries are the ones that appeared or were retired at
// a draft boundary.
func init() {
	// core keywords
	RegisterKeyword("$schema", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("$id", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("$ref", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("$comment", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("$vocabulary", Draft2019_09, Draft2020_12)
	RegisterKeyword("$anchor", Draft2019_09, Draft2020_12)
	RegisterKeyword("$recursiveRef", Draft2019_09)
	RegisterKeyword("$recursiveAnchor", Draft2019_09)
	RegisterKeyword("$dynamicRef", Draft2020_12)
	RegisterKeyword("$dynamicAnchor", Draft2020_12)
	RegisterKeyword("$defs", Draft2019_09, Draft2020_12)
	RegisterKeyword("definitions", Draft6, Draft7)

	// annotation keywords
	RegisterKeyword("title", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("description", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("default", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("examples", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("readOnly", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("writeOnly", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("deprecated", Draft2019_09, Draft2020_12)

	// general validation
	RegisterKeyword("type", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("enum", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("const", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("format", Draft6, Draft7, Draft2019_09, Draft2020_12)

	// numeric keywords
	RegisterKeyword("multipleOf", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("maximum", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("exclusiveMaximum", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("minimum", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("exclusiveMinimum", Draft6, Draft7, Draft2019_09, Draft2020_12)

	// string keywords
	RegisterKeyword("maxLength", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("minLength", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("pattern", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("contentEncoding", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("contentMediaType", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("contentSchema", Draft2019_09, Draft2020_12)

	// array keywords; additionalItems was replaced by prefixItems+items in
	// 2020-12
	RegisterKeyword("items", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("additionalItems", Draft6, Draft7, Draft2019_09)
	RegisterKeyword("prefixItems", Draft2020_12)
	RegisterKeyword("maxItems", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("minItems", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("uniqueItems", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("contains", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("maxContains", Draft2019_09, Draft2020_12)
	RegisterKeyword("minContains", Draft2019_09, Draft2020_12)
	RegisterKeyword("unevaluatedItems", Draft2019_09, Draft2020_12)

	// object keywords; dependencies split into dependentSchemas and
	// dependentRequired in 2019-09
	RegisterKeyword("properties", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("patternProperties", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("additionalProperties", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("propertyNames", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("required", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("maxProperties", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("minProperties", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("dependencies", Draft6, Draft7)
	RegisterKeyword("dependentSchemas", Draft2019_09, Draft2020_12)
	RegisterKeyword("dependentRequired", Draft2019_09, Draft2020_12)
	RegisterKeyword("unevaluatedProperties", Draft2019_09, Draft2020_12)

	// applicator keywords; if/then/else arrived in draft 7
	RegisterKeyword("allOf", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("anyOf", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("oneOf", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("not", Draft6, Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("if", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("then", Draft7, Draft2019_09, Draft2020_12)
	RegisterKeyword("else", Draft7, Draft2019_09, Draft2020_12)
}
