package dialect

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseSchema decodes a JSON schema document into a keyword set. Only object
// documents are accepted; boolean schemas carry no keywords to filter.
//
// Decoding is token-driven rather than a plain map unmarshal: a map would
// last-wins merge duplicate members, and duplicates (notably duplicate $ref)
// are malformed input here. Numbers are preserved as json.Number.
func ParseSchema(data []byte) (*Schema, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, parseIssue("/", err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, singleIssue(CodeParseError, "/",
			fmt.Sprintf("schema document must be a JSON object, got %v", tok))
	}

	var kws []Keyword
	seen := map[string]struct{}{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, parseIssue("/", err)
		}
		key, _ := keyTok.(string)
		if _, dup := seen[key]; dup {
			return nil, singleIssue(CodeDuplicateKey, "/"+key,
				fmt.Sprintf("duplicate member %q in schema object", key))
		}
		seen[key] = struct{}{}

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, parseIssue("/"+key, err)
		}
		kws = append(kws, Keyword{Name: key, Value: v})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, parseIssue("/", err)
	}
	switch tok, err := dec.Token(); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, parseIssue("/", err)
	default:
		return nil, singleIssue(CodeParseError, "/",
			fmt.Sprintf("trailing content after schema document: %v", tok))
	}
	return &Schema{keywords: kws}, nil
}

// ParseSchemaYAML decodes a YAML schema document into a keyword set. The
// document root must be a mapping with scalar string keys; duplicate keys are
// rejected like in ParseSchema.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, parseIssue("/", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, singleIssue(CodeParseError, "/", "expected a single YAML document")
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, singleIssue(CodeParseError, "/", "schema document must be a YAML mapping")
	}

	var kws []Keyword
	seen := map[string]struct{}{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		keyNode, valNode := m.Content[i], m.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, singleIssue(CodeParseError, "/",
				fmt.Sprintf("non-string key at line %d", keyNode.Line))
		}
		if _, dup := seen[key]; dup {
			return nil, singleIssue(CodeDuplicateKey, "/"+key,
				fmt.Sprintf("duplicate member %q in schema mapping", key))
		}
		seen[key] = struct{}{}

		var v any
		if err := valNode.Decode(&v); err != nil {
			return nil, parseIssue("/"+key, err)
		}
		kws = append(kws, Keyword{Name: key, Value: v})
	}
	return &Schema{keywords: kws}, nil
}

func parseIssue(path string, err error) Issues {
	return Issues{Issue{Code: CodeParseError, Path: path, Message: err.Error(), Cause: err}}
}
