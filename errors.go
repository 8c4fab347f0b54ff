package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError      = "parse_error"      // malformed schema document
	CodeDuplicateKey    = "duplicate_key"    // duplicate member in a schema object
	CodeAmbiguousRef    = "ambiguous_ref"    // more than one $ref keyword in one schema
	CodeCyclicChain     = "cyclic_chain"     // meta-schema chain revisits a URI
	CodeUnresolvedChain = "unresolved_chain" // chain walk hit an unregistered URI (diagnostic)
)

// Issue represents a single dialect-resolution or parsing problem.
type Issue struct {
	Path    string // JSON Pointer into the document, or the offending URI for chain issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. ambiguous_ref at /
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, path, msg string) Issues {
	return Issues{Issue{Code: code, Path: path, Message: msg}}
}
