package entities

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tailscale/hujson"
)

// DefaultVariable is the JavaScript variable holding the versions array.
const DefaultVariable = "DOC_VERSIONS"

// trailingCommaPattern matches a comma directly before a closing bracket or brace.
var trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)

// ParseVersionsScript extracts the array assigned to variable in a script
// shaped like `var DOC_VERSIONS = [ "v1", "v2", ];` and decodes it.
//
// Behaviour:
//   - The assignment may span several lines; the first `];` after it ends the array.
//   - A trailing comma before `]` or `}` is removed before decoding.
//   - `//` and `/* */` comments inside the array are ignored.
//   - Anything but an array of strings is a ParseError; null items included.
func ParseVersionsScript(content, variable string) (VersionList, error) {
	literal, err := ExtractArrayLiteral(content, variable)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeArrayLiteral(literal)

	standard, err := hujson.Standardize([]byte(normalized))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var items []*string
	if unmarshalErr := json.Unmarshal(standard, &items); unmarshalErr != nil {
		return nil, &ParseError{Err: unmarshalErr}
	}

	versions := make(VersionList, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, &ParseError{Err: fmt.Errorf("item %d is not a string", i)}
		}
		versions = append(versions, *item)
	}
	return versions, nil
}

// ExtractArrayLiteral returns the bracketed array assigned to variable,
// brackets included.
func ExtractArrayLiteral(content, variable string) (string, error) {
	pattern, err := assignmentPattern(variable)
	if err != nil {
		return "", &ParseError{Err: err}
	}

	match := pattern.FindStringSubmatch(content)
	if len(match) < 2 {
		return "", &ParseError{Err: fmt.Errorf("%s: %w", variable, ErrVersionsNotFound)}
	}
	return match[1], nil
}

// NormalizeArrayLiteral trims the literal and drops trailing commas so it
// decodes as strict JSON.
func NormalizeArrayLiteral(literal string) string {
	return trailingCommaPattern.ReplaceAllString(strings.TrimSpace(literal), "$1")
}

func assignmentPattern(variable string) (*regexp.Regexp, error) {
	if variable == "" {
		variable = DefaultVariable
	}
	return regexp.Compile(`(?s)var ` + regexp.QuoteMeta(variable) + ` = (\[.*?\]);`)
}
