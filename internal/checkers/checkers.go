// Package checkers holds quicktest checkers shared by the test suites.
package checkers

import (
	"encoding/json"
	"fmt"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

type jsonPathChecker struct {
	path string
}

// JSONPathEquals returns a checker that decodes a JSON document (string or
// []byte), reads the value at path, and deep-compares it with the expected
// argument. Numbers decode as float64.
//
//	c.Assert(text, checkers.JSONPathEquals("$.action"), "added")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

// Check implements qt.Checker.
func (j *jsonPathChecker) Check(got any, args []any, note func(key string, value any)) error {
	var data []byte
	switch v := got.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return qt.BadCheckf("expected string or []byte, got %T", got)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	value, err := jsonpath.Read(doc, j.path)
	if err != nil {
		return fmt.Errorf("cannot read JSON path %q: %w", j.path, err)
	}
	note("path", j.path)
	return qt.DeepEquals.Check(value, args, note)
}

// ArgNames implements qt.Checker.
func (*jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}
