package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled schemas are cached by name. The app only ever compiles the
// quiz-question schema, but the cache keeps `funda llm check` from
// recompiling it per question.
var (
	compiledMu sync.Mutex
	compiled   = map[string]*jsonschema.Schema{}
)

// validateResponse checks raw model output against the request schema.
// A nil schema skips validation. Failures come back as ErrInvalidResponse
// with the offending output attached.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("output is not JSON: %w", err)}
	}

	s, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := s.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema check failed: %w", err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[schema.Name]; ok {
		return s, nil
	}

	// The compiler wants a decoded JSON document, not a Go map with
	// concrete types, so round-trip the definition through encoding/json.
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %q: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiled[schema.Name] = s
	return s, nil
}
