// Package schema provides JSON schema validation for aliendict word lists.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/puneeth6796/alien-dictionary/schema"
)

var (
	wordListSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchema compiles the embedded word-list schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile("wordlist.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read word list schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal word list schema: %w", err)
			return
		}

		if err := compiler.AddResource("wordlist.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add word list schema resource: %w", err)
			return
		}

		wordListSchema, err = compiler.Compile("wordlist.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile word list schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateWordList validates JSON data against the word-list schema: the
// document must be an array whose elements are all strings.
func ValidateWordList(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := wordListSchema.Validate(v); err != nil {
		return fmt.Errorf("word list validation failed: %w", err)
	}

	return nil
}
