// Package wordlist loads and validates JSON word-list documents before they
// reach the inference core.
package wordlist

import (
	"encoding/json"
	"io"
	"os"
	"unicode/utf8"

	"github.com/puneeth6796/alien-dictionary/internal/config"
	"github.com/puneeth6796/alien-dictionary/internal/errors"
	"github.com/puneeth6796/alien-dictionary/internal/schema"
)

// Parse validates raw JSON against the word-list schema, decodes it, and
// enforces the configured input limits. A nil limits disables all bounds.
func Parse(data []byte, limits *config.LimitsConfig) ([]string, error) {
	if err := schema.ValidateWordList(data); err != nil {
		return nil, errors.WrapInput(err, "invalid word list")
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, errors.WrapInput(err, "invalid word list")
	}

	if err := checkLimits(words, limits); err != nil {
		return nil, err
	}
	return words, nil
}

// Read parses a word list from a reader.
func Read(r io.Reader, limits *config.LimitsConfig) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read word list")
	}
	return Parse(data, limits)
}

// ReadFile parses a word list from a file, or from stdin when path is "-".
func ReadFile(path string, limits *config.LimitsConfig) ([]string, error) {
	if path == "-" {
		return Read(os.Stdin, limits)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read word list file")
	}
	return Parse(data, limits)
}

func checkLimits(words []string, limits *config.LimitsConfig) error {
	if limits == nil {
		return nil
	}

	if limits.MaxWords > 0 && len(words) > limits.MaxWords {
		return errors.Inputf("word list has %d words, limit is %d", len(words), limits.MaxWords)
	}
	if limits.MaxWordLength > 0 {
		for i, w := range words {
			if n := utf8.RuneCountInString(w); n > limits.MaxWordLength {
				return errors.Inputf("word %d has %d characters, limit is %d", i, n, limits.MaxWordLength)
			}
		}
	}
	return nil
}
