package bank

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Field names of a bank record. The first name is canonical; the rest are
// accepted aliases.
var (
	textFields    = []string{"pregunta", "text"}
	optionsFields = []string{"opciones", "options"}
	correctFields = []string{"correcta", "correct"}
)

var defaultLoader = NewLoader()

// Load reads and validates the bank at path using the process-wide Loader.
func Load(path string) (*Bank, error) {
	return defaultLoader.Load(path)
}

// Loader loads banks from files and memoizes the result per source. The
// source is re-read on every call and only reparsed when its content digest
// changed, so edits to the file are always picked up.
type Loader struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	digest [sha256.Size]byte
	bank   *Bank
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]cacheEntry)}
}

// Load reads, parses and validates the bank at path.
func (l *Loader) Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Reason: reasonNotFound, Err: err}
	}
	digest := sha256.Sum256(data)
	key := sourceKey(path)

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.cache[key]; ok && entry.digest == digest {
		return entry.bank, nil
	}

	b, err := Parse(path, data)
	if err != nil {
		delete(l.cache, key)
		return nil, err
	}
	l.cache[key] = cacheEntry{digest: digest, bank: b}
	return b, nil
}

// sourceKey normalizes a path into the identity used for memoization.
func sourceKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Parse decodes and validates bank content. The format is chosen from the
// source extension: .yaml/.yml is YAML, anything else JSON. Validation is
// fail-fast over the whole bank.
func Parse(source string, data []byte) (*Bank, error) {
	raw, err := decode(source, data)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: reasonNotAList, Err: err}
	}
	records, ok := raw.([]any)
	if !ok {
		return nil, &LoadError{Source: source, Reason: reasonNotAList}
	}

	questions := make([]Question, 0, len(records))
	for i, rec := range records {
		q, err := parseRecord(source, i+1, rec)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return New(source, questions)
}

func decode(source string, data []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) (any, error) {
	var v any
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, errors.New("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, errors.New("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, errors.New("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return v, nil
}

func parseRecord(source string, n int, rec any) (Question, error) {
	fields, ok := asMap(rec)
	if !ok {
		return Question{}, recordError(source, n, "missing required field")
	}
	textVal, hasText := lookup(fields, textFields)
	optionsVal, hasOptions := lookup(fields, optionsFields)
	correctVal, hasCorrect := lookup(fields, correctFields)
	if !hasText || !hasOptions || !hasCorrect {
		return Question{}, recordError(source, n, "missing required field")
	}
	text, ok := textVal.(string)
	if !ok {
		return Question{}, recordError(source, n, "missing required field")
	}

	rawOptions, ok := asMap(optionsVal)
	if !ok {
		return Question{}, recordError(source, n, "options not a mapping")
	}
	options := make(map[OptionKey]string, 3)
	for _, k := range Keys() {
		opt, ok := rawOptions[string(k)].(string)
		if !ok {
			return Question{}, recordError(source, n, "missing option %s", k)
		}
		options[k] = opt
	}

	correct, _ := correctVal.(string)
	if !OptionKey(correct).Valid() {
		return Question{}, recordError(source, n, "correctKey invalid")
	}

	q, err := NewQuestion(text, options, OptionKey(correct))
	if err != nil {
		return Question{}, &LoadError{Source: source, Record: n, Reason: fmt.Sprintf("record #%d invalid", n), Err: err}
	}
	return q, nil
}

// lookup returns the first present field among names.
func lookup(fields map[string]any, names []string) (any, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// asMap accepts the mapping shapes produced by encoding/json and yaml.v3.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}
