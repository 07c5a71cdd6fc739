package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://quizbank/bank.json"

// bankSchema is stricter than the load rules: it flags empty strings, unknown
// fields and extra options that Load tolerates.
var bankSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pregunta": nonEmptyString(),
			"text":     nonEmptyString(),
			"opciones": optionsSchema(),
			"options":  optionsSchema(),
			"correcta": map[string]any{"enum": []any{"A", "B", "C"}},
			"correct":  map[string]any{"enum": []any{"A", "B", "C"}},
		},
		"additionalProperties": false,
	},
}

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func optionsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"A": nonEmptyString(),
			"B": nonEmptyString(),
			"C": nonEmptyString(),
		},
		"required":             []any{"A", "B", "C"},
		"additionalProperties": false,
	}
}

var compiledBankSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(bankSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(bankSchemaURL)
})

// LintIssue is an advisory finding about a bank file.
type LintIssue struct {
	Location string // JSON pointer into the document, "" for the root
	Message  string
}

func (i LintIssue) String() string {
	if i.Location == "" {
		return i.Message
	}
	return i.Location + ": " + i.Message
}

// Lint checks the bank at path against the strict bank schema. It returns
// an error only when the file cannot be read or decoded at all.
func Lint(path string) ([]LintIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Reason: reasonNotFound, Err: err}
	}
	return LintBytes(path, data)
}

// Check reads the bank at path once, then parses and lints that same content.
// Lint issues are only computed for a bank that loads.
func Check(path string) (*Bank, []LintIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Source: path, Reason: reasonNotFound, Err: err}
	}
	b, err := Parse(path, data)
	if err != nil {
		return nil, nil, err
	}
	issues, err := LintBytes(path, data)
	if err != nil {
		return nil, nil, err
	}
	return b, issues, nil
}

// LintBytes is Lint over already-read content.
func LintBytes(source string, data []byte) ([]LintIssue, error) {
	raw, err := decode(source, data)
	if err != nil {
		return nil, &LoadError{Source: source, Reason: reasonNotAList, Err: err}
	}
	// Round-trip through JSON so YAML values take their JSON shapes.
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", source, err)
	}
	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return nil, fmt.Errorf("normalize %s: %w", source, err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	err = schema.Validate(value)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}
	return issuesFrom(verr.Error()), nil
}

// issuesFrom splits a rendered validation error into one issue per leaf,
// e.g. "- at '/0/opciones': missing property 'C'".
func issuesFrom(rendered string) []LintIssue {
	var issues []LintIssue
	for _, line := range strings.Split(rendered, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "- at '")
		if !ok {
			continue
		}
		loc, msg, ok := strings.Cut(rest, "': ")
		if !ok {
			continue
		}
		issues = append(issues, LintIssue{Location: loc, Message: msg})
	}
	if len(issues) == 0 {
		issues = append(issues, LintIssue{Message: rendered})
	}
	return issues
}
