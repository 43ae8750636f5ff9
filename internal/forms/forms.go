// Package forms is the one form-binding layer shared by every page:
// parse POST values, validate against a rule set, re-render with sticky
// values and inline errors.
package forms

import (
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/validation"
)

const maxFormMemory = 1 << 20 // 1MB

// Form holds submitted values and per-field error messages for a single
// request/render cycle.
type Form struct {
	Values map[string]string
	Errors map[string]string
}

func New() *Form {
	return &Form{
		Values: map[string]string{},
		Errors: map[string]string{},
	}
}

// Parse reads the named fields from the request's POST body.
func Parse(r *http.Request, fields ...string) (*Form, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	f := New()
	for _, name := range fields {
		f.Values[name] = r.PostFormValue(name)
	}
	return f, nil
}

// Validate runs the rule set over the parsed values and records any
// failures. Returns true when the form is clean.
func (f *Form) Validate(rules validation.RuleSet) bool {
	res := validation.Validate(f.Values, rules)
	if !res.Valid {
		f.Errors = res.Errors
	}
	return res.Valid
}

// Get returns the submitted value for a field.
func (f *Form) Get(name string) string {
	return f.Values[name]
}

// Error returns the message recorded for a field, or "".
func (f *Form) Error(name string) string {
	return f.Errors[name]
}
