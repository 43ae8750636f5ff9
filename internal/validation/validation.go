// Package validation checks form values against declarative per-field
// rule lists before anything is sent to the backend.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type Kind string

const (
	Required  Kind = "required"
	Email     Kind = "email"
	Password  Kind = "password"
	Phone     Kind = "phone"
	Date      Kind = "date"
	Number    Kind = "number"
	MinLength Kind = "minLength"
	MaxLength Kind = "maxLength"
	Custom    Kind = "custom"
)

// Rule is one check for a field. Message overrides the default text for
// the kind; Param carries the bound for MinLength/MaxLength; Check is the
// predicate for Custom rules.
type Rule struct {
	Kind    Kind
	Param   int
	Message string
	Check   func(string) bool
}

// RuleSet maps a field name to its rules, evaluated in declared order.
type RuleSet map[string][]Rule

// Result of one validation pass. Errors holds the first failing rule's
// message per field.
type Result struct {
	Valid  bool
	Errors map[string]string
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Cameroon numbers: optional country prefix, then a mobile or
	// landline block.
	phoneRe = regexp.MustCompile(`^(\+237|237)?[2368]\d{7,8}$`)
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// Validate runs every field's rules in order and stops at the first
// failure per field. Empty values only fail the Required rule; every
// other kind skips empty input so optional fields stay optional. Pure
// function, no side effects.
func Validate(values map[string]string, rules RuleSet) Result {
	errs := map[string]string{}
	for field, fieldRules := range rules {
		value := values[field]
		for _, rule := range fieldRules {
			if msg := apply(field, value, rule); msg != "" {
				errs[field] = msg
				break
			}
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func apply(field, value string, rule Rule) string {
	if rule.Kind == Required {
		if strings.TrimSpace(value) == "" {
			return defaultMsg(rule, field+" is required")
		}
		return ""
	}
	if value == "" {
		return ""
	}

	switch rule.Kind {
	case Email:
		if !emailRe.MatchString(value) {
			return defaultMsg(rule, "Please enter a valid email")
		}
	case Password:
		if !ValidPassword(value) {
			return defaultMsg(rule, "Password must be at least 8 characters with uppercase, lowercase and number")
		}
	case Phone:
		if !phoneRe.MatchString(value) {
			return defaultMsg(rule, "Please enter a valid phone number")
		}
	case Date:
		if !ValidDate(value) {
			return defaultMsg(rule, "Please enter a valid date")
		}
	case Number:
		if !ValidNumber(value) {
			return defaultMsg(rule, "Please enter a valid number")
		}
	case MinLength:
		if len(strings.TrimSpace(value)) < rule.Param {
			return defaultMsg(rule, fmt.Sprintf("Minimum length is %d characters", rule.Param))
		}
	case MaxLength:
		if len(strings.TrimSpace(value)) > rule.Param {
			return defaultMsg(rule, fmt.Sprintf("Maximum length is %d characters", rule.Param))
		}
	case Custom:
		if rule.Check != nil && !rule.Check(value) {
			return defaultMsg(rule, "Invalid value")
		}
	}
	return ""
}

func defaultMsg(rule Rule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

// ValidPassword requires length >= 8 with at least one lowercase letter,
// one uppercase letter and one digit.
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// ValidDate accepts any of the supported calendar layouts.
func ValidDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ValidNumber accepts finite numbers greater than zero.
func ValidNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && f > 0
}
