package rewrite

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelection is the sentinel both unknown-name errors unwrap
// to, so callers can categorize without caring which kind failed.
var ErrUnknownSelection = errors.New("unknown rule selection")

// UnknownRuleError is returned when a requested rule name is not in the
// catalog. It carries the valid rule names for error reporting.
type UnknownRuleError struct {
	Name  string
	Valid []string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q (valid rules: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownRuleError) Unwrap() error { return ErrUnknownSelection }

// UnknownRuleSetError is returned when a requested rule-set name is not
// in the catalog. It carries the valid rule-set names.
type UnknownRuleSetError struct {
	Name  string
	Valid []string
}

func (e *UnknownRuleSetError) Error() string {
	return fmt.Sprintf("unknown rule set %q (valid rule sets: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownRuleSetError) Unwrap() error { return ErrUnknownSelection }
