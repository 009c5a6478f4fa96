package pattern

import (
	"fmt"

	"github.com/rogpeppe/eqsat/sexpr"
)

// ParsePattern turns a parsed s-expression into a Pattern. An atom whose
// text starts with "?" or "P_" becomes a variable; any other atom becomes
// a zero-arity term; a list becomes a term whose head is its first atom
// and whose children are recursively parsed patterns.
func ParsePattern(t sexpr.Tree) (Pattern, error) {
	if t.IsAtom() {
		if name, ok := stripVarPrefix(t.Text()); ok {
			return Var(name), nil
		}
		return Term(t.Text()), nil
	}
	items := t.Items()
	if len(items) == 0 {
		return Pattern{}, fmt.Errorf("pattern: empty list has no operator head")
	}
	if !items[0].IsAtom() {
		return Pattern{}, fmt.Errorf("pattern: operator head must be an atom, got %s", items[0])
	}
	head := items[0].Text()
	if _, ok := stripVarPrefix(head); ok {
		return Pattern{}, fmt.Errorf("pattern: %s cannot be used as an operator head", head)
	}
	args := make([]Pattern, len(items)-1)
	for i, it := range items[1:] {
		p, err := ParsePattern(it)
		if err != nil {
			return Pattern{}, err
		}
		args[i] = p
	}
	return Term(head, args...), nil
}

// ParseRule parses lhs and rhs as patterns and validates the resulting
// Rule (see NewRule).
func ParseRule(lhs, rhs sexpr.Tree) (Rule, error) {
	l, err := ParsePattern(lhs)
	if err != nil {
		return Rule{}, fmt.Errorf("pattern: parsing lhs: %w", err)
	}
	r, err := ParsePattern(rhs)
	if err != nil {
		return Rule{}, fmt.Errorf("pattern: parsing rhs: %w", err)
	}
	return NewRule(l, r)
}
