// Package pattern implements the pattern/rule frontend: an AST for
// e-matching patterns, (lhs, rhs) rewrite rules, and parsing of both from
// sexpr.Tree and from a line-delimited ruleset file.
package pattern

import (
	"fmt"
	"strings"
)

// varPrefixes lists the conventional markers for a pattern variable atom.
// "?x" and "P_x" are both recognized so that rulesets written in either
// convention parse the same way.
var varPrefixes = []string{"?", "P_"}

// Pattern is either a variable, matching any e-class, or a term, matching
// e-nodes with a given head and matching children.
type Pattern struct {
	isVar bool
	name  string // variable name, sans prefix
	head  string // term head
	args  []Pattern
}

// Var returns a pattern variable named name (without its "?"/"P_" prefix).
func Var(name string) Pattern {
	return Pattern{isVar: true, name: name}
}

// Term returns a pattern term with the given head and child patterns.
func Term(head string, args ...Pattern) Pattern {
	return Pattern{head: head, args: args}
}

// IsVar reports whether p is a pattern variable.
func (p Pattern) IsVar() bool {
	return p.isVar
}

// Name returns p's variable name. It panics if p is not a variable.
func (p Pattern) Name() string {
	if !p.isVar {
		panic("pattern: Name called on a term Pattern")
	}
	return p.name
}

// Head returns p's term head. It panics if p is a variable.
func (p Pattern) Head() string {
	if p.isVar {
		panic("pattern: Head called on a variable Pattern")
	}
	return p.head
}

// Args returns p's child patterns. It panics if p is a variable.
func (p Pattern) Args() []Pattern {
	if p.isVar {
		panic("pattern: Args called on a variable Pattern")
	}
	return p.args
}

// String renders p back to s-expression-like text.
func (p Pattern) String() string {
	if p.isVar {
		return "?" + p.name
	}
	if len(p.args) == 0 {
		return p.head
	}
	parts := make([]string, len(p.args))
	for i, a := range p.args {
		parts[i] = a.String()
	}
	return "(" + p.head + " " + strings.Join(parts, " ") + ")"
}

// Vars returns the set of variable names occurring in p, in first-seen
// order.
func (p Pattern) Vars() []string {
	var out []string
	seen := map[string]bool{}
	var walk func(Pattern)
	walk = func(p Pattern) {
		if p.isVar {
			if !seen[p.name] {
				seen[p.name] = true
				out = append(out, p.name)
			}
			return
		}
		for _, a := range p.args {
			walk(a)
		}
	}
	walk(p)
	return out
}

func stripVarPrefix(atom string) (name string, isVar bool) {
	for _, pfx := range varPrefixes {
		if strings.HasPrefix(atom, pfx) && len(atom) > len(pfx) {
			return atom[len(pfx):], true
		}
	}
	return "", false
}

// Rule is an ordered pair of patterns, interpreted as "LHS is equal to
// RHS".
type Rule struct {
	LHS, RHS Pattern
}

// NewRule validates and constructs a Rule. It rejects a rule whose RHS
// mentions a variable absent from the LHS: such a rule could not be
// instantiated, since there would be nothing bound for that variable.
func NewRule(lhs, rhs Pattern) (Rule, error) {
	bound := map[string]bool{}
	for _, v := range lhs.Vars() {
		bound[v] = true
	}
	for _, v := range rhs.Vars() {
		if !bound[v] {
			return Rule{}, fmt.Errorf("pattern: rule %s => %s has free variable %q on rhs", lhs, rhs, v)
		}
	}
	return Rule{LHS: lhs, RHS: rhs}, nil
}

// String renders r as "lhs => rhs".
func (r Rule) String() string {
	return r.LHS.String() + " => " + r.RHS.String()
}
