package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rogpeppe/eqsat/sexpr"
)

// arrow separates a ruleset line's lhs and rhs s-expressions.
const arrow = "=>"

// ReadRuleset reads a line-delimited ruleset from r. Each non-empty line
// not starting with ";" or "#" holds two s-expressions separated by the
// rule arrow token "=>", e.g.:
//
//	(+ ?x 0) => ?x
//	(* ?x 1) => ?x
//
// Blank lines and comment lines are skipped. Rules are returned in file
// order, which callers typically preserve when applying them (see
// egraph.ApplyRuleset).
func ReadRuleset(r io.Reader) ([]Rule, error) {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		rule, err := parseRulesetLine(line)
		if err != nil {
			return nil, fmt.Errorf("pattern: ruleset line %d: %w", lineNo, err)
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pattern: reading ruleset: %w", err)
	}
	return rules, nil
}

func parseRulesetLine(line string) (Rule, error) {
	idx := strings.Index(line, arrow)
	if idx < 0 {
		return Rule{}, fmt.Errorf("missing %q between lhs and rhs in %q", arrow, line)
	}
	lhsText, rhsText := strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(arrow):])

	lhsTree, err := sexpr.Parse(lhsText)
	if err != nil {
		return Rule{}, fmt.Errorf("lhs: %w", err)
	}
	rhsTree, err := sexpr.Parse(rhsText)
	if err != nil {
		return Rule{}, fmt.Errorf("rhs: %w", err)
	}
	return ParseRule(lhsTree, rhsTree)
}
