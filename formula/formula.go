package formula

import (
	"fmt"
	"sort"
	"strings"
)

// Term is one predictor term: a set of column factors.
// One factor is a main effect; two or more form an interaction.
type Term struct {
	// Factors holds the column names crossed by this term, in the order
	// they appeared in the formula.
	Factors []string
}

// String renders the term in formula syntax ("x" or "x:g").
func (t Term) String() string { return strings.Join(t.Factors, ":") }

// key is the order-insensitive identity of a term, used for duplicate
// detection: x:g and g:x denote the same interaction.
func (t Term) key() string {
	cp := make([]string, len(t.Factors))
	copy(cp, t.Factors)
	sort.Strings(cp)
	return strings.Join(cp, ":")
}

// Spec is a complete model specification: response plus predictor terms.
// The zero value is not usable; build specs via Parse or literal
// construction with non-empty fields.
type Spec struct {
	// Response names the numeric column being modeled.
	Response string

	// Terms lists predictor terms in formula order. The intercept is
	// implicit and always present.
	Terms []Term
}

// String renders the spec in formula syntax.
func (s Spec) String() string {
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s ~ %s", s.Response, strings.Join(parts, " + "))
}

// Parse builds a Spec from R-style formula syntax:
//
//	response ~ term + term + ...
//
// where a term is a column name, an interaction a:b (any arity), or a
// crossing a*b — sugar for every non-empty combination of the starred
// factors (a*b = a + b + a:b), in size-then-appearance order.
// Whitespace is insignificant.
//
// Errors:
//   - ErrEmptyFormula  — blank input.
//   - ErrBadSyntax     — missing or repeated '~', empty term or factor.
//   - ErrDuplicateTerm — a term appears twice after '*' expansion.
func Parse(s string) (Spec, error) {
	if strings.TrimSpace(s) == "" {
		return Spec{}, ErrEmptyFormula
	}
	sides := strings.Split(s, "~")
	if len(sides) != 2 {
		return Spec{}, fmt.Errorf("%w: want exactly one '~'", ErrBadSyntax)
	}
	resp := strings.TrimSpace(sides[0])
	if resp == "" || strings.ContainsAny(resp, "+:*") {
		return Spec{}, fmt.Errorf("%w: bad response %q", ErrBadSyntax, resp)
	}

	spec := Spec{Response: resp}
	seen := make(map[string]bool)
	for _, raw := range strings.Split(sides[1], "+") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return Spec{}, fmt.Errorf("%w: empty term", ErrBadSyntax)
		}
		terms, err := expandTerm(raw)
		if err != nil {
			return Spec{}, err
		}
		for _, t := range terms {
			k := t.key()
			if seen[k] {
				return Spec{}, fmt.Errorf("%w: %s", ErrDuplicateTerm, t)
			}
			seen[k] = true
			spec.Terms = append(spec.Terms, t)
		}
	}
	if len(spec.Terms) == 0 {
		return Spec{}, fmt.Errorf("%w: no predictor terms", ErrBadSyntax)
	}
	return spec, nil
}

// expandTerm parses one '+'-separated chunk. A chunk is either a plain
// interaction a:b:... (one resulting term) or a crossing a*b*... which
// expands to all non-empty factor combinations.
func expandTerm(raw string) ([]Term, error) {
	if strings.Contains(raw, "*") && strings.Contains(raw, ":") {
		return nil, fmt.Errorf("%w: mixing '*' and ':' in %q", ErrBadSyntax, raw)
	}

	sep := ":"
	crossed := strings.Contains(raw, "*")
	if crossed {
		sep = "*"
	}
	factors := strings.Split(raw, sep)
	for i := range factors {
		factors[i] = strings.TrimSpace(factors[i])
		if factors[i] == "" {
			return nil, fmt.Errorf("%w: empty factor in %q", ErrBadSyntax, raw)
		}
	}
	if !crossed {
		return []Term{{Factors: factors}}, nil
	}

	// Crossing: every non-empty subset of factors, ordered by subset size
	// and then by appearance (a*b -> a, b, a:b). Subsets preserve the
	// original factor order.
	var out []Term
	n := len(factors)
	for size := 1; size <= n; size++ {
		for mask := 1; mask < 1<<n; mask++ {
			var sub []string
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					sub = append(sub, factors[i])
				}
			}
			if len(sub) == size {
				out = append(out, Term{Factors: sub})
			}
		}
	}
	return out, nil
}
