package domain

import (
	"sort"
	"strings"
	"sync/atomic"
)

// entityOrd hands out interning order for named entities. Canonical
// factor ordering inside normalized expressions follows this order, so
// structurally equal expressions always produce identical node
// sequences. The identity entities (Dimensionless, One) take ord 0.
var entityOrd atomic.Int64

func nextOrd() int64 {
	return entityOrd.Add(1)
}

// exprTerm is one power node inside a normalized product: an interned
// atom raised to a nonzero rational exponent.
type exprTerm[A comparable] struct {
	atom A
	exp  Exponent
}

// mergeTerms merges equal atoms by summing their exponents, drops any
// factor whose summed exponent is zero, and re-sorts the result into
// canonical order. The returned slice is freshly allocated; inputs are
// never mutated.
func mergeTerms[A comparable](ts []exprTerm[A], ord func(A) int64) []exprTerm[A] {
	if len(ts) == 0 {
		return nil
	}
	sums := make(map[A]Exponent, len(ts))
	for _, t := range ts {
		if cur, ok := sums[t.atom]; ok {
			sums[t.atom] = cur.Add(t.exp)
		} else {
			sums[t.atom] = t.exp
		}
	}
	merged := make([]exprTerm[A], 0, len(sums))
	for atom, exp := range sums {
		if exp.IsZero() {
			continue
		}
		merged = append(merged, exprTerm[A]{atom: atom, exp: exp})
	}
	if len(merged) == 0 {
		return nil
	}
	sort.Slice(merged, func(i, j int) bool {
		return ord(merged[i].atom) < ord(merged[j].atom)
	})
	return merged
}

// negTerms returns a copy of ts with every exponent negated.
func negTerms[A comparable](ts []exprTerm[A]) []exprTerm[A] {
	out := make([]exprTerm[A], len(ts))
	for i, t := range ts {
		out[i] = exprTerm[A]{atom: t.atom, exp: t.exp.Neg()}
	}
	return out
}

// powTerms returns a copy of ts with every exponent multiplied by e.
func powTerms[A comparable](ts []exprTerm[A], e Exponent) []exprTerm[A] {
	out := make([]exprTerm[A], len(ts))
	for i, t := range ts {
		out[i] = exprTerm[A]{atom: t.atom, exp: t.exp.Mul(e)}
	}
	return out
}

// splitSigned partitions merged signed terms into numerator terms
// (positive exponents, kept as-is) and denominator terms (negative
// exponents, negated so the stored exponent is positive). This is the
// "per" grouping that keeps quotients stable instead of rendering
// everything with signed exponents.
func splitSigned[A comparable](ts []exprTerm[A]) (num, den []exprTerm[A]) {
	for _, t := range ts {
		if t.exp.Positive() {
			num = append(num, t)
		} else {
			den = append(den, exprTerm[A]{atom: t.atom, exp: t.exp.Neg()})
		}
	}
	return num, den
}

// joinSigned is the inverse of splitSigned: numerator terms keep their
// exponents and denominator terms contribute negated ones.
func joinSigned[A comparable](num, den []exprTerm[A]) []exprTerm[A] {
	out := make([]exprTerm[A], 0, len(num)+len(den))
	out = append(out, num...)
	for _, t := range den {
		out = append(out, exprTerm[A]{atom: t.atom, exp: t.exp.Neg()})
	}
	return out
}

// termsEqual reports exact structural equality of two term sequences.
func termsEqual[A comparable](a, b []exprTerm[A]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].atom != b[i].atom || a[i].exp != b[i].exp {
			return false
		}
	}
	return true
}

// formatTerms renders a num/den pair as "a * b^2 / (c * d)". The
// identity renders as name of the supplied identity label.
func formatTerms[A comparable](num, den []exprTerm[A], name func(A) string, identity string) string {
	if len(num) == 0 && len(den) == 0 {
		return identity
	}
	var b strings.Builder
	writeSide := func(ts []exprTerm[A]) {
		for i, t := range ts {
			if i > 0 {
				b.WriteString(" * ")
			}
			b.WriteString(name(t.atom))
			if !t.exp.IsOne() {
				b.WriteString("^")
				if t.exp.Den != 1 {
					b.WriteString("(" + t.exp.String() + ")")
				} else {
					b.WriteString(t.exp.String())
				}
			}
		}
	}
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		writeSide(num)
	}
	if len(den) > 0 {
		b.WriteString(" / ")
		if len(den) > 1 || !den[0].exp.IsOne() {
			b.WriteString("(")
			writeSide(den)
			b.WriteString(")")
		} else {
			writeSide(den)
		}
	}
	return b.String()
}
