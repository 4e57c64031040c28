package room

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidUnitExpression is returned when a non-empty expression produced
// no units at all. Individual malformed tokens are skipped silently; that
// behavior is part of the stable grammar, not an accident.
var ErrInvalidUnitExpression = errors.New("invalid unit expression")

// ParseUnits expands a unit expression into an ascending, deduplicated set
// of unit numbers.
//
// Grammar: comma-separated tokens, each either an integer or "INT-INT"
// (inclusive range, only expanded when both ends parse and start <= end).
// Whitespace around tokens is trimmed. Tokens that match neither form are
// dropped without aborting the rest of the expression.
func ParseUnits(input string) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	var units []int
	add := func(n int) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			units = append(units, n)
		}
	}

	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if first, second, isRange := strings.Cut(token, "-"); isRange {
			start, errStart := strconv.Atoi(strings.TrimSpace(first))
			end, errEnd := strconv.Atoi(strings.TrimSpace(second))
			if errStart != nil || errEnd != nil || start > end {
				continue
			}
			for n := start; n <= end; n++ {
				add(n)
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		add(n)
	}

	if len(units) == 0 {
		return nil, ErrInvalidUnitExpression
	}

	slices.Sort(units)
	return units, nil
}

// MergeUnits returns the ascending union of both sets. Unit identity, not
// position, is what matters.
func MergeUnits(existing, incoming []int) []int {
	seen := make(map[int]struct{}, len(existing)+len(incoming))
	merged := make([]int, 0, len(existing)+len(incoming))
	for _, set := range [][]int{existing, incoming} {
		for _, n := range set {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				merged = append(merged, n)
			}
		}
	}
	slices.Sort(merged)
	return merged
}

// RemoveUnits returns existing minus toRemove, order preserved. Whether a
// unit may be removed at all is the caller's policy; this is pure set algebra.
func RemoveUnits(existing, toRemove []int) []int {
	drop := make(map[int]struct{}, len(toRemove))
	for _, n := range toRemove {
		drop[n] = struct{}{}
	}

	kept := make([]int, 0, len(existing))
	for _, n := range existing {
		if _, ok := drop[n]; !ok {
			kept = append(kept, n)
		}
	}
	return kept
}
