package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GetKeysSorted returns the keys of m in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Map applies fn to every element of items.
func Map[A, B any](items []A, fn func(A) B) []B {
	res := make([]B, 0, len(items))
	for _, v := range items {
		res = append(res, fn(v))
	}
	return res
}
