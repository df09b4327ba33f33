/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package collection

import (
	"sort"
	"strings"
	"testing"
)

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "digit runs compare numerically", a: "2_9", b: "2_10", want: true},
		{name: "numeric beats bytewise", a: "2_1", b: "10_1", want: true},
		{name: "plain text compares bytewise", a: "af", b: "eu", want: true},
		{name: "prefix orders first", a: "2_1", b: "2_1x", want: true},
		{name: "digits order before text", a: "a1", b: "aa", want: true},
		{name: "leading zeros tie-break bytewise", a: "07", b: "7", want: true},
		{name: "equal keys are not less", a: "2_10", b: "2_10", want: false},
		{name: "reversed operands flip", a: "2_10", b: "2_9", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLessSortsPassIdentifiers(t *testing.T) {
	keys := []string{"10_1", "2_10", "1_1", "2_2", "2_1", "1_10", "1_2"}
	sort.Slice(keys, func(i, j int) bool { return Less(keys[i], keys[j]) })

	expected := []string{"1_1", "1_2", "1_10", "2_1", "2_2", "2_10", "10_1"}
	if strings.Join(keys, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected order %v, got %v", expected, keys)
	}
}

func TestLessIsTotal(t *testing.T) {
	// Distinct keys must order one way or the other, even when their digit
	// runs are numerically equal.
	pairs := [][2]string{
		{"07_1", "7_1"},
		{"0", "00"},
		{"a01", "a1"},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if Less(a, b) == Less(b, a) {
			t.Errorf("Less must order distinct keys %q and %q consistently", a, b)
		}
	}
}
