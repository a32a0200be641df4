package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphwalk/builder"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn for valid inputs and panics on negative ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		expectPanic bool
	}{
		{"Default_Zero", builder.DefaultIDFn, 0, "0", false},
		{"Default_42", builder.DefaultIDFn, 42, "42", false},
		{"Letter_A", builder.LetterIDFn, 0, "A", false},
		{"Letter_Z", builder.LetterIDFn, 25, "Z", false},
		{"Letter_AA", builder.LetterIDFn, 26, "AA", false},
		{"Letter_AB", builder.LetterIDFn, 27, "AB", false},
		{"Letter_BA", builder.LetterIDFn, 52, "BA", false},
		{"Letter_AAA", builder.LetterIDFn, 702, "AAA", false},
		{"Letter_Negative", builder.LetterIDFn, -1, "", true},
		{"Prefix_v3", builder.PrefixIDFn("v"), 3, "v3", false},
		{"Prefix_Negative", builder.PrefixIDFn("v"), -2, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.expectPanic {
				assertPanics(t, func() { _ = tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}
