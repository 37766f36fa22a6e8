package natural

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b   string
		expect int
	}{
		{a: "Item2", b: "item10", expect: -1},
		{a: "item10", b: "Item2", expect: 1},
		{a: "img12", b: "img10", expect: 1},
		{a: "order", b: "ORDER", expect: 0},
		{a: "abc", b: "abcd", expect: -1},
		{a: "", b: "a", expect: -1},
		{a: "a", b: "", expect: 1},
		{a: "", b: "", expect: 0},
		{a: "01", b: "1", expect: 0},
		{a: "x01", b: "x1", expect: -1},
		{a: "1.5", b: "1.10", expect: -1},
		{a: "1.05", b: "1.5", expect: -1},
		{a: "a  b", b: "a b", expect: 0},
		{a: "rfc822.txt", b: "rfc1.txt", expect: 1},
		{a: "x2-g8", b: "x2-y7", expect: -1},
		{a: "Fulfillment", b: "fulfillment", expect: 0},
		{a: "a_b", b: "aB", expect: 1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s vs %s", tc.a, tc.b), func(t *testing.T) {
			assert.Equal(t, tc.expect, Compare(tc.a, tc.b))
		})
	}
}

func TestLess_Sort(t *testing.T) {
	labels := []string{"item10", "order", "Item2", "item1", "Item20", "alpha"}
	sort.SliceStable(labels, func(i, j int) bool { return Less(labels[i], labels[j]) })
	assert.Equal(t, []string{"alpha", "item1", "Item2", "item10", "Item20", "order"}, labels)
}

func TestCompare_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[a-zA-Z0-9 ._-]{0,12}`).Draw(t, "a")
		b := rapid.StringMatching(`[a-zA-Z0-9 ._-]{0,12}`).Draw(t, "b")
		if Compare(a, a) != 0 {
			t.Fatalf("expected %q to equal itself", a)
		}
		if Compare(a, b) != -Compare(b, a) {
			t.Fatalf("expected antisymmetry for %q and %q", a, b)
		}
		if Compare(strings.ToUpper(a), strings.ToLower(a)) != 0 {
			t.Fatalf("expected case folding for %q", a)
		}
	})
}

func TestCompare_MatchesLexicalWithoutDigits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.StringMatching(`[a-zA-Z_]{1,10}`).Draw(t, "a")
		b := rapid.StringMatching(`[a-zA-Z_]{1,10}`).Draw(t, "b")
		if got, expect := Compare(a, b), strings.Compare(strings.ToUpper(a), strings.ToUpper(b)); got != expect {
			t.Fatalf("Compare(%q, %q) = %d, expected %d", a, b, got, expect)
		}
	})
}

func TestCompare_NumericSuffix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(0, 1000000).Draw(t, "x")
		y := rapid.IntRange(0, 1000000).Draw(t, "y")
		expect := 0
		if x < y {
			expect = -1
		} else if x > y {
			expect = 1
		}
		if got := Compare(fmt.Sprintf("item%d", x), fmt.Sprintf("Item%d", y)); got != expect {
			t.Fatalf("item%d vs Item%d: got %d, expected %d", x, y, got, expect)
		}
	})
}
