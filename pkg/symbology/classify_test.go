package symbology

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewCodec(nil)

	cases := []struct {
		ticker string
		class  TickerClass
	}{
		{"AAPL", ClassEquity},
		{"BRK/B", ClassEquity},
		{"SPX", ClassIndex},
		{"VIX", ClassIndex},
		{"ABCDEFGHIJKLMNO", ClassEquity}, // exactly the suffix length
		{"AAPL250912C00227500", ClassOption},
		{"A250912C00227500", ClassOption},
		{"SPX250725C05900000", ClassIndexOption},
		{"SPXW250725C05900000", ClassIndexOption},
		{"VIXW250716P00015000", ClassIndexOption},
	}
	for _, tc := range cases {
		if class := c.Classify(tc.ticker); class != tc.class {
			t.Error(tc.ticker, "classified as", class, "expected", tc.class)
		}
	}
}

func TestClassifyIndexLike(t *testing.T) {
	c := NewCodec(NewIndexSet("SPX"))
	c.IndexLike = func(root string) bool { return strings.HasPrefix(root, "ZZ") }

	if c.Classify("ZZTOP") != ClassIndex {
		t.Error("hook should widen index classification")
	}
	if c.Classify("ZZTOP250912C00050000") != ClassIndexOption {
		t.Error("hook should apply to option roots")
	}
	if c.Classify("NDX") != ClassEquity {
		t.Error("roots outside the set and the hook are equities")
	}
}

func TestTickerClassString(t *testing.T) {
	if ClassIndexOption.String() != "indexoption" || ClassEquity.String() != "equity" {
		t.Error("wrong class names")
	}
	if TickerClass(99).String() != "unknown" {
		t.Error("expected unknown")
	}
}
