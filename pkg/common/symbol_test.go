package common

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var sep12 = time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)

func TestSymbolEquality(t *testing.T) {
	a := NewOption(NewEquity("AAPL", USA), USA, Call, NewDecimal("227.5"), sep12)
	b := NewOption(NewEquity("AAPL", USA), USA, Call, decimal.New(227500, -3), sep12)

	if !a.Equal(b) {
		t.Error("expected equal", a, b)
	}

	c := NewOption(NewEquity("AAPL", USA), USA, Put, NewDecimal("227.5"), sep12)
	if a.Equal(c) {
		t.Error("expected not equal", a, c)
	}

	if !NewEquity("IBM", USA).Equal(NewEquity("IBM", USA)) {
		t.Error("equities should be equal")
	}
	if NewEquity("SPX", USA).Equal(NewIndex("SPX", USA)) {
		t.Error("equity should not equal index")
	}
	if a.Equal(NewEquity("AAPL", USA)) {
		t.Error("option should not equal its underlying")
	}
}

func TestOptionDefaults(t *testing.T) {
	o := NewOption(NewEquity("AAPL", USA), USA, Call, NewDecimal("227.5"), sep12)
	if o.SecurityType != Option || o.Style != American {
		t.Error("wrong equity option defaults", o.SecurityType, o.Style)
	}
	if o.Underlying == nil || o.Underlying.Value != "AAPL" {
		t.Error("wrong underlying", o.Underlying)
	}

	io := NewOption(NewIndex("SPX", USA), USA, Put, NewDecimal("5900"), sep12)
	if io.SecurityType != IndexOption || io.Style != European {
		t.Error("wrong index option defaults", io.SecurityType, io.Style)
	}
}

func TestOSITicker(t *testing.T) {
	if s := OSITicker("AAPL", Call, NewDecimal("227.5"), sep12); s != "AAPL  250912C00227500" {
		t.Error("wrong ticker", s)
	}
	if s := OSITicker("SPXW", Put, NewDecimal("5900"), sep12); s != "SPXW  250912P05900000" {
		t.Error("wrong ticker", s)
	}
	if s := OSITicker("BRK.B", Call, NewDecimal("100"), sep12); s != "BRK.B 250912C00100000" {
		t.Error("wrong ticker", s)
	}
}

func TestRoot(t *testing.T) {
	o := NewOption(NewEquity("AAPL", USA), USA, Call, NewDecimal("227.5"), sep12)
	if o.Root() != "AAPL" {
		t.Error("wrong root", o.Root())
	}
	o = NewOption(NewEquity("BRK.B", USA), USA, Call, NewDecimal("100"), sep12)
	if o.Root() != "BRK.B" {
		t.Error("wrong root", o.Root())
	}
	if NewEquity("IBM", USA).Root() != "IBM" {
		t.Error("simple root should be the value")
	}
}
