package common

import (
	"testing"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/fix44/securitydefinitionrequest"
	. "github.com/robaho/fixed"
)

func TestToFixed(t *testing.T) {
	f := ToFixed(NewDecimal("227.5"))
	if f.StringN(3) != "227.500" {
		t.Error("wrong fixed conversion", f)
	}
	if !ToDecimal(f).Equal(NewDecimal("227.5")) {
		t.Error("fixed does not round trip", ToDecimal(f))
	}
	if !ToFixed(NewDecimal("0")).Equal(ZERO) {
		t.Error("zero should convert to fixed ZERO")
	}
}

func TestMapRight(t *testing.T) {
	if MapToFixRight(Call) != enum.PutOrCall_CALL {
		t.Error("wrong call mapping")
	}
	if MapToFixRight(Put) != enum.PutOrCall_PUT {
		t.Error("wrong put mapping")
	}
	if MapFromFixRight(MapToFixRight(Put)) != Put {
		t.Error("put does not round trip")
	}
	if MapFromFixRight(MapToFixRight(Call)) != Call {
		t.Error("call does not round trip")
	}
}

func TestMapSecurityType(t *testing.T) {
	if MapToFixSecurityType(Equity) != enum.SecurityType_COMMON_STOCK {
		t.Error("wrong equity mapping")
	}
	if MapToFixSecurityType(Option) != enum.SecurityType_OPTION {
		t.Error("wrong option mapping")
	}
	if MapToFixSecurityType(IndexOption) != enum.SecurityType_OPTION {
		t.Error("wrong index option mapping")
	}
	if MapToFixProduct(Index) != enum.Product_INDEX {
		t.Error("wrong index product")
	}
	if MapToFixProduct(Equity) != enum.Product_EQUITY {
		t.Error("wrong equity product")
	}
}

func TestSetInstrumentFields(t *testing.T) {
	expiry := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	s := NewOption(NewEquity("AAPL", USA), USA, Call, NewDecimal("227.5"), expiry)

	msg := securitydefinitionrequest.New(field.NewSecurityReqID("1"), field.NewSecurityRequestType(enum.SecurityRequestType_SYMBOL))
	SetInstrumentFields(msg.Body, s)

	symbol, err := msg.GetSymbol()
	if err != nil || symbol != "AAPL" {
		t.Error("wrong symbol", symbol, err)
	}
	secType, err := msg.GetSecurityType()
	if err != nil || secType != enum.SecurityType_OPTION {
		t.Error("wrong security type", secType, err)
	}
	var putOrCall field.PutOrCallField
	if err := msg.Body.Get(&putOrCall); err != nil || putOrCall.Value() != enum.PutOrCall_CALL {
		t.Error("wrong put or call", putOrCall, err)
	}
	strike, err := msg.GetStrikePrice()
	if err != nil || !strike.Equal(NewDecimal("227.5")) {
		t.Error("wrong strike", strike, err)
	}
	maturity, err := msg.GetMaturityDate()
	if err != nil || maturity != "20250912" {
		t.Error("wrong maturity", maturity, err)
	}
}
