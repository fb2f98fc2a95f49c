package common

import (
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	"github.com/quickfixgo/quickfix"
	. "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func ToFixed(d decimal.Decimal) Fixed {
	f, _ := d.Float64()
	return NewF(f)
}
func ToDecimal(f Fixed) decimal.Decimal {
	return decimal.NewFromFloat(f.Float())
}

func MapToFixRight(right Right) enum.PutOrCall {
	switch right {
	case Call:
		return enum.PutOrCall_CALL
	case Put:
		return enum.PutOrCall_PUT
	}
	panic("unsupported right " + right)
}

func MapFromFixRight(putOrCall enum.PutOrCall) Right {
	switch putOrCall {
	case enum.PutOrCall_CALL:
		return Call
	case enum.PutOrCall_PUT:
		return Put
	}
	panic("unsupported PutOrCall " + putOrCall)
}

func MapToFixSecurityType(securityType SecurityType) enum.SecurityType {
	switch securityType {
	case Equity, Index:
		return enum.SecurityType_COMMON_STOCK
	case Option, IndexOption:
		return enum.SecurityType_OPTION
	}
	panic("unsupported security type " + securityType)
}

func MapToFixProduct(securityType SecurityType) enum.Product {
	switch securityType {
	case Equity, Option:
		return enum.Product_EQUITY
	case Index, IndexOption:
		return enum.Product_INDEX
	}
	panic("unsupported security type " + securityType)
}

// SetInstrumentFields populates the fix44 instrument component on a message
// body for the given symbol
func SetInstrumentFields(body *quickfix.Body, s Symbol) {
	body.Set(field.NewSymbol(s.Root()))
	body.Set(field.NewSecurityType(MapToFixSecurityType(s.SecurityType)))
	body.Set(field.NewProduct(MapToFixProduct(s.SecurityType)))
	if s.IsOption() {
		body.Set(field.NewPutOrCall(MapToFixRight(s.Right)))
		body.Set(field.NewStrikePrice(s.Strike, 3))
		body.Set(field.NewMaturityDate(s.Expiry.Format("20060102")))
	}
}
