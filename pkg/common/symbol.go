package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SecurityType string

const (
	Equity      SecurityType = "equity"
	Index       SecurityType = "index"
	Option      SecurityType = "option"
	IndexOption SecurityType = "indexoption"
	Forex       SecurityType = "forex"
	Crypto      SecurityType = "crypto"
)

type Right string

const (
	Call Right = "call"
	Put  Right = "put"
)

type ExerciseStyle string

const (
	American ExerciseStyle = "american"
	European ExerciseStyle = "european"
)

const USA = "usa"

// Symbol identifies a security independent of any venue encoding. it is a plain
// value, compare with Equal rather than == since derivatives reference their
// underlying through a pointer
type Symbol struct {
	Value        string
	SecurityType SecurityType
	Market       string
	// the following apply to options only
	Underlying *Symbol
	Strike     decimal.Decimal
	Expiry     time.Time
	Right      Right
	Style      ExerciseStyle
}

func NewEquity(ticker string, market string) Symbol {
	return Symbol{Value: ticker, SecurityType: Equity, Market: market}
}

func NewIndex(ticker string, market string) Symbol {
	return Symbol{Value: ticker, SecurityType: Index, Market: market}
}

// NewOption builds an option on the given underlying. the option trades under the
// underlying ticker as its root. index underlyings produce an IndexOption with
// european exercise, everything else an american Option
func NewOption(underlying Symbol, market string, right Right, strike decimal.Decimal, expiry time.Time) Symbol {
	return NewOptionWithRoot(underlying.Value, underlying, market, right, strike, expiry)
}

// NewOptionWithRoot builds an option that trades under a root ticker different
// from the underlying ticker, e.g. the weekly SPXW root settles against SPX
func NewOptionWithRoot(root string, underlying Symbol, market string, right Right, strike decimal.Decimal, expiry time.Time) Symbol {
	securityType := Option
	style := American
	if underlying.SecurityType == Index {
		securityType = IndexOption
		style = European
	}
	u := underlying
	return Symbol{
		Value:        OSITicker(root, right, strike, expiry),
		SecurityType: securityType,
		Market:       market,
		Underlying:   &u,
		Strike:       strike,
		Expiry:       expiry,
		Right:        right,
		Style:        style,
	}
}

// OSITicker formats the display ticker for an option, root right-padded to 6
// characters, YYMMDD date, C/P, strike x 1000 in 8 digits
func OSITicker(root string, right Right, strike decimal.Decimal, expiry time.Time) string {
	r := "C"
	if right == Put {
		r = "P"
	}
	return fmt.Sprintf("%-6s%s%s%08d", root, expiry.Format("060102"), r, strike.Mul(decimal.New(1000, 0)).IntPart())
}

func (s Symbol) IsOption() bool {
	return s.SecurityType == Option || s.SecurityType == IndexOption
}

// Root is the option root ticker, the value with the 15 character
// date/right/strike suffix and the padding removed
func (s Symbol) Root() string {
	if !s.IsOption() || len(s.Value) <= 15 {
		return s.Value
	}
	return strings.TrimRight(s.Value[:len(s.Value)-15], " ")
}

// Equal is structural equality across all fields, following the underlying chain
func (s Symbol) Equal(o Symbol) bool {
	if s.Value != o.Value || s.SecurityType != o.SecurityType || s.Market != o.Market ||
		s.Right != o.Right || s.Style != o.Style {
		return false
	}
	if !s.Strike.Equal(o.Strike) || !s.Expiry.Equal(o.Expiry) {
		return false
	}
	if (s.Underlying == nil) != (o.Underlying == nil) {
		return false
	}
	if s.Underlying != nil && !s.Underlying.Equal(*o.Underlying) {
		return false
	}
	return true
}

func (s Symbol) String() string {
	str := string(s.SecurityType) + ":" + s.Value
	if s.Underlying != nil {
		str += " on " + s.Underlying.String()
	}
	return str
}
