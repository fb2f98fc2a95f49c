package symbology

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/robaho/go-symbology/pkg/common"
)

// UnderlyingResolver recovers the true underlying ticker for an equity option
// root, e.g. BRKB -> BRK.B. the wire encoding strips punctuation so the root
// alone cannot distinguish the two
type UnderlyingResolver interface {
	Resolve(root string) string
}

type Codec struct {
	Indices *IndexSet
	// Underlyings, when set, is consulted for equity option roots decoded
	// without an underlying hint. without a hint or a resolver the decode is
	// best effort and uses the stripped root as the underlying ticker
	Underlyings UnderlyingResolver
	// IndexLike optionally widens index classification beyond the curated set.
	// the curated set is authoritative, leave this nil unless the venue uses
	// roots the set does not list
	IndexLike func(root string) bool
}

func NewCodec(indices *IndexSet) *Codec {
	if indices == nil {
		indices = DefaultIndexSet()
	}
	return &Codec{Indices: indices}
}

var thousand = decimal.New(1000, 0)

const maxStrikeMillis = 99999999

// Encode converts a symbol to its brokerage ticker. equities and indices swap
// canonical dots for the brokerage slash. options become the compact OSI form,
// root + YYMMDD + C/P + strike x 1000 in 8 digits, with all spaces and dots
// stripped. the dot stripping is lossy, see Decode
func (c *Codec) Encode(s common.Symbol) (string, error) {
	switch s.SecurityType {
	case common.Equity, common.Index:
		return strings.ReplaceAll(s.Value, ".", "/"), nil
	case common.Option, common.IndexOption:
		millis := s.Strike.Mul(thousand)
		if s.Strike.IsNegative() || !millis.IsInteger() || millis.IntPart() > maxStrikeMillis {
			return "", errors.Wrapf(common.InvalidStrike, "strike %s", s.Strike)
		}
		osi := common.OSITicker(s.Root(), s.Right, s.Strike, s.Expiry)
		return strings.NewReplacer(" ", "", ".", "").Replace(osi), nil
	}
	return "", errors.Wrapf(common.UnsupportedSecurity, "%s", s.SecurityType)
}

// Decode converts a brokerage ticker back to a symbol. underlying, when not
// empty, is the brokerage ticker of the option underlying and settles the
// root ambiguity directly, otherwise the codec's UnderlyingResolver is
// consulted. index option roots are unambiguous and need neither
func (c *Codec) Decode(ticker string, underlying string) (common.Symbol, error) {
	class := c.Classify(ticker)
	switch class {
	case ClassIndex:
		return common.NewIndex(ticker, common.USA), nil
	case ClassEquity:
		return common.NewEquity(strings.ReplaceAll(ticker, "/", "."), common.USA), nil
	}

	root := ticker[:len(ticker)-suffixLen]
	expiry, right, strike, err := parseOSISuffix(ticker[len(ticker)-suffixLen:])
	if err != nil {
		return common.Symbol{}, err
	}

	if class == ClassIndexOption {
		underlyingRoot := root
		if c.Indices != nil {
			underlyingRoot = c.Indices.MapToUnderlying(root)
		}
		return common.NewOptionWithRoot(root, common.NewIndex(underlyingRoot, common.USA), common.USA, right, strike, expiry), nil
	}

	underlyingTicker := root
	if underlying != "" {
		underlyingTicker = strings.ReplaceAll(underlying, "/", ".")
	} else if c.Underlyings != nil {
		underlyingTicker = c.Underlyings.Resolve(root)
	}
	return common.NewOption(common.NewEquity(underlyingTicker, common.USA), common.USA, right, strike, expiry), nil
}

// parseOSISuffix splits the fixed 15 character option suffix, YYMMDD date,
// C/P right, 8 digit strike scaled by 1000
func parseOSISuffix(s string) (time.Time, common.Right, decimal.Decimal, error) {
	expiry, err := time.Parse("060102", s[:6])
	if err != nil {
		return time.Time{}, "", decimal.Decimal{}, errors.Wrapf(common.UnparseableTicker, "bad expiry %q", s[:6])
	}

	var right common.Right
	switch s[6] {
	case 'C':
		right = common.Call
	case 'P':
		right = common.Put
	default:
		return time.Time{}, "", decimal.Decimal{}, errors.Wrapf(common.UnparseableTicker, "bad right %c", s[6])
	}

	// Atoi alone is too lenient, it accepts a leading sign
	for i := 7; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, "", decimal.Decimal{}, errors.Wrapf(common.UnparseableTicker, "bad strike %q", s[7:])
		}
	}
	n, err := strconv.Atoi(s[7:])
	if err != nil {
		return time.Time{}, "", decimal.Decimal{}, errors.Wrapf(common.UnparseableTicker, "bad strike %q", s[7:])
	}

	return expiry, right, decimal.New(int64(n), -3), nil
}
