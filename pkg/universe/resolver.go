package universe

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/robaho/go-symbology/pkg/common"
	"github.com/robaho/go-symbology/pkg/symbology"
)

// Brokerage is the external collaborator the resolver consumes. implementations
// own all transport concerns, timeouts and retries included, the resolver never
// constructs one itself
type Brokerage interface {
	// ListOptions returns the raw option tickers listed for an underlying
	// root ticker. security types the venue does not list options for must
	// return an empty slice, not an error
	ListOptions(root string) ([]string, error)
	// QuoteUnderlying returns the underlying ticker of an option root, or
	// empty when the venue does not know it
	QuoteUnderlying(root string) (string, error)
}

// Resolver turns a canonical symbol into the option universe the brokerage
// lists for it. it owns an UnderlyingCache so repeated lookups do not re-query
// ambiguous option roots
type Resolver struct {
	codec  symbology.Codec
	broker Brokerage
	cache  *UnderlyingCache
	loc    *time.Location
	log    zerolog.Logger
}

// cacheResolver adapts the cache + brokerage quote lookup to the codec's
// UnderlyingResolver
type cacheResolver struct {
	cache  *UnderlyingCache
	broker Brokerage
}

func (cr *cacheResolver) Resolve(root string) string {
	return cr.cache.Resolve(root, cr.broker.QuoteUnderlying)
}

func NewResolver(codec *symbology.Codec, broker Brokerage, logOutput io.Writer) *Resolver {
	if logOutput == nil {
		logOutput = os.Stdout
	}
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}

	r := &Resolver{
		codec:  *codec,
		broker: broker,
		cache:  NewUnderlyingCache(),
		loc:    loc,
		log:    zerolog.New(logOutput).With().Timestamp().Str("component", "universe").Logger(),
	}
	r.codec.Underlyings = &cacheResolver{cache: r.cache, broker: broker}
	return r
}

// SetLocation changes the reference timezone used to decide whether an option
// has expired. the default is America/New_York
func (r *Resolver) SetLocation(loc *time.Location) {
	r.loc = loc
}

// CanPerformSelection reports whether the resolver is ready, always true, no
// connectivity gating happens at this layer
func (r *Resolver) CanPerformSelection() bool {
	return true
}

// LookupSymbols returns the option symbols the brokerage lists for the given
// symbol, which may be an equity, an index, or an option on either. expired
// contracts are dropped unless includeExpired is set. individual tickers that
// fail to decode are logged and skipped, a listing transport failure aborts
// the whole call
func (r *Resolver) LookupSymbols(symbol common.Symbol, includeExpired bool) ([]common.Symbol, error) {
	lookupRoot := symbol.Value
	securityType := symbol.SecurityType
	if symbol.IsOption() {
		if symbol.Underlying == nil {
			return nil, errors.Wrapf(common.UnsupportedSecurity, "option %s has no underlying", symbol.Value)
		}
		lookupRoot = symbol.Underlying.Value
		securityType = symbol.Underlying.SecurityType
	}

	key, err := r.codec.Encode(common.Symbol{Value: lookupRoot, SecurityType: securityType, Market: symbol.Market})
	if err != nil {
		// the brokerage lists options on equities and indices only
		r.log.Debug().Str("symbol", symbol.Value).Str("securityType", string(securityType)).Msg("no option universe for security type")
		return nil, nil
	}

	tickers, err := r.broker.ListOptions(key)
	if err != nil {
		return nil, errors.Wrapf(common.LookupFailed, "listing options for %s: %v", key, err)
	}

	today := common.TradingDate(r.loc)

	var symbols []common.Symbol
	for _, ticker := range tickers {
		s, err := r.codec.Decode(ticker, "")
		if err != nil {
			r.log.Warn().Err(err).Str("ticker", ticker).Msg("skipping unparseable listing entry")
			continue
		}
		if !s.IsOption() {
			r.log.Warn().Str("ticker", ticker).Msg("skipping non-option listing entry")
			continue
		}
		if !includeExpired && common.CmpTime(s.Expiry, today) < 0 {
			continue
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}
