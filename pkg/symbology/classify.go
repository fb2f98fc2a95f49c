package symbology

// TickerClass is the security type inferred from the shape of a brokerage
// ticker alone. the wire format carries no explicit tag, so classification is
// heuristic: every option ticker ends in the fixed 15 character
// date/right/strike suffix and no supported simple ticker is that long
type TickerClass int

const (
	ClassEquity TickerClass = iota
	ClassIndex
	ClassOption
	ClassIndexOption
)

func (c TickerClass) String() string {
	switch c {
	case ClassEquity:
		return "equity"
	case ClassIndex:
		return "index"
	case ClassOption:
		return "option"
	case ClassIndexOption:
		return "indexoption"
	}
	return "unknown"
}

// suffixLen is the fixed option suffix, YYMMDD + C/P + 8 digit strike
const suffixLen = 15

// Classify infers the security type of a brokerage ticker. a ticker longer
// than 15 characters is an option, the boundary itself is a simple ticker.
// option roots and whole simple tickers are index-rooted when they are in the
// curated set, or when the optional IndexLike hook accepts them
func (c *Codec) Classify(ticker string) TickerClass {
	if len(ticker) > suffixLen {
		if c.indexRooted(ticker[:len(ticker)-suffixLen]) {
			return ClassIndexOption
		}
		return ClassOption
	}
	if c.indexRooted(ticker) {
		return ClassIndex
	}
	return ClassEquity
}

func (c *Codec) indexRooted(root string) bool {
	if c.Indices != nil && c.Indices.Contains(root) {
		return true
	}
	return c.IndexLike != nil && c.IndexLike(root)
}
