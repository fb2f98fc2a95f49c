// Package symbology converts between canonical Symbols and the flat ticker
// strings used by the brokerage wire format.
package symbology

import (
	"bufio"
	"os"
	"strings"
)

// IndexSet is the curated set of root tickers that identify cash indices. the
// wire format carries no security type tag, membership here is what decides
// whether an option root is an index or an equity
type IndexSet struct {
	members map[string]bool
}

func NewIndexSet(roots ...string) *IndexSet {
	s := &IndexSet{members: make(map[string]bool)}
	for _, r := range roots {
		s.Add(r)
	}
	return s
}

func (s *IndexSet) Add(root string) {
	s.members[strings.ToUpper(strings.TrimSpace(root))] = true
}

func (s *IndexSet) Contains(root string) bool {
	return s.members[strings.ToUpper(root)]
}

func (s *IndexSet) Len() int {
	return len(s.members)
}

// Load adds roots from a file, one per line, see configs/indices.txt for the format
func (s *IndexSet) Load(filepath string) error {
	inputFile, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.Add(line)
	}
	return nil
}

// weekly and pm-settled roots trade under their own ticker but settle against
// the base index
var weeklyRoots = map[string]string{
	"SPXW":  "SPX",
	"SPXPM": "SPX",
	"VIXW":  "VIX",
	"NDXP":  "NDX",
	"NQX":   "NDX",
	"RUTW":  "RUT",
}

// MapToUnderlying resolves an index option root to the ticker of the index it
// settles against, e.g. SPXW -> SPX. most roots map to themselves
func (s *IndexSet) MapToUnderlying(root string) string {
	if u, ok := weeklyRoots[strings.ToUpper(root)]; ok {
		return u
	}
	return root
}

var defaultIndexRoots = []string{
	// S&P
	"SPX", "SPXW", "SPXPM", "XSP", "NANOS", "OEX", "XEO", "MID", "SML",
	// Nasdaq
	"NDX", "NDXP", "NQX", "VOLQ", "COMP",
	// Russell
	"RUT", "RUTW", "MRUT", "RUI", "RUA", "RLG", "RLV", "RUJ", "RUO",
	// Dow
	"DJX", "DTX", "DUX", "DXL", "GDOW",
	// volatility
	"VIX", "VIXW", "VVIX", "VIX1D", "VIX9D", "VIX3M", "VIX6M", "VXST",
	"VXN", "VXD", "RVX", "VXO", "OVX", "GVZ", "EVZ", "SKEW", "TYVIX",
	"VXEEM", "VXEWZ", "VXAPL", "VXAZN", "VXGOG", "VXGS", "VXIBM",
	// sector
	"SOX", "OSX", "BKX", "XAU", "HGX", "UTY", "XNG", "DRG", "XCI", "MSH",
	"SIXB", "SIXC", "SIXE", "SIXF", "SIXH", "SIXI", "SIXM", "SIXR",
	"SIXT", "SIXU", "SIXV", "SIXY",
	// NYSE / AMEX
	"NYA", "XMI", "XII", "XAL", "XBD", "XON", "HUI",
	// buy-write and other strategy benchmarks
	"BXM", "BXMD", "BXD", "BXN", "BXR", "BXY", "PUT", "PPUT", "CLL",
	"CMBO", "CNDR", "BFLY",
	// currency
	"XDE", "XDB", "XDN", "XDA", "XDC", "XDS",
	// rates
	"TNX", "TYX", "FVX", "IRX",
	// MSCI
	"MXEA", "MXEF",
}

// DefaultIndexSet is the compiled-in curated set. callers can Add to it or Load
// a replacement list from a file
func DefaultIndexSet() *IndexSet {
	return NewIndexSet(defaultIndexRoots...)
}
