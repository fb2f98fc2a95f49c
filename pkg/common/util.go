package common

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func NewDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}
func ParseInt(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// TradingDate is the current calendar date in the given location, returned as a
// UTC midnight so it compares directly against option expiries
func TradingDate(loc *time.Location) time.Time {
	now := time.Now().UTC().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func CmpTime(t1 time.Time, t2 time.Time) int {
	if t1.Equal(t2) {
		return 0
	} else if t1.Before(t2) {
		return -1
	} else {
		return 1
	}
}
