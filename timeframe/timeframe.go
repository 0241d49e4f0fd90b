// Package timeframe names the chart intervals parameter sets are keyed by.
package timeframe

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Timeframe is a trading interval label such as "M5" (5-minute bars).
type Timeframe string

const (
	M1  Timeframe = "M1"
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H2  Timeframe = "H2"
	H3  Timeframe = "H3"
	H4  Timeframe = "H4"
	H6  Timeframe = "H6"
	H8  Timeframe = "H8"
	H12 Timeframe = "H12"
	D1  Timeframe = "D1"
	W1  Timeframe = "W1"
	MN1 Timeframe = "MN1"
)

// ErrUnknown is returned by Parse for labels that name no timeframe.
var ErrUnknown = errors.New("unknown timeframe")

type tfInfo struct {
	tf       Timeframe
	interval string // exchange-style alias, e.g. "5m"
	dur      time.Duration
}

// ordered by duration
var infos = []tfInfo{
	{M1, "1m", time.Minute},
	{M5, "5m", 5 * time.Minute},
	{M15, "15m", 15 * time.Minute},
	{M30, "30m", 30 * time.Minute},
	{H1, "1h", time.Hour},
	{H2, "2h", 2 * time.Hour},
	{H3, "3h", 3 * time.Hour},
	{H4, "4h", 4 * time.Hour},
	{H6, "6h", 6 * time.Hour},
	{H8, "8h", 8 * time.Hour},
	{H12, "12h", 12 * time.Hour},
	{D1, "1d", 24 * time.Hour},
	{W1, "1w", 7 * 24 * time.Hour},
	{MN1, "1M", 30 * 24 * time.Hour},
}

var byLabel = lo.SliceToMap(infos, func(s tfInfo) (Timeframe, tfInfo) { return s.tf, s })

// All returns every known timeframe in ascending duration order.
func All() []Timeframe {
	return lo.Map(infos, func(s tfInfo, _ int) Timeframe { return s.tf })
}

// Parse accepts either the canonical label ("M5", case-insensitive) or the
// exchange interval ("5m"). The interval form is case-sensitive because
// "1m" and "1M" differ.
func Parse(s string) (Timeframe, error) {
	s = strings.TrimSpace(s)
	if sp, ok := byLabel[Timeframe(strings.ToUpper(s))]; ok {
		return sp.tf, nil
	}
	if sp, ok := lo.Find(infos, func(sp tfInfo) bool { return sp.interval == s }); ok {
		return sp.tf, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Valid reports whether tf is one of the known timeframes.
func (tf Timeframe) Valid() bool {
	_, ok := byLabel[tf]
	return ok
}

// Duration of one bar. Zero for unknown timeframes. MN1 counts as 30 days.
func (tf Timeframe) Duration() time.Duration {
	return byLabel[tf].dur
}

// Seconds of one bar, the unit the strategy layer measures timeframes in.
func (tf Timeframe) Seconds() int {
	return int(tf.Duration() / time.Second)
}

// Interval returns the exchange-style alias ("5m" for M5).
func (tf Timeframe) Interval() string {
	return byLabel[tf].interval
}

func (tf Timeframe) String() string { return string(tf) }
