// Package params binds the pattern strategy's parameter sets to the
// timeframes it trades on. Every binding is built once during package
// initialization from the shared defaults table and is read-only afterwards,
// so any number of goroutines may read it without locking.
package params

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/evdnx/stgpattern/config"
	"github.com/evdnx/stgpattern/metrics"
	"github.com/evdnx/stgpattern/timeframe"
	"github.com/samber/lo"
)

// ErrNoBinding is returned by Lookup for timeframes the strategy ships no
// parameter set for.
var ErrNoBinding = errors.New("no parameter set bound to timeframe")

// PatternParamsM5 defines the pattern strategy's parameter values for the
// 5-minute timeframe.
type PatternParamsM5 struct {
	config.StgParams
}

func newPatternParamsM5() PatternParamsM5 {
	return PatternParamsM5{StgParams: config.PatternDefaults()}
}

var patternM5 = newPatternParamsM5()

// PatternM5 returns the M5 parameter set. The result is a copy; changing it
// does not affect later calls.
func PatternM5() PatternParamsM5 {
	return patternM5
}

// bindings holds one parameter set per supported timeframe. M5 is the
// patternM5 instance itself, not a second copy of the defaults.
var bindings = map[timeframe.Timeframe]config.StgParams{
	timeframe.M1:  config.PatternDefaults(),
	timeframe.M5:  patternM5.StgParams,
	timeframe.M15: config.PatternDefaults(),
	timeframe.M30: config.PatternDefaults(),
	timeframe.H1:  config.PatternDefaults(),
	timeframe.H2:  config.PatternDefaults(),
	timeframe.H3:  config.PatternDefaults(),
	timeframe.H4:  config.PatternDefaults(),
	timeframe.H6:  config.PatternDefaults(),
	timeframe.H8:  config.PatternDefaults(),
}

func init() {
	metrics.BindingsRegistered.Set(float64(len(bindings)))
}

// Lookup returns a copy of the parameter set bound to tf.
func Lookup(tf timeframe.Timeframe) (config.StgParams, error) {
	label := tf.String()
	if !tf.Valid() {
		label = "unknown"
	}
	p, ok := bindings[tf]
	if !ok {
		metrics.ParamsLookups.WithLabelValues(label, "miss").Inc()
		return config.StgParams{}, fmt.Errorf("%w: %s", ErrNoBinding, tf)
	}
	metrics.ParamsLookups.WithLabelValues(label, "hit").Inc()
	return p, nil
}

// Timeframes lists every bound timeframe, shortest first.
func Timeframes() []timeframe.Timeframe {
	out := lo.Keys(bindings)
	slices.SortFunc(out, func(a, b timeframe.Timeframe) int {
		return cmp.Compare(a.Duration(), b.Duration())
	})
	return out
}
