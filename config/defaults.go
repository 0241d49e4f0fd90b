package config

// patternDefaults is the pattern strategy's defaults table. Per-timeframe
// bindings copy it; nothing writes to it after init.
var patternDefaults = StgParams{
	LotSize:                0,
	SignalOpenMethod:       0,
	SignalOpenFilterMethod: 32,
	SignalOpenFilterTime:   3,
	SignalOpenLevel:        0,
	SignalOpenBoostMethod:  0,
	SignalCloseMethod:      0,
	SignalCloseFilter:      32,
	SignalCloseLevel:       0,
	PriceStopMethod:        0,
	PriceStopLevel:         2,
	TickFilterMethod:       32,
	MaxSpread:              4.0,
	Shift:                  1,
	OrderCloseLoss:         80,
	OrderCloseProfit:       80,
	OrderCloseTime:         -30,
}

func init() {
	if err := patternDefaults.Validate(); err != nil {
		panic("config: pattern defaults invalid: " + err.Error())
	}
}

// PatternDefaults returns a copy of the pattern strategy's defaults table.
func PatternDefaults() StgParams {
	return patternDefaults
}
