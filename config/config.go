package config

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// StgParams holds the tunable parameters every strategy exposes. Method
// fields are bitmasks interpreted by the strategy that owns the set; this
// package only carries and validates them.
type StgParams struct {
	// Sizing
	LotSize float64 `mapstructure:"lot_size" json:"lot_size" validate:"gte=0"` // 0 = framework decides

	// Open signal
	SignalOpenMethod       int     `mapstructure:"signal_open_method" json:"signal_open_method"`
	SignalOpenFilterMethod int     `mapstructure:"signal_open_filter_method" json:"signal_open_filter_method"`
	SignalOpenFilterTime   int     `mapstructure:"signal_open_filter_time" json:"signal_open_filter_time" validate:"gte=0"`
	SignalOpenLevel        float64 `mapstructure:"signal_open_level" json:"signal_open_level"`
	SignalOpenBoostMethod  int     `mapstructure:"signal_open_boost_method" json:"signal_open_boost_method"`

	// Close signal
	SignalCloseMethod int     `mapstructure:"signal_close_method" json:"signal_close_method"`
	SignalCloseFilter int     `mapstructure:"signal_close_filter" json:"signal_close_filter"`
	SignalCloseLevel  float64 `mapstructure:"signal_close_level" json:"signal_close_level"`

	// Stops and filters
	PriceStopMethod  int     `mapstructure:"price_stop_method" json:"price_stop_method"`
	PriceStopLevel   float64 `mapstructure:"price_stop_level" json:"price_stop_level" validate:"gte=0"`
	TickFilterMethod int     `mapstructure:"tick_filter_method" json:"tick_filter_method"`
	MaxSpread        float64 `mapstructure:"max_spread" json:"max_spread" validate:"gte=0"` // pips
	Shift            int     `mapstructure:"shift" json:"shift" validate:"gte=0"`           // bars

	// Order close rules
	OrderCloseLoss   float64 `mapstructure:"order_close_loss" json:"order_close_loss" validate:"gte=0"`     // percent, 0 = off
	OrderCloseProfit float64 `mapstructure:"order_close_profit" json:"order_close_profit" validate:"gte=0"` // percent, 0 = off
	OrderCloseTime   int     `mapstructure:"order_close_time" json:"order_close_time"`                      // <0 bars, >0 minutes, 0 = off
}

// Validate checks that all numeric fields are within sensible bounds.
// It returns the first encountered error, allowing the caller to surface a
// clear configuration problem before any trading starts.
func (p StgParams) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"LotSize", p.LotSize},
		{"SignalOpenLevel", p.SignalOpenLevel},
		{"SignalCloseLevel", p.SignalCloseLevel},
		{"PriceStopLevel", p.PriceStopLevel},
		{"MaxSpread", p.MaxSpread},
		{"OrderCloseLoss", p.OrderCloseLoss},
		{"OrderCloseProfit", p.OrderCloseProfit},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.v)
		}
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}
