package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/evdnx/stgpattern/logger"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var errEmptyInput = errors.New("empty value")

type floatInput struct {
	key   string
	field func(*StgParams) *float64
}

type intInput struct {
	key   string
	field func(*StgParams) *int
}

var floatInputs = []floatInput{
	{KeyLotSize, func(p *StgParams) *float64 { return &p.LotSize }},
	{KeySignalOpenLevel, func(p *StgParams) *float64 { return &p.SignalOpenLevel }},
	{KeySignalCloseLevel, func(p *StgParams) *float64 { return &p.SignalCloseLevel }},
	{KeyPriceStopLevel, func(p *StgParams) *float64 { return &p.PriceStopLevel }},
	{KeyMaxSpread, func(p *StgParams) *float64 { return &p.MaxSpread }},
	{KeyOrderCloseLoss, func(p *StgParams) *float64 { return &p.OrderCloseLoss }},
	{KeyOrderCloseProfit, func(p *StgParams) *float64 { return &p.OrderCloseProfit }},
}

var intInputs = []intInput{
	{KeySignalOpenMethod, func(p *StgParams) *int { return &p.SignalOpenMethod }},
	{KeySignalOpenFilterMethod, func(p *StgParams) *int { return &p.SignalOpenFilterMethod }},
	{KeySignalOpenFilterTime, func(p *StgParams) *int { return &p.SignalOpenFilterTime }},
	{KeySignalOpenBoostMethod, func(p *StgParams) *int { return &p.SignalOpenBoostMethod }},
	{KeySignalCloseMethod, func(p *StgParams) *int { return &p.SignalCloseMethod }},
	{KeySignalCloseFilter, func(p *StgParams) *int { return &p.SignalCloseFilter }},
	{KeyPriceStopMethod, func(p *StgParams) *int { return &p.PriceStopMethod }},
	{KeyTickFilterMethod, func(p *StgParams) *int { return &p.TickFilterMethod }},
	{KeyShift, func(p *StgParams) *int { return &p.Shift }},
	{KeyOrderCloseTime, func(p *StgParams) *int { return &p.OrderCloseTime }},
}

// Keys lists every input key Load understands.
func Keys() []string {
	keys := lo.Map(floatInputs, func(f floatInput, _ int) string { return f.key })
	return append(keys, lo.Map(intInputs, func(i intInput, _ int) string { return i.key })...)
}

// Load overlays user inputs onto base and validates the result. Inputs come
// from an optional .env-style file at path and from environment variables,
// environment taking precedence. base itself is left untouched.
//
// Values are parsed strictly: integers must be base-10 literals and floats
// must parse as numbers. Anything else is an error, never a silent zero.
func Load(path string, base StgParams, log logger.Logger) (StgParams, error) {
	v := viper.New()
	v.AutomaticEnv()

	for _, f := range floatInputs {
		v.SetDefault(f.key, *f.field(&base))
	}
	for _, i := range intInputs {
		v.SetDefault(i.key, *i.field(&base))
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Error("params_read_failed", logger.String("path", path), logger.Err(err))
			return StgParams{}, fmt.Errorf("read params %s: %w", path, err)
		}
	}

	invalid := func(key string, err error) (StgParams, error) {
		log.Error("params_invalid",
			logger.String("path", path),
			logger.String("key", key),
			logger.Err(err),
		)
		return StgParams{}, fmt.Errorf("%s: %w", key, err)
	}

	// base is a copy, so writing through it is local.
	for _, f := range floatInputs {
		raw := v.Get(f.key)
		if s, ok := raw.(string); ok {
			if s = strings.TrimSpace(s); s == "" {
				return invalid(f.key, errEmptyInput)
			}
			raw = s
		}
		val, err := cast.ToFloat64E(raw)
		if err != nil {
			return invalid(f.key, err)
		}
		*f.field(&base) = val
	}
	for _, i := range intInputs {
		val, err := strconv.ParseInt(strings.TrimSpace(v.GetString(i.key)), 10, 0)
		if err != nil {
			return invalid(i.key, err)
		}
		*i.field(&base) = int(val)
	}

	if err := base.Validate(); err != nil {
		log.Error("params_invalid", logger.String("path", path), logger.Err(err))
		return StgParams{}, err
	}
	log.Info("params_loaded",
		logger.String("path", path),
		logger.Float64("lot_size", base.LotSize),
		logger.Float64("max_spread", base.MaxSpread),
		logger.Int("shift", base.Shift),
	)
	return base, nil
}
