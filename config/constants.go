package config

// Input keys understood by Load, both in the params file and as
// environment variables.
const (
	KeyLotSize                = "PATTERN_LOT_SIZE"
	KeySignalOpenMethod       = "PATTERN_SIGNAL_OPEN_METHOD"
	KeySignalOpenFilterMethod = "PATTERN_SIGNAL_OPEN_FILTER_METHOD"
	KeySignalOpenFilterTime   = "PATTERN_SIGNAL_OPEN_FILTER_TIME"
	KeySignalOpenLevel        = "PATTERN_SIGNAL_OPEN_LEVEL"
	KeySignalOpenBoostMethod  = "PATTERN_SIGNAL_OPEN_BOOST_METHOD"
	KeySignalCloseMethod      = "PATTERN_SIGNAL_CLOSE_METHOD"
	KeySignalCloseFilter      = "PATTERN_SIGNAL_CLOSE_FILTER"
	KeySignalCloseLevel       = "PATTERN_SIGNAL_CLOSE_LEVEL"
	KeyPriceStopMethod        = "PATTERN_PRICE_STOP_METHOD"
	KeyPriceStopLevel         = "PATTERN_PRICE_STOP_LEVEL"
	KeyTickFilterMethod       = "PATTERN_TICK_FILTER_METHOD"
	KeyMaxSpread              = "PATTERN_MAX_SPREAD"
	KeyShift                  = "PATTERN_SHIFT"
	KeyOrderCloseLoss         = "PATTERN_ORDER_CLOSE_LOSS"
	KeyOrderCloseProfit       = "PATTERN_ORDER_CLOSE_PROFIT"
	KeyOrderCloseTime         = "PATTERN_ORDER_CLOSE_TIME"
)
