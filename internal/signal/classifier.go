package signal

import "github.com/ilovegrooming/TradeBot/internal/model"

// RSI thresholds for the oversold/overbought bands.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// Classify maps the most recent fully-defined indicator row to a
// per-indicator signal set. If the frame has no complete row (warm-up not
// satisfied, or RSI undefined throughout a flat series), every signal
// defaults to HOLD.
func Classify(frame *model.IndicatorFrame) model.SignalSet {
	row, ok := frame.LastComplete()
	if !ok {
		return model.HoldSet()
	}

	var set model.SignalSet

	switch {
	case row.RSI < rsiOversold:
		set.RSI = model.SignalBuy
	case row.RSI > rsiOverbought:
		set.RSI = model.SignalSell
	default:
		set.RSI = model.SignalHold
	}

	switch {
	case row.MACD > row.Signal:
		set.MACD = model.SignalBuy
	case row.MACD < row.Signal:
		set.MACD = model.SignalSell
	default:
		set.MACD = model.SignalHold
	}

	// Moving-average crosses have no HOLD branch: equality counts as SELL.
	if row.Close > row.EMA {
		set.EMA = model.SignalBuy
	} else {
		set.EMA = model.SignalSell
	}
	if row.Close > row.SMA {
		set.SMA = model.SignalBuy
	} else {
		set.SMA = model.SignalSell
	}

	return set
}

// Overall aggregates the four per-indicator signals into one
// recommendation: 3+ BUYs recommend BUY, 1 or fewer recommend SELL,
// anything in between is HOLD.
func Overall(set model.SignalSet) model.Recommendation {
	switch n := set.BuyCount(); {
	case n >= 3:
		return model.SignalBuy
	case n <= 1:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}
