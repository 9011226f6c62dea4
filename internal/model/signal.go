package model

import "fmt"

// Signal is a per-indicator trading classification.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Recommendation is the aggregate signal across all four indicators.
type Recommendation = Signal

// SignalSet maps each indicator to its classification.
type SignalSet struct {
	RSI  Signal
	MACD Signal
	EMA  Signal
	SMA  Signal
}

// HoldSet is the fail-soft default used when no complete indicator row exists.
func HoldSet() SignalSet {
	return SignalSet{
		RSI:  SignalHold,
		MACD: SignalHold,
		EMA:  SignalHold,
		SMA:  SignalHold,
	}
}

// BuyCount returns how many of the four indicators say BUY.
func (s SignalSet) BuyCount() int {
	count := 0
	for _, sig := range []Signal{s.RSI, s.MACD, s.EMA, s.SMA} {
		if sig == SignalBuy {
			count++
		}
	}
	return count
}

// ScanMatch records a watch-list ticker where most indicators say BUY.
type ScanMatch struct {
	Symbol   string
	BuyCount int
}

// String renders the match line the presentation layer expects.
func (m ScanMatch) String() string {
	return fmt.Sprintf("%s: %d/4 indicators say BUY", m.Symbol, m.BuyCount)
}
