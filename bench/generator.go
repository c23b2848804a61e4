// Package bench generates deterministic order streams and formats
// benchmark reports. It drives the codec; it is not part of the codec
// contract itself.
package bench

import "orderwire-go/wire"

// Generator produces a deterministic order sequence so runs are
// reproducible: order i has id i+1, a timestamp walking forward one
// nanosecond per message, a slowly rising price and a cycling quantity.
type Generator struct {
	Symbols   []string
	BasePrice float64
	BaseTsNs  uint64
}

// NewGenerator uses the given symbol rotation; defaults are applied for
// an empty list.
func NewGenerator(symbols []string) *Generator {
	if len(symbols) == 0 {
		symbols = []string{"AAPL", "MSFT", "GOOG", "AMZN"}
	}
	return &Generator{
		Symbols:   symbols,
		BasePrice: 50.25,
		BaseTsNs:  1000,
	}
}

// Order returns the i-th order of the sequence.
func (g *Generator) Order(i int) wire.Order {
	side := wire.Buy
	if i%2 == 1 {
		side = wire.Sell
	}
	typ := wire.OrderType(i % 3)
	return wire.NewOrder(
		uint64(i)+1,
		g.BaseTsNs+uint64(i),
		g.Symbols[i%len(g.Symbols)],
		g.BasePrice+float64(i)*0.01,
		uint32(10+i%100),
		side,
		typ,
	)
}
