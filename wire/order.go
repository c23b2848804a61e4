// Package wire implements the fixed-layout order record and its
// 38-byte big-endian wire codec.
package wire

// Side 订单方向
type Side int8

const (
	// Buy 买入
	Buy Side = 1
	// Sell 卖出
	Sell Side = -1
)

// String 返回方向名称
func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// OrderType 订单类型
type OrderType uint8

const (
	// Limit 限价单
	Limit OrderType = 0
	// Market 市价单
	Market OrderType = 1
	// Stop 止损单
	Stop OrderType = 2
)

// String 返回类型名称
func (t OrderType) String() string {
	switch t {
	case Limit:
		return "LIMIT"
	case Market:
		return "MARKET"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Order is the in-memory order record. It is padded out to exactly one
// 64-byte cache line so adjacent records in a hot loop never share a
// line; the padding bytes carry no meaning and are never transmitted.
// The transmitted form is the 38-byte frame produced by Codec.
type Order struct {
	OrderID     uint64
	TimestampNs uint64
	Price       float64
	Quantity    uint32
	Symbol      [8]byte // ASCII, NUL-padded; no terminator when fully occupied
	Side        Side
	Type        OrderType

	_ [26]byte
}

// NewOrder builds an Order with the symbol copied into its fixed field.
// Symbols longer than 8 bytes are truncated.
func NewOrder(id, tsNs uint64, symbol string, price float64, qty uint32, side Side, typ OrderType) Order {
	o := Order{
		OrderID:     id,
		TimestampNs: tsNs,
		Price:       price,
		Quantity:    qty,
		Side:        side,
		Type:        typ,
	}
	copy(o.Symbol[:], symbol)
	return o
}

// SymbolString returns the symbol up to the first NUL byte.
func (o *Order) SymbolString() string {
	for i, b := range o.Symbol {
		if b == 0 {
			return string(o.Symbol[:i])
		}
	}
	return string(o.Symbol[:])
}
