package wire

import (
	"encoding/binary"
	"math"

	"orderwire-go/latency"
)

// FrameSize is the exact length of an encoded order. Every field's
// offset and width is part of the external contract; changing them
// breaks interoperability with existing peers.
const FrameSize = 38

// Wire layout, big-endian multi-byte fields.
const (
	offOrderID   = 0  // 8 bytes
	offTimestamp = 8  // 8 bytes
	offPrice     = 16 // 8 bytes, raw IEEE-754 bit pattern
	offQuantity  = 24 // 4 bytes
	offSymbol    = 28 // 8 bytes, ASCII NUL-padded
	offSide      = 36 // 1 byte, signed
	offType      = 37 // 1 byte
)

// Frame is one encoded order. Being a fixed-size array it moves through
// the ring buffer by value, with no per-message allocation.
type Frame [FrameSize]byte

// Codec converts orders to and from their wire frames. On every
// successful decode it records the elapsed decode time into the
// sampler; rejected frames are not sampled. A nil sampler disables
// measurement (encode-only contexts).
type Codec struct {
	sampler *latency.Sampler
	source  latency.Source
}

// NewCodec wires a codec to its sampler. source may be nil, in which
// case the runtime monotonic clock is used.
func NewCodec(sampler *latency.Sampler, source latency.Source) *Codec {
	if source == nil {
		source = latency.Monotonic
	}
	return &Codec{sampler: sampler, source: source}
}

// EncodeFrame serializes o. Encoding never fails for a well-formed
// Order: the symbol is copied verbatim (not re-validated) and the price
// crosses the wire as its exact 64-bit pattern, never a numeric
// conversion.
func (c *Codec) EncodeFrame(o *Order) Frame {
	var f Frame
	binary.BigEndian.PutUint64(f[offOrderID:], o.OrderID)
	binary.BigEndian.PutUint64(f[offTimestamp:], o.TimestampNs)
	binary.BigEndian.PutUint64(f[offPrice:], math.Float64bits(o.Price))
	binary.BigEndian.PutUint32(f[offQuantity:], o.Quantity)
	copy(f[offSymbol:offSymbol+8], o.Symbol[:])
	f[offSide] = byte(o.Side)
	f[offType] = byte(o.Type)
	return f
}

// Encode serializes o into a freshly allocated byte slice.
func (c *Codec) Encode(o *Order) []byte {
	f := c.EncodeFrame(o)
	return f[:]
}

// Decode parses one frame. It returns ok=false for inputs shorter than
// FrameSize and for frames failing validation (non-alphanumeric symbol
// byte before the first NUL, price ≤ 0, quantity == 0); no partial
// order is ever produced and all rejection causes collapse to the same
// outcome. Use ClassifyReject when the caller needs the reason.
func (c *Codec) Decode(data []byte) (Order, bool) {
	var start uint64
	if c.sampler != nil {
		start = c.source.Now()
	}

	if len(data) < FrameSize {
		return Order{}, false
	}

	var o Order
	o.OrderID = binary.BigEndian.Uint64(data[offOrderID:])
	o.TimestampNs = binary.BigEndian.Uint64(data[offTimestamp:])
	o.Price = math.Float64frombits(binary.BigEndian.Uint64(data[offPrice:]))
	o.Quantity = binary.BigEndian.Uint32(data[offQuantity:])
	copy(o.Symbol[:], data[offSymbol:offSymbol+8])
	o.Side = Side(int8(data[offSide]))
	o.Type = OrderType(data[offType])

	// NaN fails the price check too: !(NaN > 0).
	if !validSymbol(o.Symbol) || !(o.Price > 0) || o.Quantity == 0 {
		return Order{}, false
	}

	if c.sampler != nil {
		c.sampler.Record(c.source.Now() - start)
	}
	return o, true
}

// validSymbol accepts only ASCII alphanumeric bytes before the first
// NUL. An empty symbol (NUL at position 0) is valid.
func validSymbol(sym [8]byte) bool {
	for _, b := range sym {
		if b == 0 {
			return true
		}
		if !isAlnum(b) {
			return false
		}
	}
	return true
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
