package wire

import (
	"encoding/binary"
	"math"
)

// RejectReason classifies why a frame fails Decode. Decode itself stays
// reason-free on the hot path; callers that need per-reason counters
// re-inspect the already-rejected frame with ClassifyReject.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectShortFrame
	RejectBadSymbol
	RejectBadPrice
	RejectBadQuantity
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectShortFrame:
		return "short_frame"
	case RejectBadSymbol:
		return "bad_symbol"
	case RejectBadPrice:
		return "bad_price"
	case RejectBadQuantity:
		return "bad_quantity"
	default:
		return "unknown"
	}
}

// ClassifyReject reports the first check the frame fails, in the same
// order Decode applies them. RejectNone means the frame would decode.
func ClassifyReject(data []byte) RejectReason {
	if len(data) < FrameSize {
		return RejectShortFrame
	}
	var sym [8]byte
	copy(sym[:], data[offSymbol:offSymbol+8])
	if !validSymbol(sym) {
		return RejectBadSymbol
	}
	if !(math.Float64frombits(binary.BigEndian.Uint64(data[offPrice:])) > 0) {
		return RejectBadPrice
	}
	if binary.BigEndian.Uint32(data[offQuantity:]) == 0 {
		return RejectBadQuantity
	}
	return RejectNone
}
