package main

import (
	"flag"
	"fmt"
	"log"

	"orderwire-go/wire"
)

// 编码单个订单并按字段偏移打印38字节帧，用于核对线缆布局。
func main() {
	id := flag.Uint64("id", 1, "order id")
	ts := flag.Uint64("ts", 123456789, "timestamp (ns)")
	price := flag.Float64("price", 42.5, "price")
	qty := flag.Uint("qty", 100, "quantity")
	symbol := flag.String("symbol", "AAPL", "symbol (<=8 ASCII alphanumeric)")
	sell := flag.Bool("sell", false, "sell side (default buy)")
	typ := flag.Uint("type", uint(wire.Market), "order type: 0=limit 1=market 2=stop")
	flag.Parse()

	side := wire.Buy
	if *sell {
		side = wire.Sell
	}
	o := wire.NewOrder(*id, *ts, *symbol, *price, uint32(*qty), side, wire.OrderType(*typ))

	codec := wire.NewCodec(nil, nil)
	f := codec.EncodeFrame(&o)

	fmt.Printf("order: id=%d ts=%d symbol=%q price=%v qty=%d side=%s type=%s\n",
		o.OrderID, o.TimestampNs, o.SymbolString(), o.Price, o.Quantity, o.Side, o.Type)
	fmt.Printf("frame (%d bytes):\n", wire.FrameSize)

	fields := []struct {
		name string
		off  int
		size int
	}{
		{"order_id", 0, 8},
		{"timestamp_ns", 8, 8},
		{"price", 16, 8},
		{"quantity", 24, 4},
		{"symbol", 28, 8},
		{"side", 36, 1},
		{"type", 37, 1},
	}
	for _, fd := range fields {
		fmt.Printf("  %-12s @%2d  % x\n", fd.name, fd.off, f[fd.off:fd.off+fd.size])
	}

	if got, ok := codec.Decode(f[:]); !ok {
		log.Fatal("frame does not decode; check field values")
	} else if got != o {
		log.Fatal("round-trip mismatch")
	}
	fmt.Println("round-trip: ok")
}
