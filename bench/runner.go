package bench

import (
	"fmt"
	"time"

	"orderwire-go/latency"
	"orderwire-go/wire"
)

// Result 单线程回环跑批结果
type Result struct {
	Messages   int
	Rejected   int
	Elapsed    time.Duration
	Throughput float64
}

// Loopback encodes and immediately decodes n orders on the calling
// goroutine, the degenerate single-threaded pipeline. It exercises the
// codec and sampler without ring transport and is the baseline against
// which the two-goroutine run is compared.
func Loopback(codec *wire.Codec, gen *Generator, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("bench: message count must be > 0, got %d", n)
	}
	var res Result
	start := time.Now()
	for i := 0; i < n; i++ {
		o := gen.Order(i)
		f := codec.EncodeFrame(&o)
		if _, ok := codec.Decode(f[:]); !ok {
			res.Rejected++
		}
	}
	res.Messages = n
	res.Elapsed = time.Since(start)
	if secs := res.Elapsed.Seconds(); secs > 0 {
		res.Throughput = float64(n-res.Rejected) / secs
	}
	return res, nil
}

// FormatStats renders the six sampler statistics as console lines.
// Formatting is presentation only; the numbers come from
// latency.Analyze unchanged.
func FormatStats(s latency.Stats, ok bool) string {
	if !ok {
		return "No latency data recorded.\n"
	}
	return fmt.Sprintf(
		"Count: %d\nMin: %d ns\nMedian: %d ns\nMean: %.1f ns\n99th percentile: %d ns\n99.9th percentile: %d ns\nMax: %d ns\n",
		s.Count, s.Min, s.Median, s.Mean, s.P99, s.P999, s.Max,
	)
}

// FormatThroughput renders a batch summary line.
func FormatThroughput(messages int, elapsed time.Duration, throughput float64) string {
	return fmt.Sprintf("Parsed %d messages in %.3f seconds (%.0f msgs/sec)\n",
		messages, elapsed.Seconds(), throughput)
}
