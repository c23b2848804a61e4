// Package pipeline drives encoded order frames from a producer
// goroutine through the SPSC ring to a consumer goroutine that decodes
// them and samples decode latency.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"orderwire-go/infrastructure/logger"
	"orderwire-go/latency"
	"orderwire-go/metrics"
	"orderwire-go/ring"
	"orderwire-go/wire"
)

// Config 管道配置
type Config struct {
	Messages     int // 本批次生产的消息数
	RingCapacity int // 必须为2的幂且>=2
}

// Components 管道依赖组件
type Components struct {
	Codec   *wire.Codec
	Sampler *latency.Sampler
	Next    func(i int) wire.Order // 第i条消息的订单来源
	Logger  *logger.Logger         // 可为nil
	Monitor *metrics.Monitor       // 可为nil
}

// Result 一次批次的统计信息
type Result struct {
	Produced   int
	Consumed   int
	Rejected   int
	PushFull   int // 满环重试次数（背压，非错误）
	PopEmpty   int // 空环重试次数（背压，非错误）
	Elapsed    time.Duration
	Throughput float64 // 消息/秒
}

// Pipeline owns one ring, one codec and one sampler. Exactly one
// producer and one consumer goroutine touch the ring; the sampler is
// written only from the consumer side, honoring its single-writer
// contract.
type Pipeline struct {
	cfg  Config
	comp Components
	ring *ring.Buffer[wire.Frame]

	mu   sync.Mutex
	last Result
}

// New 创建管道
func New(cfg Config, comp Components) (*Pipeline, error) {
	if cfg.Messages <= 0 {
		return nil, fmt.Errorf("pipeline: messages must be > 0, got %d", cfg.Messages)
	}
	if comp.Codec == nil || comp.Next == nil {
		return nil, fmt.Errorf("pipeline: codec and next are required")
	}
	rb, err := ring.New[wire.Frame](cfg.RingCapacity)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{cfg: cfg, comp: comp, ring: rb}, nil
}

// Run executes one batch and blocks until every produced frame has been
// consumed or ctx is canceled. Backpressure is handled by yielding the
// processor, never by blocking on a lock.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(1)
	var produced, pushFull int
	go func() {
		defer wg.Done()
		for i := 0; i < p.cfg.Messages; i++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			o := p.comp.Next(i)
			f := p.comp.Codec.EncodeFrame(&o)
			for !p.ring.Push(f) {
				pushFull++
				select {
				case <-ctx.Done():
					return
				default:
					runtime.Gosched()
				}
			}
			produced++
		}
	}()

	// 消费侧：解码并计数，直到收齐本批全部消息
	for res.Consumed+res.Rejected < p.cfg.Messages {
		f, ok := p.ring.Pop()
		if !ok {
			res.PopEmpty++
			select {
			case <-ctx.Done():
				wg.Wait()
				return p.finish(res, produced, pushFull, start), ctx.Err()
			default:
				runtime.Gosched()
			}
			continue
		}
		if _, ok := p.comp.Codec.Decode(f[:]); ok {
			res.Consumed++
			if p.comp.Monitor != nil && p.comp.Sampler != nil {
				if ns, ok := p.comp.Sampler.Last(); ok {
					p.comp.Monitor.ObserveDecodeLatency(ns)
				}
			}
		} else {
			res.Rejected++
			if p.comp.Monitor != nil {
				p.comp.Monitor.IncReject(wire.ClassifyReject(f[:]).String())
			}
		}
	}
	wg.Wait()

	return p.finish(res, produced, pushFull, start), nil
}

func (p *Pipeline) finish(res Result, produced, pushFull int, start time.Time) Result {
	res.Produced = produced
	res.PushFull = pushFull
	res.Elapsed = time.Since(start)
	if secs := res.Elapsed.Seconds(); secs > 0 {
		res.Throughput = float64(res.Consumed) / secs
	}

	if p.comp.Monitor != nil {
		p.comp.Monitor.AddEncoded(res.Produced)
		p.comp.Monitor.AddDecoded(res.Consumed)
		p.comp.Monitor.AddPushFull(res.PushFull)
		p.comp.Monitor.AddPopEmpty(res.PopEmpty)
		p.comp.Monitor.SetRingDepth(p.ring.Len())
		p.comp.Monitor.SetThroughput(res.Throughput)
	}
	if p.comp.Logger != nil {
		p.comp.Logger.LogPipeline("batch_done", map[string]interface{}{
			"produced":   res.Produced,
			"consumed":   res.Consumed,
			"rejected":   res.Rejected,
			"push_full":  res.PushFull,
			"pop_empty":  res.PopEmpty,
			"elapsed_ms": res.Elapsed.Milliseconds(),
			"throughput": res.Throughput,
		})
	}

	p.mu.Lock()
	p.last = res
	p.mu.Unlock()
	return res
}

// Last returns the most recent batch result.
func (p *Pipeline) Last() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
