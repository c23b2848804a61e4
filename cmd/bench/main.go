package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"orderwire-go/bench"
	"orderwire-go/config"
	"orderwire-go/infrastructure/logger"
	"orderwire-go/internal/pipeline"
	"orderwire-go/latency"
	"orderwire-go/metrics"
	"orderwire-go/wire"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径（留空使用默认配置）")
	messages := flag.Int("messages", 0, "覆盖每批消息数")
	mode := flag.String("mode", "", "覆盖运行模式：ring 或 loopback")
	ringCap := flag.Int("ringCap", 0, "覆盖环容量（2的幂）")
	metricsAddr := flag.String("metricsAddr", "", "Prometheus metrics 监听地址，留空则关闭")
	loopFlag := flag.Bool("loop", false, "持续跑批直到收到 SIGINT/SIGTERM")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.LoadWithEnvOverrides(*cfgPath)
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
		cfg = loaded
	}
	if *messages > 0 {
		cfg.Bench.Messages = *messages
	}
	if *mode != "" {
		cfg.Bench.Mode = *mode
	}
	if *ringCap > 0 {
		cfg.Ring.Capacity = *ringCap
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if *loopFlag {
		cfg.Bench.Loop = true
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	lg, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer lg.Close()

	monitor := metrics.New(metrics.DefaultConfig())
	if cfg.Metrics.Addr != "" {
		metrics.StartMetricsServer(cfg.Metrics.Addr, monitor)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// loop 模式下支持配置热更新（批次规模、报告间隔）
	var mu sync.Mutex
	current := cfg
	if cfg.Bench.Loop && *cfgPath != "" {
		go func() {
			w := config.Watcher{Path: *cfgPath}
			_ = w.Start(ctx, func(next config.AppConfig) {
				mu.Lock()
				current.Bench.Messages = next.Bench.Messages
				current.Bench.ReportIntervalMs = next.Bench.ReportIntervalMs
				mu.Unlock()
				lg.LogPipeline("config_reloaded", map[string]interface{}{
					"messages":         next.Bench.Messages,
					"reportIntervalMs": next.Bench.ReportIntervalMs,
				})
			})
		}()
	}

	for {
		mu.Lock()
		batch := current
		mu.Unlock()

		if err := runBatch(ctx, batch, lg, monitor); err != nil {
			if ctx.Err() != nil {
				lg.LogPipeline("interrupted", nil)
				return
			}
			lg.LogError(err, map[string]interface{}{"stage": "batch"})
			os.Exit(1)
		}
		if !batch.Bench.Loop {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(batch.Bench.ReportIntervalMs) * time.Millisecond):
		}
	}
}

func runBatch(ctx context.Context, cfg config.AppConfig, lg *logger.Logger, monitor *metrics.Monitor) error {
	sampler, err := latency.NewSampler(cfg.Sampler.Capacity)
	if err != nil {
		return err
	}
	codec := wire.NewCodec(sampler, nil)
	gen := bench.NewGenerator(cfg.Bench.Symbols)

	switch cfg.Bench.Mode {
	case "loopback":
		res, err := bench.Loopback(codec, gen, cfg.Bench.Messages)
		if err != nil {
			return err
		}
		monitor.AddEncoded(res.Messages)
		monitor.AddDecoded(res.Messages - res.Rejected)
		monitor.SetThroughput(res.Throughput)
		fmt.Print(bench.FormatThroughput(res.Messages, res.Elapsed, res.Throughput))
	default:
		p, err := pipeline.New(pipeline.Config{
			Messages:     cfg.Bench.Messages,
			RingCapacity: cfg.Ring.Capacity,
		}, pipeline.Components{
			Codec:   codec,
			Sampler: sampler,
			Next:    gen.Order,
			Logger:  lg,
			Monitor: monitor,
		})
		if err != nil {
			return err
		}
		res, err := p.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Print(bench.FormatThroughput(res.Consumed, res.Elapsed, res.Throughput))
	}

	stats, ok := sampler.Stats()
	fmt.Print(bench.FormatStats(stats, ok))
	return nil
}
