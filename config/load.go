package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"orderwire-go/infrastructure/logger"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env     string        `yaml:"env"`
	Bench   BenchConfig   `yaml:"bench"`
	Ring    RingConfig    `yaml:"ring"`
	Sampler SamplerConfig `yaml:"sampler"`
	Logging logger.Config `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// BenchConfig 控制基准批次的规模与节奏。
type BenchConfig struct {
	Messages         int      `yaml:"messages"`         // 每批消息数
	Symbols          []string `yaml:"symbols"`          // 生成订单轮换使用的标的
	Mode             string   `yaml:"mode"`             // loopback 或 ring
	Loop             bool     `yaml:"loop"`             // 持续跑批直到收到信号
	ReportIntervalMs int      `yaml:"reportIntervalMs"` // loop 模式下两次报告的最小间隔
}

type RingConfig struct {
	Capacity int `yaml:"capacity"` // 必须为2的幂且>=2
}

type SamplerConfig struct {
	Capacity int `yaml:"capacity"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // 留空则不启动 metrics server
}

// Default returns a runnable configuration for local benchmarking.
func Default() AppConfig {
	return AppConfig{
		Env: "dev",
		Bench: BenchConfig{
			Messages:         2_000_000,
			Symbols:          []string{"AAPL", "MSFT", "GOOG", "AMZN"},
			Mode:             "ring",
			ReportIntervalMs: 5000,
		},
		Ring:    RingConfig{Capacity: 1024},
		Sampler: SamplerConfig{Capacity: 1_000_000},
		Logging: logger.DefaultConfig(),
		Metrics: MetricsConfig{Addr: ""},
	}
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides selected fields from
// env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("OW_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("OW_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("OW_BENCH_MESSAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse OW_BENCH_MESSAGES: %w", err)
		}
		cfg.Bench.Messages = n
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
