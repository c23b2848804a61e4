// Package metrics provides Prometheus metrics for the wire codec
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor Prometheus监控指标收集器
type Monitor struct {
	registry *prometheus.Registry

	// 编解码指标
	framesEncoded prometheus.Counter
	framesDecoded prometheus.Counter
	decodeRejects *prometheus.CounterVec
	decodeLatency prometheus.Histogram

	// 环形队列指标
	ringPushFull prometheus.Counter
	ringPopEmpty prometheus.Counter
	ringDepth    prometheus.Gauge

	// 吞吐指标
	throughput prometheus.Gauge
}

// Config 监控配置
type Config struct {
	Namespace string
	Subsystem string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Namespace: "ow",
		Subsystem: "codec",
	}
}

// New 创建新的Monitor实例
func New(cfg Config) *Monitor {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Monitor{
		registry: reg,

		framesEncoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "frames_encoded_total",
			Help:      "编码帧总数",
		}),
		framesDecoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "frames_decoded_total",
			Help:      "解码成功帧总数",
		}),
		decodeRejects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "decode_rejects_total",
			Help:      "解码拒绝总数（按原因）",
		}, []string{"reason"}),
		decodeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "decode_latency_seconds",
			Help:      "解码延迟分布（秒）",
			Buckets:   []float64{50e-9, 100e-9, 250e-9, 500e-9, 1e-6, 2.5e-6, 5e-6, 10e-6, 100e-6},
		}),
		ringPushFull: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "ring_push_full_total",
			Help:      "push 遇到满环次数（背压信号，非错误）",
		}),
		ringPopEmpty: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "ring_pop_empty_total",
			Help:      "pop 遇到空环次数（背压信号，非错误）",
		}),
		ringDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "ring_depth",
			Help:      "环形队列当前深度（advisory）",
		}),
		throughput: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "throughput_msgs_per_sec",
			Help:      "最近一次批次的消息吞吐",
		}),
	}
}

// AddEncoded 累加编码帧数
func (m *Monitor) AddEncoded(n int) {
	m.framesEncoded.Add(float64(n))
}

// AddDecoded 累加解码成功帧数
func (m *Monitor) AddDecoded(n int) {
	m.framesDecoded.Add(float64(n))
}

// IncReject 按原因累加解码拒绝
func (m *Monitor) IncReject(reason string) {
	m.decodeRejects.WithLabelValues(reason).Inc()
}

// ObserveDecodeLatency 记录一次解码耗时（纳秒）
func (m *Monitor) ObserveDecodeLatency(ns uint64) {
	m.decodeLatency.Observe(float64(ns) / 1e9)
}

// AddPushFull 累加满环背压次数
func (m *Monitor) AddPushFull(n int) {
	m.ringPushFull.Add(float64(n))
}

// AddPopEmpty 累加空环背压次数
func (m *Monitor) AddPopEmpty(n int) {
	m.ringPopEmpty.Add(float64(n))
}

// SetRingDepth 更新队列深度
func (m *Monitor) SetRingDepth(n int) {
	m.ringDepth.Set(float64(n))
}

// SetThroughput 更新吞吐
func (m *Monitor) SetThroughput(msgsPerSec float64) {
	m.throughput.Set(msgsPerSec)
}

// Handler 返回该实例专属registry的HTTP handler
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 暴露registry供测试断言
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// StartMetricsServer 启动Prometheus指标服务器
func StartMetricsServer(addr string, m *Monitor) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
