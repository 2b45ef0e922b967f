// Package metrics 定义服务的 prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "notes"

// Metrics 服务指标集合
type Metrics struct {
	// RequestsTotal 按路由、方法、状态码统计的请求数
	RequestsTotal *prometheus.CounterVec
	// RequestDuration 请求耗时
	RequestDuration *prometheus.HistogramVec
	// StoreUp 存储连接是否可用，1 可用 0 不可用
	StoreUp prometheus.Gauge
}

// New creates the collectors and registers them on reg; a nil reg skips registration
// New 创建指标并注册到 reg，reg 为 nil 时不注册
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		StoreUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_up",
			Help:      "Whether the document store answered the last probe.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.StoreUp)
	}
	return m
}

// SetStoreUp 更新存储可用状态
func (m *Metrics) SetStoreUp(up bool) {
	if up {
		m.StoreUp.Set(1)
		return
	}
	m.StoreUp.Set(0)
}
