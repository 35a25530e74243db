// Package metrics はPrometheus形式のメトリクスを提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "esg"

// Metrics はアプリケーション専用のレジストリとコレクターを保持します。
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	analyses *prometheus.CounterVec
}

// New は新しいレジストリにGo/プロセスのコレクターとHTTP・分析のメトリクスを登録します。
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{.005, .01, .05, .1, .5, 1, 2, 2.5, 5},
		}, []string{"method", "route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Number of company analyses by data origin.",
		}, []string{"origin"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.analyses,
	)
	return m
}

// Middleware はリクエスト数とレイテンシを記録します。
// ラベルの種類を抑えるため、パスではなく登録済みルートを使用します。
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordAnalysis は分析1件を参照データか合成データかで集計します。
func (m *Metrics) RecordAnalysis(synthetic bool) {
	origin := "reference"
	if synthetic {
		origin = "synthetic"
	}
	m.analyses.WithLabelValues(origin).Inc()
}

// Handler は /metrics 用のハンドラーを返します。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
