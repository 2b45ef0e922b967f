// Package tracer 初始化 jaeger 链路追踪
package tracer

import (
	"io"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// NewJaegerTracer 创建 jaeger tracer 并设置为 opentracing 全局 tracer
// agentHostPort: jaeger agent 地址，例如 127.0.0.1:6831
// 返回的 io.Closer 在退出时调用以刷新未上报的 span
func NewJaegerTracer(serviceName, agentHostPort string) (opentracing.Tracer, io.Closer, error) {
	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:            false,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  agentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, nil, errors.Wrap(err, "create jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer, nil
}
