package tracer

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJaegerTracer(t *testing.T) {
	t.Cleanup(func() { opentracing.SetGlobalTracer(opentracing.NoopTracer{}) })

	tr, closer, err := NewJaegerTracer("notes-test", "127.0.0.1:6831")
	require.NoError(t, err)
	defer closer.Close()

	assert.Same(t, tr, opentracing.GlobalTracer())
	assert.True(t, opentracing.IsGlobalTracerRegistered())

	span := tr.StartSpan("probe")
	span.Finish()
}
