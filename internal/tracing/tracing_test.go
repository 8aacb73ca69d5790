package tracing

import (
	"context"
	"testing"
)

func TestInitTracingWithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	tracer, shutdown, err := InitTracing(ctx, "rou-lease-test", "")
	if err != nil {
		t.Fatalf("InitTracing() error = %v", err)
	}
	_, span := tracer.Start(ctx, "test_span")
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}
