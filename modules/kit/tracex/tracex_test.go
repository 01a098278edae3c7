package tracex

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ctx = WithTraceID(ctx, "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 TraceIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
	if _, ok := SpanIDFrom(ctx); ok {
		t.Fatalf("期望未设置 span_id 时 ok=false")
	}
}

func TestTraceID_空值视为不存在(t *testing.T) {
	ctx := WithSpanID(context.Background(), "")
	if _, ok := SpanIDFrom(ctx); ok {
		t.Fatalf("期望空 span_id 视为不存在")
	}
}

func TestNewTraceID_是合法uuid(t *testing.T) {
	id := NewTraceID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("期望 NewTraceID 返回合法 uuid, got=%q err=%v", id, err)
	}
	if id == NewTraceID() {
		t.Fatalf("期望两次生成的 trace_id 不同")
	}
}
