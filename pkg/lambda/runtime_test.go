package lambda

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

func TestGetRuntimeIsStable(t *testing.T) {
	first := GetRuntime()
	second := GetRuntime()

	if first != second {
		t.Fatal("GetRuntime returned different instances")
	}
	if _, err := uuid.Parse(first.InstanceID()); err != nil {
		t.Errorf("InstanceID %q is not a UUID: %v", first.InstanceID(), err)
	}
}

func TestMarkInvoked(t *testing.T) {
	rt := NewRuntime("instance-1")

	if !rt.MarkInvoked() {
		t.Error("first invocation should be a cold start")
	}
	if rt.MarkInvoked() {
		t.Error("second invocation should be warm")
	}
	if got := rt.Invocations(); got != 2 {
		t.Errorf("Invocations() = %d, want 2", got)
	}
}

func TestNewInvocation(t *testing.T) {
	rt := NewRuntime("instance-1")
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "req-123",
	})

	inv := NewInvocation(ctx, rt)
	if inv.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", inv.RequestID)
	}
	if inv.InstanceID != "instance-1" {
		t.Errorf("InstanceID = %q, want instance-1", inv.InstanceID)
	}
	if !inv.ColdStart {
		t.Error("expected cold start on first invocation")
	}

	warm := NewInvocation(context.Background(), rt)
	if warm.ColdStart {
		t.Error("expected warm second invocation")
	}
	if warm.RequestID != "" {
		t.Errorf("RequestID = %q, want empty without Lambda context", warm.RequestID)
	}
}

func TestIdleFor(t *testing.T) {
	rt := NewRuntime("instance-1")
	if rt.StartedAt().After(time.Now()) {
		t.Error("StartedAt is in the future")
	}

	time.Sleep(5 * time.Millisecond)
	if idle := rt.IdleFor(); idle < 5*time.Millisecond {
		t.Errorf("IdleFor() before first call = %v, want at least 5ms", idle)
	}

	inv := NewInvocation(context.Background(), rt)
	if inv.Idle < 5*time.Millisecond {
		t.Errorf("Invocation.Idle = %v, want at least 5ms", inv.Idle)
	}
	if idle := rt.IdleFor(); idle >= inv.Idle {
		t.Errorf("IdleFor() after call = %v, want less than %v", idle, inv.Idle)
	}
}
