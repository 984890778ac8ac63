package lambda

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Invocation describes a single function call
type Invocation struct {
	FunctionName string `json:"function_name"`
	RequestID    string `json:"request_id"`
	InstanceID   string `json:"instance_id"`
	ColdStart    bool   `json:"cold_start"`

	// Idle is how long the runtime waited for this call
	Idle time.Duration `json:"-"`
}

// NewInvocation reads the invocation metadata from the context and records
// the call on the runtime
func NewInvocation(ctx context.Context, rt *Runtime) Invocation {
	idle := rt.IdleFor()
	inv := Invocation{
		FunctionName: lambdacontext.FunctionName,
		InstanceID:   rt.InstanceID(),
		ColdStart:    rt.MarkInvoked(),
		Idle:         idle,
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		inv.RequestID = lc.AwsRequestID
	}

	return inv
}
