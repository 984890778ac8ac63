package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"cloud-demo-apps/pkg/lambda"
)

func lambdaContext(requestID string) context.Context {
	return lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: requestID,
	})
}

func TestEchoHandler(t *testing.T) {
	handler := NewEchoHandler(lambda.NewRuntime("instance-1"))

	tests := []struct {
		name       string
		event      string
		wantStatus int
		wantBody   string
	}{
		{"flat", `{"name":"Grace"}`, 200, "Hello, Grace!"},
		{"text body", `{"body":"{\"name\":\"Ada\"}"}`, 200, "Hello, Ada!"},
		{"structured body", `{"body":{"name":"Ada"}}`, 200, "Hello, Ada!"},
		{"empty", `{}`, 200, "Hello, anonymous!"},
		{"large number name", `{"name":12345678901234567890}`, 200, "Hello, 12345678901234567890!"},
		{"malformed text body", `{"body":"{not valid json"}`, 400, ""},
		{"string event", `"hello"`, 400, "Invalid input: event is not a JSON object: got string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handler.Handle(lambdaContext("req-1"), json.RawMessage(tt.event))
			if err != nil {
				t.Fatalf("Handle() error = %v, want nil", err)
			}
			if got.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" && got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
		})
	}
}

// Events go through the aws-lambda-go decoder exactly as a deployed function receives them
func TestEchoHandlerThroughRuntime(t *testing.T) {
	handler := awslambda.NewHandler(NewEchoHandler(lambda.NewRuntime("instance-1")).Handle)

	tests := []struct {
		event string
		want  string
	}{
		{`{"name":"Grace"}`, `{"statusCode":200,"body":"Hello, Grace!"}`},
		{`"hello"`, `{"statusCode":400,"body":"Invalid input: event is not a JSON object: got string"}`},
		{`["Ada"]`, `{"statusCode":400,"body":"Invalid input: event is not a JSON object: got array"}`},
		{`42`, `{"statusCode":400,"body":"Invalid input: event is not a JSON object: got number"}`},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			out, err := handler.Invoke(lambdaContext("req-1"), []byte(tt.event))
			if err != nil {
				t.Fatalf("Invoke() error = %v, want nil", err)
			}
			if string(out) != tt.want {
				t.Errorf("Invoke() = %s, want %s", out, tt.want)
			}
		})
	}
}

func TestStaticHandler(t *testing.T) {
	handler := NewStaticHandler(lambda.NewRuntime("instance-1"))

	got, err := handler.Handle(context.Background(), map[string]any{"anything": true})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got.StatusCode != 200 || got.Body != StaticMessage {
		t.Errorf("Handle() = %+v", got)
	}
}

func TestBuildALBResponse(t *testing.T) {
	resp, err := BuildALBResponse(lambda.Invocation{
		FunctionName: "alb-demo",
		RequestID:    "req-9",
		InstanceID:   "instance-1",
	})
	if err != nil {
		t.Fatalf("BuildALBResponse() error = %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.StatusDescription != "200 OK" {
		t.Errorf("StatusDescription = %q", resp.StatusDescription)
	}
	if resp.IsBase64Encoded {
		t.Error("IsBase64Encoded = true, want false")
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q", resp.Headers["Content-Type"])
	}

	want := `{"message":"Hello from ALB-routed Lambda!","function_name":"alb-demo","request_id":"req-9","instance_id":"instance-1"}`
	if resp.Body != want {
		t.Errorf("Body = %s, want %s", resp.Body, want)
	}
}

func TestALBHandlerKeepsInstanceAcrossInvocations(t *testing.T) {
	handler := NewALBHandler(lambda.NewRuntime("instance-1"))
	req := events.ALBTargetGroupRequest{HTTPMethod: "GET", Path: "/"}

	var bodies []ALBBody
	for _, requestID := range []string{"req-1", "req-2"} {
		resp, err := handler.Handle(lambdaContext(requestID), req)
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}

		var body ALBBody
		if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
			t.Fatalf("body is not JSON: %v", err)
		}
		bodies = append(bodies, body)
	}

	if bodies[0].InstanceID != "instance-1" || bodies[1].InstanceID != "instance-1" {
		t.Errorf("instance ids = %q, %q; want instance-1 for both", bodies[0].InstanceID, bodies[1].InstanceID)
	}
	if bodies[0].RequestID != "req-1" || bodies[1].RequestID != "req-2" {
		t.Errorf("request ids = %q, %q", bodies[0].RequestID, bodies[1].RequestID)
	}
}
