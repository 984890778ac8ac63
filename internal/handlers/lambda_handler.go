package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"cloud-demo-apps/internal/greeting"
	"cloud-demo-apps/pkg/lambda"
)

// StaticMessage is returned by the static hello function
const StaticMessage = "Hello from Lambda!"

// ALBMessage is returned by the ALB target function
const ALBMessage = "Hello from ALB-routed Lambda!"

func invocationFields(inv lambda.Invocation) logrus.Fields {
	return logrus.Fields{
		"function_name": inv.FunctionName,
		"request_id":    inv.RequestID,
		"instance_id":   inv.InstanceID,
		"cold_start":    inv.ColdStart,
		"idle_ms":       inv.Idle.Milliseconds(),
	}
}

// EchoHandler greets the name carried by an invocation event
type EchoHandler struct {
	runtime *lambda.Runtime
}

// NewEchoHandler creates a new echo handler
func NewEchoHandler(rt *lambda.Runtime) *EchoHandler {
	return &EchoHandler{runtime: rt}
}

// Handle decodes the raw event and returns the envelope. Unreadable events,
// including ones that are not JSON objects, produce a 400 envelope, never an
// invocation error.
func (h *EchoHandler) Handle(ctx context.Context, raw json.RawMessage) (greeting.Envelope, error) {
	inv := lambda.NewInvocation(ctx, h.runtime)
	logger := logrus.WithFields(invocationFields(inv))

	event, err := greeting.DecodeEvent(raw)
	if err != nil {
		logger.WithError(err).Error("Error parsing input")
		return greeting.Invalid(err), nil
	}

	envelope := greeting.Handle(event)
	logger.WithFields(logrus.Fields{
		"shape":       greeting.Classify(event).Kind.String(),
		"status_code": envelope.StatusCode,
		"body":        envelope.Body,
	}).Info("Returning response")

	return envelope, nil
}

// StaticHandler answers every invocation with the same message
type StaticHandler struct {
	runtime *lambda.Runtime
}

// NewStaticHandler creates a new static handler
func NewStaticHandler(rt *lambda.Runtime) *StaticHandler {
	return &StaticHandler{runtime: rt}
}

// Handle logs the event and returns the static envelope
func (h *StaticHandler) Handle(ctx context.Context, event map[string]any) (greeting.Envelope, error) {
	inv := lambda.NewInvocation(ctx, h.runtime)
	logrus.WithFields(invocationFields(inv)).WithField("event", event).Info("Lambda triggered")

	return greeting.Envelope{StatusCode: http.StatusOK, Body: StaticMessage}, nil
}

// ALBBody is the JSON body returned to the load balancer
type ALBBody struct {
	Message      string `json:"message"`
	FunctionName string `json:"function_name"`
	RequestID    string `json:"request_id"`
	InstanceID   string `json:"instance_id"`
}

// ALBHandler serves requests forwarded by an application load balancer
type ALBHandler struct {
	runtime *lambda.Runtime
}

// NewALBHandler creates a new ALB target handler
func NewALBHandler(rt *lambda.Runtime) *ALBHandler {
	return &ALBHandler{runtime: rt}
}

// Handle answers an ALB target group request
func (h *ALBHandler) Handle(ctx context.Context, req events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	inv := lambda.NewInvocation(ctx, h.runtime)
	logger := logrus.WithFields(invocationFields(inv))
	logger.WithFields(logrus.Fields{
		"method": req.HTTPMethod,
		"path":   req.Path,
	}).Info("Lambda invoked via ALB.")

	resp, err := BuildALBResponse(inv)
	if err != nil {
		logger.WithError(err).Error("Failed to build ALB response")
		return events.ALBTargetGroupResponse{}, err
	}

	logger.WithField("body", resp.Body).Info("Response")
	return resp, nil
}

// BuildALBResponse builds the load balancer response for an invocation
func BuildALBResponse(inv lambda.Invocation) (events.ALBTargetGroupResponse, error) {
	body, err := json.Marshal(ALBBody{
		Message:      ALBMessage,
		FunctionName: inv.FunctionName,
		RequestID:    inv.RequestID,
		InstanceID:   inv.InstanceID,
	})
	if err != nil {
		return events.ALBTargetGroupResponse{}, fmt.Errorf("encoding ALB body: %w", err)
	}

	return events.ALBTargetGroupResponse{
		StatusCode:        http.StatusOK,
		StatusDescription: "200 OK",
		IsBase64Encoded:   false,
		Headers:           map[string]string{"Content-Type": "application/json"},
		Body:              string(body),
	}, nil
}
