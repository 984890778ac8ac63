package invoke

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"cloud-demo-apps/internal/greeting"
)

// LambdaAPI is the part of the Lambda client used for invocation
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Result is the outcome of one synchronous invocation
type Result struct {
	Envelope        greeting.Envelope
	Payload         []byte
	ExecutedVersion string
}

// Client invokes echo functions
type Client struct {
	api LambdaAPI
}

// NewClient creates a client on top of an existing Lambda API
func NewClient(api LambdaAPI) *Client {
	return &Client{api: api}
}

// NewClientFromConfig loads AWS configuration from the default credential
// chain. An empty region keeps the region from the environment.
func NewClientFromConfig(ctx context.Context, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return NewClient(lambda.NewFromConfig(cfg)), nil
}

// Invoke calls the function synchronously and decodes its envelope
func (c *Client) Invoke(ctx context.Context, function string, payload []byte) (*Result, error) {
	if function == "" {
		return nil, fmt.Errorf("function name is required")
	}

	logrus.WithFields(logrus.Fields{
		"function": function,
		"payload":  string(payload),
	}).Debug("Invoking function")

	output, err := c.api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(function),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoking Lambda function: %w", err)
	}

	if output.FunctionError != nil {
		message := gjson.GetBytes(output.Payload, "errorMessage").String()
		return nil, fmt.Errorf("Lambda function error (%s): %s", aws.ToString(output.FunctionError), message)
	}

	envelope, err := ParseEnvelope(output.Payload)
	if err != nil {
		return nil, err
	}

	return &Result{
		Envelope:        envelope,
		Payload:         output.Payload,
		ExecutedVersion: aws.ToString(output.ExecutedVersion),
	}, nil
}

// ParseEnvelope reads statusCode and body from a function response
func ParseEnvelope(payload []byte) (greeting.Envelope, error) {
	if !gjson.ValidBytes(payload) {
		return greeting.Envelope{}, fmt.Errorf("response is not valid JSON: %q", payload)
	}

	status := gjson.GetBytes(payload, "statusCode")
	if status.Type != gjson.Number {
		return greeting.Envelope{}, fmt.Errorf("response has no numeric statusCode: %s", payload)
	}

	body := gjson.GetBytes(payload, "body")
	if !body.Exists() {
		return greeting.Envelope{}, fmt.Errorf("response has no body: %s", payload)
	}

	return greeting.Envelope{StatusCode: int(status.Int()), Body: body.String()}, nil
}
