package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/validation"
)

const (
	ContentType  string = "application/x-amz-json-1.1"
	TargetPrefix string = "SageMaker."
	SigningName  string = "sagemaker"
)

const (
	TraceAttributeOperation string = "sagemaker-operation"
	TraceAttributeRegion    string = "aws-region"
)

const defaultRegion string = "us-east-1"

var tracer = otel.Tracer("sagemaker-client")

// Option configures a client created by NewSageMakerClient
type Option func(*smClient)

// Debug logs the bodies of failed and malformed responses
func Debug(enabled bool) Option {
	return func(c *smClient) {
		c.debug = enabled
	}
}

func Region(region string) Option {
	return func(c *smClient) {
		c.region = region
	}
}

// Endpoint overrides the service endpoint, e.g. to talk to a local emulator
func Endpoint(endpoint string) Option {
	return func(c *smClient) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

func Credentials(provider aws.CredentialsProvider) Option {
	return func(c *smClient) {
		c.credentials = provider
	}
}

func StaticCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return Credentials(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, sessionToken))
}

// Anonymous disables request signing
func Anonymous() Option {
	return func(c *smClient) {
		c.anonymous = true
	}
}

func HTTPClient(httpClient *http.Client) Option {
	return func(c *smClient) {
		c.httpClient = httpClient
	}
}

// ValidateRequests makes the client check the constraints of every request
// before it is sent. Requests are not validated by default.
func ValidateRequests(enabled bool) Option {
	return func(c *smClient) {
		c.validate = enabled
	}
}

// NewSageMakerClient creates a client for the SageMaker control plane. Region
// and credentials that are not given as options are resolved the same way as
// the AWS SDK does, from the environment and shared configuration files.
func NewSageMakerClient(ctx context.Context, options ...Option) (SageMakerClient, error) {
	c := &smClient{
		debug: false,
	}

	for _, option := range options {
		option(c)
	}

	if !c.anonymous && (c.credentials == nil || c.region == "") {
		loadOptions := []func(*config.LoadOptions) error{}
		if c.region != "" {
			loadOptions = append(loadOptions, config.WithRegion(c.region))
		}
		if c.credentials != nil {
			loadOptions = append(loadOptions, config.WithCredentialsProvider(c.credentials))
		}

		cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws configuration: %w", err)
		}

		c.region = cfg.Region
		c.credentials = cfg.Credentials
	}

	if c.region == "" {
		if !c.anonymous {
			return nil, fmt.Errorf("no aws region configured (%w)", errors.ErrInvalidRequest)
		}
		c.region = defaultRegion
	}

	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf("https://api.sagemaker.%s.amazonaws.com", c.region)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	c.signer = v4.NewSigner()

	return c, nil
}

type smClient struct {
	endpoint    string
	region      string
	credentials aws.CredentialsProvider
	anonymous   bool
	httpClient  *http.Client
	signer      *v4.Signer
	validate    bool
	debug       bool
}

func invoke[In, Out any](ctx context.Context, c *smClient, operation string, in *In) (*Out, error) {
	var err error

	ctx, span := tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String(TraceAttributeOperation, operation)),
		trace.WithAttributes(attribute.String(TraceAttributeRegion, c.region)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if in == nil {
		err = errors.NewInvalidRequestError(operation + " called without a request")
		return nil, err
	}

	if c.validate {
		if err = validation.Validate(in); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(in)
	if err != nil {
		err = fmt.Errorf("failed to marshal request: %s (%w)", err.Error(), errors.ErrInternal)
		return nil, err
	}

	var headers map[string]string
	if m, ok := any(in).(interface{ CustomRequestHeaders() map[string]string }); ok {
		headers = m.CustomRequestHeaders()
	}

	response, responseBody, err := c.callService(ctx, operation, body, headers)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		err = errors.NewErrorFromResponse(response.StatusCode, response.Header, responseBody)
		return nil, err
	}

	out := new(Out)
	if len(bytes.TrimSpace(responseBody)) == 0 {
		return out, nil
	}

	err = json.Unmarshal(responseBody, out)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed with err %s (%w)", string(responseBody), err.Error(), errors.ErrBadResponse)
		} else {
			err = fmt.Errorf("failed to unmarshal response: %s (%w)", err.Error(), errors.ErrBadResponse)
		}
		return nil, err
	}

	return out, nil
}

func (c *smClient) callService(ctx context.Context, operation string, body []byte, headers map[string]string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/", bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("X-Amz-Target", TargetPrefix+operation)
	req.Header.Set("Amz-Sdk-Invocation-Id", uuid.NewString())

	for header, value := range headers {
		req.Header.Set(header, value)
	}

	if !c.anonymous {
		creds, err := c.credentials.Retrieve(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to retrieve credentials: %s (%w)", err.Error(), errors.ErrRequest)
		}

		payloadHash := sha256.Sum256(body)
		err = c.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(payloadHash[:]), SigningName, c.region, time.Now())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to sign request: %s (%w)", err.Error(), errors.ErrInternal)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logging.GetFromContext(ctx).Error("request failed",
			slog.String("operation", operation),
			slog.String("request", string(reqbytes)),
			slog.String("response", string(respbytes)),
			slog.String("body", string(respBody)),
		)
	}

	return resp, respBody, nil
}
