package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sagemaker-emulator/awsjson/authz")

var ErrAccessDenied = errors.New("authorization failed")
var ErrMissingCredentials = errors.New("missing authentication token")

type Authorizer interface {
	CheckAccess(ctx context.Context, r *http.Request, operation string) error
}

type authorizerImpl struct {
	preparedQuery rego.PreparedEvalQuery
}

// NewAuthorizer prepares the rego policies in the package sagemaker.authz. A
// call is let through when data.sagemaker.authz.allow evaluates to true or to
// an object.
func NewAuthorizer(ctx context.Context, policies io.Reader) (Authorizer, error) {

	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	impl := &authorizerImpl{}

	impl.preparedQuery, err = rego.New(
		rego.Query("x = data.sagemaker.authz.allow"),
		rego.Module("sagemaker.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return impl, nil
}

func (a *authorizerImpl) CheckAccess(ctx context.Context, r *http.Request, operation string) error {
	var err error

	_, span := tracer.Start(ctx, "check-auth")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	scope := ParseCredentialScope(r.Header.Get("Authorization"))

	input := map[string]any{
		"operation":   operation,
		"accessKeyId": scope.AccessKeyID,
		"region":      scope.Region,
		"service":     scope.Service,
	}

	results, err := a.preparedQuery.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		err = fmt.Errorf("opa eval failed: %w", err)
		return err
	}

	if len(results) == 0 {
		err = fmt.Errorf("auth failed: opa query could not be satisfied")
		return err
	}

	switch binding := results[0].Bindings["x"].(type) {
	case bool:
		if !binding {
			err = ErrAccessDenied
			if scope.AccessKeyID == "" {
				err = ErrMissingCredentials
			}
			return err
		}
	case map[string]any:
	default:
		err = errors.New("opa error: unexpected result type")
		return err
	}

	return nil
}

// CredentialScope holds the parts of a SigV4 credential scope. The signature
// itself is not verified.
type CredentialScope struct {
	AccessKeyID string
	Date        string
	Region      string
	Service     string
}

// ParseCredentialScope extracts the credential scope from an Authorization
// header of the form "AWS4-HMAC-SHA256 Credential=<key>/<date>/<region>/<service>/aws4_request, ..."
func ParseCredentialScope(authorization string) CredentialScope {
	scheme, params, ok := strings.Cut(authorization, " ")
	if !ok || scheme != "AWS4-HMAC-SHA256" {
		return CredentialScope{}
	}

	for _, param := range strings.Split(params, ",") {
		name, value, _ := strings.Cut(strings.TrimSpace(param), "=")
		if name != "Credential" {
			continue
		}

		parts := strings.Split(value, "/")
		if len(parts) != 5 || parts[4] != "aws4_request" {
			return CredentialScope{}
		}

		return CredentialScope{
			AccessKeyID: parts[0],
			Date:        parts[1],
			Region:      parts[2],
			Service:     parts[3],
		}
	}

	return CredentialScope{}
}
