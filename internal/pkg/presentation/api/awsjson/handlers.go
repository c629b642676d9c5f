// Package awsjson serves the SageMaker control plane over the AWS JSON 1.1
// protocol. Every call is a POST to / with the operation named by the
// X-Amz-Target header.
package awsjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/sagemaker-client/internal/pkg/application/emulator"
	"github.com/diwise/sagemaker-client/internal/pkg/presentation/api/awsjson/auth"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
)

const (
	ContentType  string = "application/x-amz-json-1.1"
	TargetPrefix string = "SageMaker."

	TraceAttributeOperation string = "sagemaker-operation"
	TraceAttributeRequestID string = "sagemaker-request-id"
)

var tracer = otel.Tracer("sagemaker-emulator/awsjson")

// operation decodes a request body, runs the call and returns its result
type operation func(ctx context.Context, body []byte) (any, error)

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, cp emulator.ControlPlane) error {

	authorizer, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authorizer: %w", err)
	}

	operations := map[string]operation{
		"CreateDomain":   handle(cp.CreateDomain),
		"DescribeDomain": handle(cp.DescribeDomain),
		"UpdateDomain":   handle(cp.UpdateDomain),
		"DeleteDomain":   handle(cp.DeleteDomain),
		"ListDomains":    handle(cp.ListDomains),
		"CreateApp":      handle(cp.CreateApp),
		"DescribeApp":    handle(cp.DescribeApp),
		"DeleteApp":      handle(cp.DeleteApp),
		"ListApps":       handle(cp.ListApps),
		"AddTags":        handle(cp.AddTags),
		"ListTags":       handle(cp.ListTags),
		"DeleteTags":     handle(cp.DeleteTags),
		"Search":         handle(cp.Search),
	}

	r.Group(func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequireJSONContent(ContentType, "application/json"),
		)

		r.Post("/", NewOperationHandler(operations, authorizer))
	})

	return nil
}

func handle[In, Out any](call func(context.Context, *In) (*Out, error)) operation {
	return func(ctx context.Context, body []byte) (any, error) {
		in := new(In)

		if len(strings.TrimSpace(string(body))) > 0 {
			if err := json.Unmarshal(body, in); err != nil {
				return nil, smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeSerializationException, err.Error())
			}
		}

		return call(ctx, in)
	}
}

func NewOperationHandler(operations map[string]operation, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		requestID := uuid.NewString()

		ctx, span := tracer.Start(r.Context(), "sagemaker-operation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		target := r.Header.Get("X-Amz-Target")
		name, found := strings.CutPrefix(target, TargetPrefix)

		span.SetAttributes(
			attribute.String(TraceAttributeOperation, name),
			attribute.String(TraceAttributeRequestID, requestID),
		)

		ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "operation", name, "request_id", requestID)

		op, ok := operations[name]
		if !found || !ok {
			err = smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeUnknownOperation, fmt.Sprintf("unknown operation %q", target))
			writeError(ctx, w, requestID, err)
			return
		}

		err = authorizer.CheckAccess(ctx, r, name)
		if err != nil {
			writeError(ctx, w, requestID, accessError(err))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			err = smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeSerializationException, "failed to read request body")
			writeError(ctx, w, requestID, err)
			return
		}

		result, err := op(ctx, body)
		if err != nil {
			writeError(ctx, w, requestID, err)
			return
		}

		response, err := json.Marshal(result)
		if err != nil {
			writeError(ctx, w, requestID, err)
			return
		}

		w.Header().Add("Content-Type", ContentType)
		w.Header().Add("X-Amzn-RequestId", requestID)
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}

func accessError(err error) error {
	if errors.Is(err, auth.ErrMissingCredentials) {
		return smerrors.NewServiceError(http.StatusForbidden, smerrors.CodeMissingAuthentication, "missing authentication token")
	}

	if errors.Is(err, auth.ErrAccessDenied) {
		return smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeAccessDeniedException, "access denied")
	}

	return err
}

func writeError(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	se := &smerrors.ServiceError{}
	if !errors.As(err, &se) {
		logging.GetFromContext(ctx).Error("operation failed", "err", err.Error())
		se = smerrors.NewServiceError(http.StatusInternalServerError, smerrors.CodeInternalFailure, "internal failure")
	}

	se.RequestID = requestID
	se.WriteResponse(w)
}

// Logger stores a logger tagged with the current trace id and the requested
// target in the request context
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger.With(slog.String("target", r.Header.Get("X-Amz-Target"))),
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireJSONContent rejects requests whose body is not declared as one of
// the accepted json content types. A missing Content-Type is accepted.
func RequireJSONContent(accepted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")

			if contentType == "" || slices.ContainsFunc(accepted, func(t string) bool {
				return strings.HasPrefix(contentType, t)
			}) {
				next.ServeHTTP(w, r)
				return
			}

			se := smerrors.NewServiceError(
				http.StatusUnsupportedMediaType,
				smerrors.CodeSerializationException,
				fmt.Sprintf("unsupported content type %q", contentType),
			)
			se.RequestID = uuid.NewString()
			se.WriteResponse(w)
		})
	}
}
