package errors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestDuplicateKeyError(t *testing.T) {
	is := is.New(t)

	err := NewDuplicateKeyError("k")
	is.True(errors.Is(err, ErrDuplicateKey))
	is.True(!errors.Is(err, ErrInvalidRequest))
	is.Equal(err.Error(), "duplicated keys (k) are provided")
}

func TestErrorCodeFromBodyWithNamespace(t *testing.T) {
	is := is.New(t)

	body := []byte(`{"__type":"com.amazonaws.sagemaker#ResourceInUse:http://internal.amazon.com/coral/","message":"Domain is in use"}`)
	err := NewErrorFromResponse(http.StatusBadRequest, nil, body)

	is.True(errors.Is(err, ErrResourceInUse))

	var se *ServiceError
	is.True(errors.As(err, &se))
	is.Equal(se.Code, CodeResourceInUse)
	is.Equal(se.Message, "Domain is in use")
	is.Equal(se.Error(), "ResourceInUse: Domain is in use (status 400)")
}

func TestErrorCodeFromHeader(t *testing.T) {
	is := is.New(t)

	header := http.Header{}
	header.Set("X-Amzn-ErrorType", "ValidationException:http://internal.amazon.com/coral/com.amazon.coral.validate/")
	header.Set("X-Amzn-RequestId", "b0e91dc8-3807-11e2-83c6-5912bf8ad066")

	err := NewErrorFromResponse(http.StatusBadRequest, header, []byte(`{"Message":"1 validation error detected"}`))

	var se *ServiceError
	is.True(errors.As(err, &se))
	is.True(errors.Is(err, ErrValidation))
	is.Equal(se.Message, "1 validation error detected")
	is.Equal(se.RequestID, "b0e91dc8-3807-11e2-83c6-5912bf8ad066")
}

func TestErrorWithoutCode(t *testing.T) {
	is := is.New(t)

	is.True(errors.Is(NewErrorFromResponse(http.StatusNotFound, nil, nil), ErrNotFound))
	is.True(errors.Is(NewErrorFromResponse(http.StatusInternalServerError, nil, nil), ErrInternal))
	is.True(errors.Is(NewErrorFromResponse(http.StatusBadGateway, nil, []byte("<html>")), ErrInternal))
}

func TestNonJSONErrorBodyKeepsHeaderAndStatus(t *testing.T) {
	is := is.New(t)

	header := http.Header{}
	header.Set("X-Amzn-ErrorType", "ThrottlingException")

	body := []byte("<html><body>503 Service Unavailable</body></html>")
	err := NewErrorFromResponse(http.StatusServiceUnavailable, header, body)

	is.True(errors.Is(err, ErrThrottling))

	var se *ServiceError
	is.True(errors.As(err, &se))
	is.Equal(se.StatusCode, http.StatusServiceUnavailable)
	is.Equal(se.Code, CodeThrottlingException)
	is.Equal(se.Message, string(body))
}

func TestLongNonJSONErrorBodyIsReplacedByStatusText(t *testing.T) {
	is := is.New(t)

	body := []byte("<html>" + strings.Repeat("x", 1024) + "</html>")
	err := NewErrorFromResponse(http.StatusBadGateway, nil, body)

	var se *ServiceError
	is.True(errors.As(err, &se))
	is.Equal(se.Code, CodeInternalFailure)
	is.Equal(se.Message, http.StatusText(http.StatusBadGateway))
}

func TestWriteResponseRoundTrip(t *testing.T) {
	is := is.New(t)

	w := httptest.NewRecorder()
	se := NewServiceError(http.StatusBadRequest, CodeUnknownOperation, "SageMaker.Nope is not supported")
	se.RequestID = "req-1"
	se.WriteResponse(w)

	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(w.Header().Get("Content-Type"), ErrorContentType)

	err := NewErrorFromResponse(w.Code, w.Header(), w.Body.Bytes())
	is.True(errors.Is(err, ErrUnknownOperation))

	var decoded *ServiceError
	is.True(errors.As(err, &decoded))
	is.Equal(*decoded, *se)
}
