package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var ErrDuplicateKey = fmt.Errorf("duplicate key")
var ErrInternal = fmt.Errorf("internal error")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInvalidRequest = fmt.Errorf("invalid request")
var ErrNotFound = fmt.Errorf("not found")
var ErrResourceInUse = fmt.Errorf("resource in use")
var ErrResourceLimitExceeded = fmt.Errorf("resource limit exceeded")
var ErrValidation = fmt.Errorf("validation failed")
var ErrThrottling = fmt.Errorf("throttled")
var ErrConflict = fmt.Errorf("conflict")
var ErrAccessDenied = fmt.Errorf("access denied")
var ErrUnknownOperation = fmt.Errorf("unknown operation")

// Error codes as they appear in the __type member of an error response
const (
	CodeResourceNotFound       string = "ResourceNotFound"
	CodeResourceInUse          string = "ResourceInUse"
	CodeResourceLimitExceeded  string = "ResourceLimitExceeded"
	CodeValidationException    string = "ValidationException"
	CodeThrottlingException    string = "ThrottlingException"
	CodeConflictException      string = "ConflictException"
	CodeAccessDeniedException  string = "AccessDeniedException"
	CodeUnknownOperation       string = "UnknownOperationException"
	CodeInternalFailure        string = "InternalFailure"
	CodeMissingAuthentication  string = "MissingAuthenticationTokenException"
	CodeSerializationException string = "SerializationException"
)

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewDuplicateKeyError is returned when a key is inserted twice into a map
// valued shape field
func NewDuplicateKeyError(key string) error {
	return &myError{
		msg:    fmt.Sprintf("duplicated keys (%s) are provided", key),
		target: ErrDuplicateKey,
	}
}

func NewInvalidRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidRequest,
	}
}

// ServiceError is an error reported by the service (or the emulator) in the
// AWS JSON error format
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (se *ServiceError) Error() string {
	if se.RequestID != "" {
		return fmt.Sprintf("%s: %s (status %d, request id %s)", se.Code, se.Message, se.StatusCode, se.RequestID)
	}
	return fmt.Sprintf("%s: %s (status %d)", se.Code, se.Message, se.StatusCode)
}

func (se *ServiceError) Is(target error) bool {
	switch se.Code {
	case CodeResourceNotFound:
		return target == ErrNotFound
	case CodeResourceInUse:
		return target == ErrResourceInUse
	case CodeResourceLimitExceeded:
		return target == ErrResourceLimitExceeded
	case CodeValidationException, CodeSerializationException:
		return target == ErrValidation
	case CodeThrottlingException:
		return target == ErrThrottling
	case CodeConflictException:
		return target == ErrConflict
	case CodeAccessDeniedException, CodeMissingAuthentication:
		return target == ErrAccessDenied
	case CodeUnknownOperation:
		return target == ErrUnknownOperation
	}

	return target == ErrInternal
}

func NewServiceError(statusCode int, code, message string) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

type errorReport struct {
	Type         string `json:"__type"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// NewErrorFromResponse decodes an error response body. The error type is taken
// from the body if present, otherwise from the X-Amzn-ErrorType header.
func NewErrorFromResponse(statusCode int, header http.Header, body []byte) error {
	report := &errorReport{}

	// bodies that are not json, such as html from a proxy, become the message
	rawMessage := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, report); err != nil {
			*report = errorReport{}
			rawMessage = rawErrorMessage(statusCode, body)
		}
	}

	code := report.Type
	if code == "" {
		code = report.Code
	}
	if code == "" && header != nil {
		code = header.Get("X-Amzn-ErrorType")
	}

	code = sanitizeErrorCode(code)
	if code == "" {
		code = CodeInternalFailure
		if statusCode == http.StatusNotFound {
			code = CodeResourceNotFound
		}
	}

	message := report.Message
	if message == "" {
		message = report.MessageUpper
	}
	if message == "" {
		message = rawMessage
	}

	se := NewServiceError(statusCode, code, message)
	if header != nil {
		se.RequestID = header.Get("X-Amzn-RequestId")
	}

	return se
}

const maxRawMessageLength int = 256

func rawErrorMessage(statusCode int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" || len(msg) > maxRawMessageLength {
		return http.StatusText(statusCode)
	}
	return msg
}

// sanitizeErrorCode strips any namespace prefix ("com.amazonaws.sagemaker#")
// and any trailing ":<uri>" from an error code
func sanitizeErrorCode(code string) string {
	if idx := strings.Index(code, ":"); idx >= 0 {
		code = code[:idx]
	}

	if idx := strings.LastIndex(code, "#"); idx >= 0 {
		code = code[idx+1:]
	}

	return strings.TrimSpace(code)
}

const (
	ErrorContentType string = "application/x-amz-json-1.1"
)

// WriteResponse writes the error to a http.ResponseWriter in the same format
// that NewErrorFromResponse decodes
func (se *ServiceError) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", ErrorContentType)
	w.Header().Add("X-Amzn-ErrorType", se.Code)
	if se.RequestID != "" {
		w.Header().Add("X-Amzn-RequestId", se.RequestID)
	}

	code := se.StatusCode
	if code == 0 {
		code = http.StatusBadRequest
	}
	w.WriteHeader(code)

	b, err := json.Marshal(struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}{
		Type:    se.Code,
		Message: se.Message,
	})
	if err == nil {
		w.Write(b)
	}
}
