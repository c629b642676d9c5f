// Package sagemaker contains the request and result envelopes of the SageMaker
// control plane operations supported by the client.
package sagemaker

import "maps"

// RequestMetadata carries per request settings that are not part of the
// operation payload. It is embedded by every request and never serialized.
type RequestMetadata struct {
	customHeaders map[string]string
}

// PutCustomRequestHeader sets a header that is sent along with the request,
// replacing any earlier value for the same name.
func (m *RequestMetadata) PutCustomRequestHeader(name, value string) {
	if m.customHeaders == nil {
		m.customHeaders = make(map[string]string)
	}
	m.customHeaders[name] = value
}

func (m *RequestMetadata) CustomRequestHeaders() map[string]string {
	return maps.Clone(m.customHeaders)
}

// PaginatedRequest is implemented by requests of list operations
type PaginatedRequest interface {
	SetNextToken(token *string)
}

// PaginatedResult is implemented by results of list operations
type PaginatedResult interface {
	GetNextToken() *string
}
