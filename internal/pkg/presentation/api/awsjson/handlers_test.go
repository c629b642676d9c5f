package awsjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/internal/pkg/test"
	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func TestDescribeApp(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	cp.DescribeAppFunc = func(ctx context.Context, in *sagemaker.DescribeAppRequest) (*sagemaker.DescribeAppResult, error) {
		return &sagemaker.DescribeAppResult{AppName: in.AppName, Status: types.AppStatusInService}, nil
	}

	resp, body := newTestRequest(is, ts, "DescribeApp", `{"DomainId":"d-1","AppName":"default"}`)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), ContentType)
	is.True(resp.Header.Get("X-Amzn-RequestId") != "")
	is.Equal(body, `{"AppName":"default","Status":"InService"}`)

	is.Equal(len(cp.DescribeAppCalls()), 1)
	is.Equal(*cp.DescribeAppCalls()[0].In.DomainId, "d-1")
}

func TestEmptyBodyDecodesAsEmptyRequest(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	cp.ListDomainsFunc = func(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error) {
		return &sagemaker.ListDomainsResult{Domains: []types.DomainDetails{}}, nil
	}

	resp, body := newTestRequest(is, ts, "ListDomains", "")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"Domains":[]}`)
}

func TestServiceErrorsAreWrittenAsAwsErrors(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	cp.DeleteDomainFunc = func(ctx context.Context, in *sagemaker.DeleteDomainRequest) (*sagemaker.DeleteDomainResult, error) {
		return nil, smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeResourceNotFound, "Domain d-1 does not exist")
	}

	resp, body := newTestRequest(is, ts, "DeleteDomain", `{"DomainId":"d-1"}`)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeResourceNotFound)

	report := struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &report))
	is.Equal(report.Type, smerrors.CodeResourceNotFound)
	is.Equal(report.Message, "Domain d-1 does not exist")
}

func TestUnexpectedErrorsAreInternalFailures(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	cp.ListAppsFunc = func(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error) {
		return nil, fmt.Errorf("some unknown error")
	}

	resp, _ := newTestRequest(is, ts, "ListApps", "{}")

	is.Equal(resp.StatusCode, http.StatusInternalServerError)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeInternalFailure)
}

func TestMalformedBodyIsASerializationError(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "CreateApp", "this is not my json")

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeSerializationException)
	is.Equal(len(cp.CreateAppCalls()), 0)
}

func TestUnknownOperation(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "CreateModel", "{}")

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeUnknownOperation)
}

func TestAnonymousWriteIsRejected(t *testing.T) {
	is, ts, cp := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/", strings.NewReader("{}"))
	req.Header.Add("Content-Type", ContentType)
	req.Header.Add("X-Amz-Target", TargetPrefix+"CreateDomain")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeMissingAuthentication)
	is.Equal(len(cp.CreateDomainCalls()), 0)
}

func TestWrongContentTypeReturnsUnsupportedMediaType(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/", bytes.NewBufferString("{}"))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("X-Amz-Target", TargetPrefix+"ListApps")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusUnsupportedMediaType)
	is.Equal(resp.Header.Get("X-Amzn-ErrorType"), smerrors.CodeSerializationException)

	body, err := io.ReadAll(resp.Body)
	is.NoErr(err)

	err = smerrors.NewErrorFromResponse(resp.StatusCode, resp.Header, body)
	is.True(errors.Is(err, smerrors.ErrValidation)) // should decode as an aws serialization error
}

func newTestRequest(is *is.I, ts *httptest.Server, operation, body string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/", strings.NewReader(body))
	req.Header.Add("Content-Type", ContentType)
	req.Header.Add("X-Amz-Target", TargetPrefix+operation)
	req.Header.Add("Authorization", "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20240501/eu-north-1/sagemaker/aws4_request, SignedHeaders=host, Signature=abc")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *test.ControlPlaneMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	cp := &test.ControlPlaneMock{}

	err := RegisterHandlers(context.Background(), r, strings.NewReader(opaModule), cp)
	is.NoErr(err)

	return is, ts, cp
}

const opaModule string = `
package sagemaker.authz

default allow := false

allow = true {
	input.accessKeyId != ""
}

allow = true {
	startswith(input.operation, "List")
}

allow = true {
	startswith(input.operation, "Describe")
}
`
