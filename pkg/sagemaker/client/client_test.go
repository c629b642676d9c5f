package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/google/uuid"
	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath
var bodyContaining = expects.RequestBodyContaining

func TestCreateApp(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/"),
			bodyContaining(`"AppName":"default"`, `"AppType":"JupyterServer"`),
		),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"AppArn":"arn:aws:sagemaker:eu-north-1:111122223333:app/d-abc/alice/jupyterserver/default"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	result, err := c.CreateApp(context.Background(), &sagemaker.CreateAppRequest{
		DomainId:        ptr("d-abc"),
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeJupyterServer,
		AppName:         ptr("default"),
	})

	is.NoErr(err)
	is.Equal(*result.AppArn, "arn:aws:sagemaker:eu-north-1:111122223333:app/d-abc/alice/jupyterserver/default")
	is.Equal(s.RequestCount(), 1)
}

func TestDescribeAppThatDoesNotExist(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusBadRequest),
			response.Body([]byte(`{"__type":"com.amazon.coral.service#ResourceNotFound","message":"App does not exist"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	result, err := c.DescribeApp(context.Background(), &sagemaker.DescribeAppRequest{AppName: ptr("missing")})

	is.True(result == nil)
	is.True(errors.Is(err, smerrors.ErrNotFound))

	var serviceErr *smerrors.ServiceError
	is.True(errors.As(err, &serviceErr))
	is.Equal(serviceErr.Code, smerrors.CodeResourceNotFound)
	is.Equal(serviceErr.Message, "App does not exist")
	is.Equal(serviceErr.StatusCode, http.StatusBadRequest)
}

func TestThrottlingIsReportedWithoutRetries(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusBadRequest),
			response.Body([]byte(`{"__type":"ThrottlingException","message":"Rate exceeded"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	_, err := c.ListDomains(context.Background(), &sagemaker.ListDomainsRequest{})

	is.True(errors.Is(err, smerrors.ErrThrottling))
	is.Equal(s.RequestCount(), 1)
}

func TestDeleteAppWithEmptyResponseBody(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	result, err := c.DeleteApp(context.Background(), &sagemaker.DeleteAppRequest{AppName: ptr("default")})

	is.NoErr(err)
	is.True(result != nil)
}

func TestMalformedResponseBody(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Domains":`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	_, err := c.ListDomains(context.Background(), &sagemaker.ListDomainsRequest{})
	is.True(errors.Is(err, smerrors.ErrBadResponse))
}

func TestUnreachableEndpoint(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.NotFoundHandler())
	endpoint := s.URL
	s.Close()

	c := testClient(t, endpoint)

	_, err := c.ListApps(context.Background(), &sagemaker.ListAppsRequest{})
	is.True(errors.Is(err, smerrors.ErrRequest))
}

func TestNilRequestIsRejected(t *testing.T) {
	is := is.New(t)

	c := testClient(t, "http://localhost:1")

	_, err := c.DescribeDomain(context.Background(), nil)
	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
}

func TestValidationFailsBeforeSending(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(response.Code(http.StatusOK)),
	)
	defer s.Close()

	c := testClient(t, s.URL(), ValidateRequests(true))

	_, err := c.ListApps(context.Background(), &sagemaker.ListAppsRequest{MaxResults: ptr(int32(500))})

	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
	is.Equal(s.RequestCount(), 0) // invalid requests should never be sent
}

func TestRequestsAreSignedAndTargeted(t *testing.T) {
	is := is.New(t)

	var got *http.Request
	var gotBody []byte

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", ContentType)
		w.Write([]byte(`{"Domains":[],"NextToken":null}`))
	}))
	defer s.Close()

	c := testClient(t, s.URL)

	req := &sagemaker.ListDomainsRequest{MaxResults: ptr(int32(10))}
	req.PutCustomRequestHeader("X-Trace-Tag", "unit-test")

	result, err := c.ListDomains(context.Background(), req)
	is.NoErr(err)
	is.True(result.Domains != nil) // an empty list in the response is kept
	is.Equal(len(result.Domains), 0)
	is.True(result.NextToken == nil)

	is.Equal(got.Method, http.MethodPost)
	is.Equal(got.URL.Path, "/")
	is.Equal(got.Header.Get("Content-Type"), ContentType)
	is.Equal(got.Header.Get("X-Amz-Target"), "SageMaker.ListDomains")
	is.Equal(got.Header.Get("X-Trace-Tag"), "unit-test")
	is.True(got.Header.Get("X-Amz-Date") != "")

	_, err = uuid.Parse(got.Header.Get("Amz-Sdk-Invocation-Id"))
	is.NoErr(err)

	auth := got.Header.Get("Authorization")
	is.True(strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/"))
	is.True(strings.Contains(auth, "/eu-north-1/sagemaker/aws4_request"))

	is.Equal(string(gotBody), `{"MaxResults":10}`)
}

func TestAnonymousRequestsAreNotSigned(t *testing.T) {
	is := is.New(t)

	var auth string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer s.Close()

	c, err := NewSageMakerClient(context.Background(), Endpoint(s.URL), Anonymous())
	is.NoErr(err)

	_, err = c.DescribeDomain(context.Background(), &sagemaker.DescribeDomainRequest{DomainId: ptr("d-abc")})
	is.NoErr(err)
	is.Equal(auth, "")
}

func TestForEachPageFollowsNextToken(t *testing.T) {
	is := is.New(t)

	pages := map[string]string{
		"":   `{"Apps":[{"AppName":"a"}],"NextToken":"t1"}`,
		"t1": `{"Apps":[{"AppName":"b"}],"NextToken":"t2"}`,
		"t2": `{"Apps":[{"AppName":"c"}]}`,
	}

	var mu sync.Mutex
	var tokens []string

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := sagemaker.ListAppsRequest{}
		json.NewDecoder(r.Body).Decode(&req)

		token := ""
		if req.NextToken != nil {
			token = *req.NextToken
		}

		mu.Lock()
		tokens = append(tokens, token)
		mu.Unlock()

		fmt.Fprint(w, pages[token])
	}))
	defer s.Close()

	c := testClient(t, s.URL)

	var names []string
	count, err := ForEachPage(context.Background(), &sagemaker.ListAppsRequest{DomainIdEquals: ptr("d-abc")}, c.ListApps,
		func(result *sagemaker.ListAppsResult) error {
			for _, app := range result.Apps {
				names = append(names, *app.AppName)
			}
			return nil
		}, 0)

	is.NoErr(err)
	is.Equal(count, 3)
	is.Equal(names, []string{"a", "b", "c"})
	is.Equal(tokens, []string{"", "t1", "t2"})
}

func TestForEachPageStopsAtMaxPages(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Domains":[{"DomainId":"d-abc"}],"NextToken":"again"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	count, err := ForEachPage(context.Background(), &sagemaker.ListDomainsRequest{}, c.ListDomains,
		func(*sagemaker.ListDomainsResult) error { return nil }, 1)

	is.NoErr(err)
	is.Equal(count, 1)
	is.Equal(s.RequestCount(), 1)
}

func TestForEachPageStopsOnRepeatedToken(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Tags":[],"NextToken":"same"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())

	count, err := ForEachPage(context.Background(), &sagemaker.ListTagsRequest{}, c.ListTags,
		func(*sagemaker.ListTagsResult) error { return nil }, 0)

	is.NoErr(err)
	is.Equal(count, 2)
}

func TestForEachPageReturnsCallbackErrors(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"NextToken":"more"}`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL())
	stop := errors.New("stop")

	_, err := ForEachPage(context.Background(), &sagemaker.ListAlgorithmsRequest{}, c.ListAlgorithms,
		func(*sagemaker.ListAlgorithmsResult) error { return stop }, 0)

	is.True(errors.Is(err, stop))
	is.Equal(s.RequestCount(), 1)
}

func TestDebugOption(t *testing.T) {
	is := is.New(t)

	c := testClient(t, "http://localhost:8080", Debug(true)).(*smClient)
	is.True(c.debug)

	c = testClient(t, "http://localhost:8080", Debug(false)).(*smClient)
	is.True(!c.debug)
}

func TestDebugLogsMalformedResponses(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType(ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"Domains":`)),
		),
	)
	defer s.Close()

	c := testClient(t, s.URL(), Debug(true))

	_, err := c.ListDomains(context.Background(), &sagemaker.ListDomainsRequest{})
	is.True(errors.Is(err, smerrors.ErrBadResponse))
}

func testClient(t *testing.T, endpoint string, options ...Option) SageMakerClient {
	t.Helper()

	options = append([]Option{
		Endpoint(endpoint),
		Region("eu-north-1"),
		StaticCredentials("AKIDEXAMPLE", "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY", ""),
	}, options...)

	c, err := NewSageMakerClient(context.Background(), options...)
	if err != nil {
		t.Fatalf("failed to create client: %s", err.Error())
	}

	return c
}

func ptr[T any](v T) *T {
	return &v
}
