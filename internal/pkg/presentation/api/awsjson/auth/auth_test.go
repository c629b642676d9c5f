package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const signedAuthorization string = "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20240501/eu-north-1/sagemaker/aws4_request, SignedHeaders=content-type;host;x-amz-date;x-amz-target, Signature=abc123"

func TestParseCredentialScope(t *testing.T) {
	is := is.New(t)

	scope := ParseCredentialScope(signedAuthorization)

	is.Equal(scope, CredentialScope{
		AccessKeyID: "AKIDEXAMPLE",
		Date:        "20240501",
		Region:      "eu-north-1",
		Service:     "sagemaker",
	})
}

func TestParseMalformedCredentialScope(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseCredentialScope(""), CredentialScope{})
	is.Equal(ParseCredentialScope("Bearer token"), CredentialScope{})
	is.Equal(ParseCredentialScope("AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20240501"), CredentialScope{})
}

func TestSignedRequestIsAllowed(t *testing.T) {
	is, a := testSetup(t)

	err := a.CheckAccess(context.Background(), newRequest(signedAuthorization), "CreateApp")
	is.NoErr(err)
}

func TestAnonymousReadIsAllowed(t *testing.T) {
	is, a := testSetup(t)

	err := a.CheckAccess(context.Background(), newRequest(""), "ListApps")
	is.NoErr(err)
}

func TestAnonymousWriteIsRejected(t *testing.T) {
	is, a := testSetup(t)

	err := a.CheckAccess(context.Background(), newRequest(""), "DeleteDomain")
	is.True(errors.Is(err, ErrMissingCredentials))
}

func TestRequestSignedForOtherServiceIsRejected(t *testing.T) {
	is, a := testSetup(t)

	authorization := strings.Replace(signedAuthorization, "/sagemaker/", "/s3/", 1)

	err := a.CheckAccess(context.Background(), newRequest(authorization), "CreateApp")
	is.True(errors.Is(err, ErrAccessDenied))
}

func TestPolicyCanReturnAnObject(t *testing.T) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(objectPolicy))
	is.NoErr(err)

	err = a.CheckAccess(context.Background(), newRequest(""), "Search")
	is.NoErr(err)
}

func TestInvalidPolicyFails(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthorizer(context.Background(), strings.NewReader("this is not rego"))
	is.True(err != nil)
}

func testSetup(t *testing.T) (*is.I, Authorizer) {
	is := is.New(t)

	a, err := NewAuthorizer(context.Background(), strings.NewReader(policy))
	is.NoErr(err)

	return is, a
}

func newRequest(authorization string) *http.Request {
	r, _ := http.NewRequest(http.MethodPost, "http://localhost/", nil)
	if authorization != "" {
		r.Header.Set("Authorization", authorization)
	}
	return r
}

const policy string = `
package sagemaker.authz

default allow := false

read_operations := {"DescribeApp", "ListApps", "Search"}

allow = true {
	input.accessKeyId != ""
	input.service == "sagemaker"
}

allow = true {
	input.accessKeyId == ""
	read_operations[input.operation]
}
`

const objectPolicy string = `
package sagemaker.authz

default allow := false

allow = response {
	response := {
		"operation": input.operation
	}
}
`
