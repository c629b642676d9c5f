package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/client"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
	"github.com/diwise/sagemaker-client/pkg/test"
)

func TestListApps(t *testing.T) {
	is, deps, sm, out, _ := setupTest(t)

	sm.ListAppsFunc = func(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error) {
		return &sagemaker.ListAppsResult{Apps: []types.AppDetails{{AppName: in.DomainIdEquals, Status: types.AppStatusInService}}}, nil
	}

	code := run([]string{"list-apps", "--domain-id", "d-0123456789ab", "--sort-order", "Ascending"}, deps)
	is.Equal(code, 0)

	is.Equal(len(sm.ListAppsCalls()), 1)
	req := sm.ListAppsCalls()[0].In
	is.Equal(*req.DomainIdEquals, "d-0123456789ab")
	is.Equal(req.UserProfileNameEquals, nil)
	is.Equal(req.SortOrder, types.SortOrderAscending)
	is.Equal(req.MaxResults, nil)

	result := sagemaker.ListAppsResult{}
	is.NoErr(json.Unmarshal(out.Bytes(), &result))
	is.Equal(*result.Apps[0].AppName, "d-0123456789ab")
}

func TestListDomainsFollowsPages(t *testing.T) {
	is, deps, sm, out, _ := setupTest(t)

	tokens := []*string{ptr("page-2"), nil}

	sm.ListDomainsFunc = func(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error) {
		page := len(sm.ListDomainsCalls())
		return &sagemaker.ListDomainsResult{
			Domains:   []types.DomainDetails{{DomainName: ptr("domain-" + string(rune('0'+page)))}},
			NextToken: tokens[page-1],
		}, nil
	}

	code := run([]string{"list-domains", "--all", "--max-results", "1"}, deps)
	is.Equal(code, 0)
	is.Equal(len(sm.ListDomainsCalls()), 2)

	result := sagemaker.ListDomainsResult{}
	is.NoErr(json.Unmarshal(out.Bytes(), &result))
	is.Equal(len(result.Domains), 2)
	is.Equal(*result.Domains[1].DomainName, "domain-2")
}

func TestCreateApp(t *testing.T) {
	is, deps, sm, _, _ := setupTest(t)

	sm.CreateAppFunc = func(ctx context.Context, in *sagemaker.CreateAppRequest) (*sagemaker.CreateAppResult, error) {
		return &sagemaker.CreateAppResult{AppArn: ptr("arn:aws:sagemaker:eu-north-1:111122223333:app/d-1/alice/jupyterserver/default")}, nil
	}

	code := run([]string{
		"create-app",
		"--domain-id", "d-1",
		"--user-profile-name", "alice",
		"--app-type", "JupyterServer",
		"--app-name", "default",
		"--instance-type", "ml.t3.medium",
		"--tag", "team=ml",
		"--tag", "env=dev",
	}, deps)
	is.Equal(code, 0)

	req := sm.CreateAppCalls()[0].In
	is.Equal(req.AppType, types.AppTypeJupyterServer)
	is.Equal(req.ResourceSpec.InstanceType, types.AppInstanceTypeMlT3Medium)
	is.Equal(req.ResourceSpec.SageMakerImageArn, nil)
	is.Equal(len(req.Tags), 2)
	is.Equal(*req.Tags[1].Key, "env")
}

func TestCreateAppWithMalformedTagFails(t *testing.T) {
	is, deps, sm, _, errOut := setupTest(t)

	code := run([]string{"create-app", "--domain-id", "d-1", "--user-profile-name", "alice", "--app-type", "JupyterServer", "--app-name", "default", "--tag", "team"}, deps)
	is.Equal(code, 1)
	is.True(strings.Contains(errOut.String(), "is not of the form key=value"))
	is.Equal(len(sm.CreateAppCalls()), 0)
}

func TestMissingRequiredFlagFails(t *testing.T) {
	is, deps, sm, _, errOut := setupTest(t)

	code := run([]string{"describe-app", "--domain-id", "d-1"}, deps)
	is.Equal(code, 1)
	is.True(strings.Contains(errOut.String(), "Hint: run `sagemaker --help`."))
	is.Equal(len(sm.DescribeAppCalls()), 0)
}

func TestServiceErrorsArePrinted(t *testing.T) {
	is, deps, sm, _, errOut := setupTest(t)

	sm.DeleteAppFunc = func(ctx context.Context, in *sagemaker.DeleteAppRequest) (*sagemaker.DeleteAppResult, error) {
		return nil, smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeResourceNotFound, "App does not exist")
	}

	code := run([]string{"delete-app", "--domain-id", "d-1", "--user-profile-name", "alice", "--app-type", "JupyterServer", "--app-name", "default"}, deps)
	is.Equal(code, 1)
	is.True(strings.Contains(errOut.String(), "ResourceNotFound: App does not exist"))
}

func TestSearchFilters(t *testing.T) {
	is, deps, sm, _, _ := setupTest(t)

	sm.SearchFunc = func(ctx context.Context, in *sagemaker.SearchRequest) (*sagemaker.SearchResult, error) {
		return &sagemaker.SearchResult{Results: []types.SearchRecord{}}, nil
	}

	code := run([]string{"search", "--resource", "TrainingJob", "--filter", "TrainingJobName:Contains:mnist", "--filter", "FailureReason:NotExists"}, deps)
	is.Equal(code, 0)

	req := sm.SearchCalls()[0].In
	is.Equal(req.Resource, types.ResourceTypeTrainingJob)
	is.Equal(len(req.SearchExpression.Filters), 2)
	is.Equal(req.SearchExpression.Filters[0].Operator, types.OperatorContains)
	is.Equal(*req.SearchExpression.Filters[0].Value, "mnist")
	is.Equal(req.SearchExpression.Filters[1].Value, nil)
}

func TestParseFilter(t *testing.T) {
	is := is.New(t)

	f, err := parseFilter("Tags.url:Equals:https://example.com")
	is.NoErr(err)
	is.Equal(*f.Value, "https://example.com")

	_, err = parseFilter("TrainingJobName")
	is.True(err != nil)
}

func TestHelpExitsCleanly(t *testing.T) {
	is, deps, _, out, _ := setupTest(t)

	code := run([]string{"--help"}, deps)
	is.Equal(code, 0)
	is.True(strings.Contains(out.String(), "list-apps"))
}

func TestProfileFromConfigFile(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		testutils.Expects(
			is,
			expects.RequestMethod(http.MethodPost),
			expects.RequestPath("/"),
			expects.RequestBody(`{"DomainId":"d-1"}`),
		),
		testutils.Returns(
			response.ContentType(client.ContentType),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"DomainId":"d-1","DomainName":"research","Status":"InService"}`)),
		),
	)
	defer ms.Close()

	out := &bytes.Buffer{}
	deps := commandDeps{
		newClient: client.NewSageMakerClient,
		openFile: func(path string) (io.ReadCloser, error) {
			if path != "/etc/sagemaker/profiles.yaml" {
				return nil, errors.New("no such file")
			}
			return io.NopCloser(strings.NewReader(strings.ReplaceAll(profiles, "ENDPOINT", ms.URL()))), nil
		},
		out:    out,
		errOut: &bytes.Buffer{},
	}

	code := run([]string{"--config", "/etc/sagemaker/profiles.yaml", "--profile", "emulator", "describe-domain", "--domain-id", "d-1"}, deps)
	is.Equal(code, 0)
	is.Equal(ms.RequestCount(), 1)
	is.True(strings.Contains(out.String(), `"DomainName": "research"`))
}

func TestUnknownProfileFails(t *testing.T) {
	is, deps, _, _, errOut := setupTest(t)

	deps.openFile = func(path string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(profiles)), nil
	}

	code := run([]string{"--config", "/etc/sagemaker/profiles.yaml", "--profile", "production", "list-domains"}, deps)
	is.Equal(code, 1)
	is.True(strings.Contains(errOut.String(), `profile "production" not found`))
}

func setupTest(t *testing.T) (*is.I, commandDeps, *test.SageMakerClientMock, *bytes.Buffer, *bytes.Buffer) {
	is := is.New(t)

	sm := &test.SageMakerClientMock{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	deps := commandDeps{
		newClient: func(ctx context.Context, options ...client.Option) (client.SageMakerClient, error) {
			return sm, nil
		},
		openFile: func(path string) (io.ReadCloser, error) {
			return nil, errors.New("no config files in tests")
		},
		out:    out,
		errOut: errOut,
	}

	return is, deps, sm, out, errOut
}

func ptr[T any](v T) *T {
	return &v
}

const profiles string = `
profiles:
  emulator:
    endpoint: ENDPOINT
    region: eu-north-1
    anonymous: true
`
