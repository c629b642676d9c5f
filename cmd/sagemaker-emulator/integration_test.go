package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/client"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func DefaultTestFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "0",
		region:        "eu-north-1",
	}
}

func TestIntegrateDomainAndAppLifecycle(t *testing.T) {
	is, ctx, c, _ := setupTest(t)

	domains, err := c.ListDomains(ctx, &sagemaker.ListDomainsRequest{})
	is.NoErr(err)
	is.Equal(len(domains.Domains), 1)
	is.Equal(*domains.Domains[0].DomainName, "research")

	domainID := *domains.Domains[0].DomainId

	created, err := c.CreateApp(ctx, &sagemaker.CreateAppRequest{
		DomainId:        &domainID,
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeKernelGateway,
		AppName:         ptr("datascience"),
		ResourceSpec: &types.ResourceSpec{
			SageMakerImageArn: ptr("arn:aws:sagemaker:eu-north-1:111122223333:image/datascience"),
			InstanceType:      types.AppInstanceTypeMlT3Medium,
		},
		Tags: []types.Tag{{Key: ptr("team"), Value: ptr("ml")}},
	})
	is.NoErr(err)
	is.True(strings.HasPrefix(*created.AppArn, "arn:aws:sagemaker:eu-north-1:111122223333:app/"+domainID))

	app := waitForApp(t, ctx, c, domainID, types.AppStatusInService)
	is.Equal(app.ResourceSpec.InstanceType, types.AppInstanceTypeMlT3Medium)

	tags, err := c.ListTags(ctx, &sagemaker.ListTagsRequest{ResourceArn: created.AppArn})
	is.NoErr(err)
	is.Equal(len(tags.Tags), 1)
	is.Equal(*tags.Tags[0].Value, "ml")

	_, err = c.DeleteApp(ctx, &sagemaker.DeleteAppRequest{
		DomainId:        &domainID,
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeKernelGateway,
		AppName:         ptr("datascience"),
	})
	is.NoErr(err)

	waitForApp(t, ctx, c, domainID, types.AppStatusDeleted)
}

func TestIntegrateListAppsAcrossPages(t *testing.T) {
	is, ctx, c, _ := setupTest(t)

	domains, err := c.ListDomains(ctx, &sagemaker.ListDomainsRequest{})
	is.NoErr(err)
	domainID := *domains.Domains[0].DomainId

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := c.CreateApp(ctx, &sagemaker.CreateAppRequest{
			DomainId:        &domainID,
			UserProfileName: ptr("alice"),
			AppType:         types.AppTypeJupyterServer,
			AppName:         ptr(name),
		})
		is.NoErr(err)
	}

	seen := 0
	pages, err := client.ForEachPage(ctx, &sagemaker.ListAppsRequest{MaxResults: ptr(int32(2))}, c.ListApps,
		func(page *sagemaker.ListAppsResult) error {
			seen += len(page.Apps)
			return nil
		}, 0)

	is.NoErr(err)
	is.Equal(pages, 3)
	is.Equal(seen, 5)
}

func TestIntegrateErrorsReachTheClient(t *testing.T) {
	is, ctx, c, _ := setupTest(t)

	_, err := c.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: ptr("d-000000000000")})
	is.True(errors.Is(err, smerrors.ErrNotFound))

	se := &smerrors.ServiceError{}
	is.True(errors.As(err, &se))
	is.True(se.RequestID != "")

	_, err = c.CreateDomain(ctx, &sagemaker.CreateDomainRequest{DomainName: ptr("analytics")})
	is.True(errors.Is(err, smerrors.ErrValidation))
}

func TestIntegrateAnonymousCallersCanOnlyRead(t *testing.T) {
	is, ctx, _, url := setupTest(t)

	anonymous, err := client.NewSageMakerClient(ctx, client.Endpoint(url), client.Anonymous())
	is.NoErr(err)

	_, err = anonymous.ListDomains(ctx, &sagemaker.ListDomainsRequest{})
	is.NoErr(err)

	_, err = anonymous.DeleteDomain(ctx, &sagemaker.DeleteDomainRequest{DomainId: ptr("d-000000000000")})
	is.True(errors.Is(err, smerrors.ErrAccessDenied))
}

func setupTest(t *testing.T) (*is.I, context.Context, client.SageMakerClient, string) {
	is := is.New(t)
	ctx := context.Background()

	policies, err := os.Open("../../assets/config/authz.rego")
	is.NoErr(err)
	defer policies.Close()

	handler, cp, err := initialize(ctx, DefaultTestFlags(), strings.NewReader(emulatorConfig), policies)
	is.NoErr(err)

	is.NoErr(cp.Start())

	ts := httptest.NewServer(handler)

	t.Cleanup(func() {
		ts.Close()
		cp.Stop()
	})

	c, err := client.NewSageMakerClient(ctx,
		client.Endpoint(ts.URL),
		client.Region("eu-north-1"),
		client.StaticCredentials("AKIDEXAMPLE", "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY", ""),
		client.ValidateRequests(true),
	)
	is.NoErr(err)

	return is, ctx, c, ts.URL
}

func waitForApp(t *testing.T, ctx context.Context, c client.SageMakerClient, domainID string, status types.AppStatus) *sagemaker.DescribeAppResult {
	t.Helper()

	for range 100 {
		apps, err := c.ListApps(ctx, &sagemaker.ListAppsRequest{DomainIdEquals: &domainID})
		if err != nil {
			t.Fatalf("failed to list apps: %s", err.Error())
		}

		for _, app := range apps.Apps {
			if app.Status != status {
				continue
			}

			result, err := c.DescribeApp(ctx, &sagemaker.DescribeAppRequest{
				DomainId:        app.DomainId,
				UserProfileName: app.UserProfileName,
				AppType:         app.AppType,
				AppName:         app.AppName,
			})
			if err != nil {
				t.Fatalf("failed to describe app: %s", err.Error())
			}
			return result
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("no app reached status %s", status)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

const emulatorConfig string = `
accountId: "111122223333"
domains:
  - name: research
    authMode: IAM
    executionRole: arn:aws:iam::111122223333:role/SageMakerExecution
    vpcId: vpc-0a1b2c3d
    subnetIds:
      - subnet-0a1b
`
