package emulator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func TestSeededDomainsAreInService(t *testing.T) {
	is, ctx, cp := testSetup(t)

	result, err := cp.ListDomains(ctx, &sagemaker.ListDomainsRequest{})
	is.NoErr(err)
	is.Equal(len(result.Domains), 1)

	d := result.Domains[0]
	is.Equal(*d.DomainName, "research")
	is.Equal(d.Status, types.DomainStatusInService)
	is.True(strings.HasPrefix(*d.DomainArn, "arn:aws:sagemaker:eu-north-1:111122223333:domain/d-"))
	is.Equal(*d.Url, fmt.Sprintf("https://%s.studio.eu-north-1.sagemaker.aws", *d.DomainId))
}

func TestCreateDomain(t *testing.T) {
	is, ctx, cp := testSetup(t)

	created, err := cp.CreateDomain(ctx, newDomainRequest("analytics"))
	is.NoErr(err)

	domainID := (*created.DomainArn)[strings.LastIndex(*created.DomainArn, "/")+1:]
	settle(cp)

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	is.Equal(d.Status, types.DomainStatusInService)
	is.Equal(*d.Url, *created.Url)
	is.True(strings.HasPrefix(*d.HomeEfsFileSystemId, "fs-"))
}

func TestCreateDomainWithDuplicateNameFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.CreateDomain(ctx, newDomainRequest("research"))
	is.True(errors.Is(err, smerrors.ErrResourceInUse))
}

func TestCreateDomainWithoutRequiredMembersFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.CreateDomain(ctx, &sagemaker.CreateDomainRequest{DomainName: ptr("analytics")})
	is.True(errors.Is(err, smerrors.ErrValidation))
	is.True(strings.Contains(err.Error(), "AuthMode, DefaultUserSettings, SubnetIds, VpcId"))
}

func TestCreateDomainWithInvalidNameFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.CreateDomain(ctx, newDomainRequest("not_a_valid_name"))
	is.True(errors.Is(err, smerrors.ErrValidation))
	is.True(strings.Contains(err.Error(), "DomainName does not match the pattern"))
}

func TestUpdateDomain(t *testing.T) {
	is, ctx, cp := testSetup(t)
	domainID := seededDomainID(t, cp)

	role := "arn:aws:iam::111122223333:role/NewExecutionRole"
	_, err := cp.UpdateDomain(ctx, &sagemaker.UpdateDomainRequest{
		DomainId:            &domainID,
		DefaultUserSettings: &types.UserSettings{ExecutionRole: &role},
	})
	is.NoErr(err)

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	is.Equal(*d.DefaultUserSettings.ExecutionRole, role)
}

func TestUpdateDomainKeepsSettingsThatAreNotSet(t *testing.T) {
	is, ctx, cp := testSetup(t)
	domainID := seededDomainID(t, cp)

	_, err := cp.UpdateDomain(ctx, &sagemaker.UpdateDomainRequest{
		DomainId:            &domainID,
		DefaultUserSettings: &types.UserSettings{SecurityGroups: []string{"sg-0a1b2c3d"}},
	})
	is.NoErr(err)

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	is.Equal(d.DefaultUserSettings.SecurityGroups, []string{"sg-0a1b2c3d"})
	is.Equal(*d.DefaultUserSettings.ExecutionRole, "arn:aws:iam::111122223333:role/SageMakerExecution") // unset settings should be kept
}

func TestStoredStateIsNotSharedWithCallers(t *testing.T) {
	is, ctx, cp := testSetup(t)

	in := newDomainRequest("shared")
	in.DefaultUserSettings.ExecutionRole = ptr("arn:aws:iam::111122223333:role/Original")

	created, err := cp.CreateDomain(ctx, in)
	is.NoErr(err)

	*in.DomainName = "changed"
	*in.DefaultUserSettings.ExecutionRole = "arn:aws:iam::111122223333:role/Changed"
	*created.DomainArn = "changed"

	cp.mu.Lock()
	domainID := *cp.domains[len(cp.domains)-1].DomainId
	cp.mu.Unlock()

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	is.Equal(*d.DomainName, "shared")
	is.Equal(*d.DefaultUserSettings.ExecutionRole, "arn:aws:iam::111122223333:role/Original")
	is.True(*d.DomainArn != "changed")

	*d.DefaultUserSettings.ExecutionRole = "arn:aws:iam::111122223333:role/FromResult"

	again, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	is.Equal(*again.DefaultUserSettings.ExecutionRole, "arn:aws:iam::111122223333:role/Original") // results should be copies

	app := newAppRequest(domainID, "default")
	app.ResourceSpec = &types.ResourceSpec{InstanceType: types.AppInstanceTypeMlT3Medium}
	_, err = cp.CreateApp(ctx, app)
	is.NoErr(err)

	app.ResourceSpec.InstanceType = types.AppInstanceTypeMlM5Large

	described, err := cp.DescribeApp(ctx, describeAppRequest(domainID, "default"))
	is.NoErr(err)
	is.Equal(described.ResourceSpec.InstanceType, types.AppInstanceTypeMlT3Medium)
}

func TestDescribeUnknownDomainFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: ptr("d-000000000000")})
	is.True(errors.Is(err, smerrors.ErrNotFound))
}

func TestAppLifecycle(t *testing.T) {
	is, ctx, cp := testSetup(t)
	domainID := seededDomainID(t, cp)

	created, err := cp.CreateApp(ctx, newAppRequest(domainID, "default"))
	is.NoErr(err)
	is.True(strings.HasSuffix(*created.AppArn, ":app/"+domainID+"/alice/jupyterserver/default"))

	app, err := cp.DescribeApp(ctx, describeAppRequest(domainID, "default"))
	is.NoErr(err)
	is.Equal(app.Status, types.AppStatusPending)

	settle(cp)

	app, err = cp.DescribeApp(ctx, describeAppRequest(domainID, "default"))
	is.NoErr(err)
	is.Equal(app.Status, types.AppStatusInService)

	_, err = cp.CreateApp(ctx, newAppRequest(domainID, "default"))
	is.True(errors.Is(err, smerrors.ErrResourceInUse))

	_, err = cp.DeleteApp(ctx, deleteAppRequest(domainID, "default"))
	is.NoErr(err)

	// deleting an app that is already on its way out is not an error
	_, err = cp.DeleteApp(ctx, deleteAppRequest(domainID, "default"))
	is.NoErr(err)

	settle(cp)

	app, err = cp.DescribeApp(ctx, describeAppRequest(domainID, "default"))
	is.NoErr(err)
	is.Equal(app.Status, types.AppStatusDeleted)

	_, err = cp.DeleteApp(ctx, deleteAppRequest(domainID, "default"))
	is.True(errors.Is(err, smerrors.ErrNotFound))

	// the name can be reused once the app is deleted
	_, err = cp.CreateApp(ctx, newAppRequest(domainID, "default"))
	is.NoErr(err)
}

func TestCreateAppInUnknownDomainFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.CreateApp(ctx, newAppRequest("d-000000000000", "default"))
	is.True(errors.Is(err, smerrors.ErrNotFound))
}

func TestCreateAppWithoutIdentityFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.CreateApp(ctx, &sagemaker.CreateAppRequest{AppName: ptr("default")})
	is.True(errors.Is(err, smerrors.ErrValidation))
	is.True(strings.Contains(err.Error(), "AppType, DomainId, UserProfileName"))
}

func TestDeleteDomainWithAppsFails(t *testing.T) {
	is, ctx, cp := testSetup(t)
	domainID := seededDomainID(t, cp)

	_, err := cp.CreateApp(ctx, newAppRequest(domainID, "default"))
	is.NoErr(err)

	_, err = cp.DeleteDomain(ctx, &sagemaker.DeleteDomainRequest{DomainId: &domainID})
	is.True(errors.Is(err, smerrors.ErrResourceInUse))

	_, err = cp.DeleteApp(ctx, deleteAppRequest(domainID, "default"))
	is.NoErr(err)
	settle(cp)

	_, err = cp.DeleteDomain(ctx, &sagemaker.DeleteDomainRequest{DomainId: &domainID})
	is.NoErr(err)
	settle(cp)

	_, err = cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &domainID})
	is.True(errors.Is(err, smerrors.ErrNotFound))
}

func TestListAppsSortsAndPages(t *testing.T) {
	is, ctx, cp := testSetup(t)
	domainID := seededDomainID(t, cp)

	for _, name := range []string{"one", "two", "three"} {
		_, err := cp.CreateApp(ctx, newAppRequest(domainID, name))
		is.NoErr(err)
	}

	first, err := cp.ListApps(ctx, &sagemaker.ListAppsRequest{DomainIdEquals: &domainID, MaxResults: ptr(int32(2))})
	is.NoErr(err)
	is.Equal(len(first.Apps), 2)
	is.Equal(*first.Apps[0].AppName, "three")
	is.Equal(*first.Apps[1].AppName, "two")
	is.True(first.NextToken != nil)

	second, err := cp.ListApps(ctx, &sagemaker.ListAppsRequest{DomainIdEquals: &domainID, MaxResults: ptr(int32(2)), NextToken: first.NextToken})
	is.NoErr(err)
	is.Equal(len(second.Apps), 1)
	is.Equal(*second.Apps[0].AppName, "one")
	is.Equal(second.NextToken, nil)

	ascending, err := cp.ListApps(ctx, &sagemaker.ListAppsRequest{SortOrder: types.SortOrderAscending})
	is.NoErr(err)
	is.Equal(*ascending.Apps[0].AppName, "one")

	none, err := cp.ListApps(ctx, &sagemaker.ListAppsRequest{UserProfileNameEquals: ptr("bob")})
	is.NoErr(err)
	is.Equal(len(none.Apps), 0)
	is.True(none.Apps != nil)
}

func TestListWithInvalidTokenFails(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.ListDomains(ctx, &sagemaker.ListDomainsRequest{NextToken: ptr("not-a-token")})
	is.True(errors.Is(err, smerrors.ErrValidation))
}

func TestTags(t *testing.T) {
	is, ctx, cp := testSetup(t)

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: ptr(seededDomainID(t, cp))})
	is.NoErr(err)

	_, err = cp.AddTags(ctx, &sagemaker.AddTagsRequest{
		ResourceArn: d.DomainArn,
		Tags:        []types.Tag{tag("team", "ml"), tag("env", "dev")},
	})
	is.NoErr(err)

	_, err = cp.AddTags(ctx, &sagemaker.AddTagsRequest{
		ResourceArn: d.DomainArn,
		Tags:        []types.Tag{tag("env", "prod")},
	})
	is.NoErr(err)

	listed, err := cp.ListTags(ctx, &sagemaker.ListTagsRequest{ResourceArn: d.DomainArn})
	is.NoErr(err)
	is.Equal(listed.Tags, []types.Tag{tag("team", "ml"), tag("env", "prod")})

	_, err = cp.DeleteTags(ctx, &sagemaker.DeleteTagsRequest{ResourceArn: d.DomainArn, TagKeys: []string{"team"}})
	is.NoErr(err)

	listed, err = cp.ListTags(ctx, &sagemaker.ListTagsRequest{ResourceArn: d.DomainArn})
	is.NoErr(err)
	is.Equal(listed.Tags, []types.Tag{tag("env", "prod")})
}

func TestTagsOnUnknownResourceFail(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.ListTags(ctx, &sagemaker.ListTagsRequest{
		ResourceArn: ptr("arn:aws:sagemaker:eu-north-1:111122223333:domain/d-000000000000"),
	})
	is.True(errors.Is(err, smerrors.ErrNotFound))
}

func TestTooManyTagsFail(t *testing.T) {
	is, ctx, cp := testSetup(t)

	d, err := cp.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: ptr(seededDomainID(t, cp))})
	is.NoErr(err)

	for batch := range 2 {
		tags := []types.Tag{}
		for i := range 30 {
			tags = append(tags, tag(fmt.Sprintf("key-%d-%d", batch, i), "v"))
		}

		_, err = cp.AddTags(ctx, &sagemaker.AddTagsRequest{ResourceArn: d.DomainArn, Tags: tags})
	}

	is.True(errors.Is(err, smerrors.ErrResourceLimitExceeded))
}

func TestSearchRequiresResource(t *testing.T) {
	is, ctx, cp := testSetup(t)

	_, err := cp.Search(ctx, &sagemaker.SearchRequest{})
	is.True(errors.Is(err, smerrors.ErrValidation))

	result, err := cp.Search(ctx, &sagemaker.SearchRequest{Resource: types.ResourceTypeTrainingJob})
	is.NoErr(err)
	is.Equal(len(result.Results), 0)
}

func testSetup(t *testing.T) (*is.I, context.Context, *controlPlane) {
	is := is.New(t)
	ctx := context.Background()

	c, err := New(ctx, Config{
		Region:    "eu-north-1",
		AccountID: "111122223333",
		Domains: []DomainConfig{{
			Name:          "research",
			AuthMode:      "IAM",
			ExecutionRole: "arn:aws:iam::111122223333:role/SageMakerExecution",
			VpcID:         "vpc-0a1b2c3d",
			SubnetIDs:     []string{"subnet-0a1b"},
		}},
	})
	is.NoErr(err)

	cp := c.(*controlPlane)

	// every call moves the clock one second forward
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cp.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	is.NoErr(cp.Start())
	t.Cleanup(func() { cp.Stop() })

	return is, ctx, cp
}

// settle waits for all transitions scheduled so far to run
func settle(cp *controlPlane) {
	done := make(chan struct{})
	cp.lifecycle.Schedule(context.Background(), "settle", "test", func() bool {
		close(done)
		return true
	})
	<-done
}

func seededDomainID(t *testing.T, cp *controlPlane) string {
	t.Helper()

	cp.mu.Lock()
	defer cp.mu.Unlock()

	return *cp.domains[0].DomainId
}

func newDomainRequest(name string) *sagemaker.CreateDomainRequest {
	return &sagemaker.CreateDomainRequest{
		DomainName:          &name,
		AuthMode:            types.AuthModeIam,
		DefaultUserSettings: &types.UserSettings{},
		SubnetIds:           []string{"subnet-0a1b"},
		VpcId:               ptr("vpc-0a1b2c3d"),
	}
}

func newAppRequest(domainID, name string) *sagemaker.CreateAppRequest {
	return &sagemaker.CreateAppRequest{
		DomainId:        &domainID,
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeJupyterServer,
		AppName:         &name,
	}
}

func describeAppRequest(domainID, name string) *sagemaker.DescribeAppRequest {
	return &sagemaker.DescribeAppRequest{
		DomainId:        &domainID,
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeJupyterServer,
		AppName:         &name,
	}
}

func deleteAppRequest(domainID, name string) *sagemaker.DeleteAppRequest {
	return &sagemaker.DeleteAppRequest{
		DomainId:        &domainID,
		UserProfileName: ptr("alice"),
		AppType:         types.AppTypeJupyterServer,
		AppName:         &name,
	}
}

func tag(key, value string) types.Tag {
	return types.Tag{Key: &key, Value: &value}
}
