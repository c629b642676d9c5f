package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func TestValidRequestPasses(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.CreateAppRequest{
		DomainId:        ptr("d-abcdefghijkl"),
		UserProfileName: ptr("data-scientist"),
		AppType:         types.AppTypeJupyterServer,
		AppName:         ptr("default"),
		ResourceSpec: &types.ResourceSpec{
			SageMakerImageArn: ptr("arn:aws:sagemaker:us-west-2:111122223333:image/my-image"),
			InstanceType:      types.AppInstanceTypeMlT3Medium,
		},
	}
	req.AddTags(types.Tag{Key: ptr("team"), Value: ptr("ml")})

	is.NoErr(Validate(req))
}

func TestEmptyRequestPasses(t *testing.T) {
	is := is.New(t)
	is.NoErr(Validate(&sagemaker.ListAppsRequest{}))
}

func TestUnknownEnumValuesAreNotValidated(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.ListAppsRequest{SortBy: types.AppSortKey("LastUserActivity")}
	is.NoErr(Validate(req))
}

func TestNestedPatternViolationIsReported(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.CreateAppRequest{
		AppName:      ptr("default"),
		ResourceSpec: &types.ResourceSpec{SageMakerImageArn: ptr("not-an-arn")},
	}

	err := Validate(req)
	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
	is.True(strings.Contains(err.Error(), "ResourceSpec.SageMakerImageArn does not match the pattern")) // should name the nested field
}

func TestLengthViolationsAreReported(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.ListAppsRequest{
		MaxResults:            ptr(int32(101)),
		UserProfileNameEquals: ptr(strings.Repeat("a", 64)),
	}

	err := Validate(req)
	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
	is.True(strings.Contains(err.Error(), "MaxResults must have a maximum length or value of 100"))
	is.True(strings.Contains(err.Error(), "UserProfileNameEquals must have a maximum length or value of 63"))
}

func TestListElementsAreValidated(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.CreateDomainRequest{}
	req.AddSubnetIds("subnet-0123", "subnet_with_underscore")

	err := Validate(req)
	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
	is.True(strings.Contains(err.Error(), "SubnetIds[1]"))
	is.True(!strings.Contains(err.Error(), "SubnetIds[0]"))
}

func TestTagsAreValidated(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.AddTagsRequest{ResourceArn: ptr("arn:aws:sagemaker:eu-north-1:111122223333:domain/d-abc")}
	req.AddTags(types.Tag{Key: ptr("")})

	err := Validate(req)
	is.True(errors.Is(err, smerrors.ErrInvalidRequest))
	is.True(strings.Contains(err.Error(), "Tags[0].Key must have a minimum length or value of 1"))
}

func TestRoleArnPattern(t *testing.T) {
	is := is.New(t)

	req := &sagemaker.CreateTrainingJobRequest{RoleArn: ptr("arn:aws:iam::111122223333:role/SageMakerRole")}
	is.NoErr(Validate(req))

	req.RoleArn = ptr("arn:aws:iam::1111:role/SageMakerRole")
	is.True(errors.Is(Validate(req), smerrors.ErrInvalidRequest))
}

func TestNilShapeIsInvalid(t *testing.T) {
	is := is.New(t)

	var req *sagemaker.DescribeAppRequest
	is.True(errors.Is(Validate(req), smerrors.ErrInvalidRequest))
}

func ptr[T any](v T) *T {
	return &v
}
