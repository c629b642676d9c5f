package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// CreateAppRequest creates a running app for a user profile. Apps are created asynchronously and start out Pending.
type CreateAppRequest struct {
	RequestMetadata `json:"-"`

	DomainId        *string             `json:"DomainId,omitempty" validate:"omitempty,max=63"`
	UserProfileName *string             `json:"UserProfileName,omitempty" validate:"omitempty,max=63,sm_name"`
	AppType         types.AppType       `json:"AppType,omitempty"`
	AppName         *string             `json:"AppName,omitempty" validate:"omitempty,max=63,sm_name"`
	Tags            []types.Tag         `json:"Tags,omitzero" validate:"omitempty,max=50,dive"`
	ResourceSpec    *types.ResourceSpec `json:"ResourceSpec,omitempty"`
}

func (r *CreateAppRequest) String() string { return shape.String(r) }
func (r *CreateAppRequest) Equal(other *CreateAppRequest) bool { return shape.Equal(r, other) }
func (r *CreateAppRequest) HashCode() int32 { return shape.Hash(r) }

func (r *CreateAppRequest) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type CreateAppResult struct {
	AppArn *string `json:"AppArn,omitempty"`
}

func (r *CreateAppResult) String() string { return shape.String(r) }
func (r *CreateAppResult) Equal(other *CreateAppResult) bool { return shape.Equal(r, other) }
func (r *CreateAppResult) HashCode() int32 { return shape.Hash(r) }

// DescribeAppRequest identifies an app by domain, user profile, type and name.
type DescribeAppRequest struct {
	RequestMetadata `json:"-"`

	DomainId        *string       `json:"DomainId,omitempty" validate:"omitempty,max=63"`
	UserProfileName *string       `json:"UserProfileName,omitempty" validate:"omitempty,max=63,sm_name"`
	AppType         types.AppType `json:"AppType,omitempty"`
	AppName         *string       `json:"AppName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *DescribeAppRequest) String() string { return shape.String(r) }
func (r *DescribeAppRequest) Equal(other *DescribeAppRequest) bool { return shape.Equal(r, other) }
func (r *DescribeAppRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeAppResult struct {
	AppArn                    *string             `json:"AppArn,omitempty"`
	AppType                   types.AppType       `json:"AppType,omitempty"`
	AppName                   *string             `json:"AppName,omitempty"`
	DomainId                  *string             `json:"DomainId,omitempty"`
	UserProfileName           *string             `json:"UserProfileName,omitempty"`
	Status                    types.AppStatus     `json:"Status,omitempty"`
	LastHealthCheckTimestamp  *types.Timestamp    `json:"LastHealthCheckTimestamp,omitempty"`
	LastUserActivityTimestamp *types.Timestamp    `json:"LastUserActivityTimestamp,omitempty"`
	CreationTime              *types.Timestamp    `json:"CreationTime,omitempty"`
	FailureReason             *string             `json:"FailureReason,omitempty"`
	ResourceSpec              *types.ResourceSpec `json:"ResourceSpec,omitempty"`
}

func (r *DescribeAppResult) String() string { return shape.String(r) }
func (r *DescribeAppResult) Equal(other *DescribeAppResult) bool { return shape.Equal(r, other) }
func (r *DescribeAppResult) HashCode() int32 { return shape.Hash(r) }

// DeleteAppRequest stops and removes an app.
type DeleteAppRequest struct {
	RequestMetadata `json:"-"`

	DomainId        *string       `json:"DomainId,omitempty" validate:"omitempty,max=63"`
	UserProfileName *string       `json:"UserProfileName,omitempty" validate:"omitempty,max=63,sm_name"`
	AppType         types.AppType `json:"AppType,omitempty"`
	AppName         *string       `json:"AppName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *DeleteAppRequest) String() string { return shape.String(r) }
func (r *DeleteAppRequest) Equal(other *DeleteAppRequest) bool { return shape.Equal(r, other) }
func (r *DeleteAppRequest) HashCode() int32 { return shape.Hash(r) }

type DeleteAppResult struct{}

func (r *DeleteAppResult) String() string { return shape.String(r) }
func (r *DeleteAppResult) Equal(other *DeleteAppResult) bool { return shape.Equal(r, other) }
func (r *DeleteAppResult) HashCode() int32 { return shape.Hash(r) }

// ListAppsRequest lists apps, optionally filtered by domain and user profile.
type ListAppsRequest struct {
	RequestMetadata `json:"-"`

	// NextToken is the token returned by the previous call, if any.
	NextToken             *string          `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults            *int32           `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=100"`
	SortOrder             types.SortOrder  `json:"SortOrder,omitempty"`
	SortBy                types.AppSortKey `json:"SortBy,omitempty"`
	DomainIdEquals        *string          `json:"DomainIdEquals,omitempty" validate:"omitempty,max=63"`
	UserProfileNameEquals *string          `json:"UserProfileNameEquals,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *ListAppsRequest) String() string { return shape.String(r) }
func (r *ListAppsRequest) Equal(other *ListAppsRequest) bool { return shape.Equal(r, other) }
func (r *ListAppsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *ListAppsRequest) SetNextToken(token *string) { r.NextToken = token }

type ListAppsResult struct {
	Apps      []types.AppDetails `json:"Apps,omitzero"`
	NextToken *string            `json:"NextToken,omitempty"`
}

func (r *ListAppsResult) String() string { return shape.String(r) }
func (r *ListAppsResult) Equal(other *ListAppsResult) bool { return shape.Equal(r, other) }
func (r *ListAppsResult) HashCode() int32 { return shape.Hash(r) }

func (r *ListAppsResult) AddApps(items ...types.AppDetails) { shape.Append(&r.Apps, items...) }

func (r *ListAppsResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}
