package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// CreateDomainRequest creates a Studio domain with its default user settings.
type CreateDomainRequest struct {
	RequestMetadata `json:"-"`

	DomainName                *string             `json:"DomainName,omitempty" validate:"omitempty,max=63,sm_name"`
	AuthMode                  types.AuthMode      `json:"AuthMode,omitempty"`
	DefaultUserSettings       *types.UserSettings `json:"DefaultUserSettings,omitempty"`
	SubnetIds                 []string            `json:"SubnetIds,omitzero" validate:"omitempty,min=1,max=16,dive,max=32,sm_resource_id"`
	VpcId                     *string             `json:"VpcId,omitempty" validate:"omitempty,max=32,sm_resource_id"`
	Tags                      []types.Tag         `json:"Tags,omitzero" validate:"omitempty,max=50,dive"`
	HomeEfsFileSystemKmsKeyId *string             `json:"HomeEfsFileSystemKmsKeyId,omitempty" validate:"omitempty,max=2048"`
}

func (r *CreateDomainRequest) String() string { return shape.String(r) }
func (r *CreateDomainRequest) Equal(other *CreateDomainRequest) bool { return shape.Equal(r, other) }
func (r *CreateDomainRequest) HashCode() int32 { return shape.Hash(r) }

func (r *CreateDomainRequest) AddSubnetIds(items ...string) { shape.Append(&r.SubnetIds, items...) }

func (r *CreateDomainRequest) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type CreateDomainResult struct {
	DomainArn *string `json:"DomainArn,omitempty"`
	Url       *string `json:"Url,omitempty"`
}

func (r *CreateDomainResult) String() string { return shape.String(r) }
func (r *CreateDomainResult) Equal(other *CreateDomainResult) bool { return shape.Equal(r, other) }
func (r *CreateDomainResult) HashCode() int32 { return shape.Hash(r) }

type DescribeDomainRequest struct {
	RequestMetadata `json:"-"`

	DomainId *string `json:"DomainId,omitempty" validate:"omitempty,max=63"`
}

func (r *DescribeDomainRequest) String() string { return shape.String(r) }
func (r *DescribeDomainRequest) Equal(other *DescribeDomainRequest) bool { return shape.Equal(r, other) }
func (r *DescribeDomainRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeDomainResult struct {
	DomainArn                                *string             `json:"DomainArn,omitempty"`
	DomainId                                 *string             `json:"DomainId,omitempty"`
	DomainName                               *string             `json:"DomainName,omitempty"`
	HomeEfsFileSystemId                      *string             `json:"HomeEfsFileSystemId,omitempty"`
	SingleSignOnManagedApplicationInstanceId *string             `json:"SingleSignOnManagedApplicationInstanceId,omitempty"`
	Status                                   types.DomainStatus  `json:"Status,omitempty"`
	CreationTime                             *types.Timestamp    `json:"CreationTime,omitempty"`
	LastModifiedTime                         *types.Timestamp    `json:"LastModifiedTime,omitempty"`
	FailureReason                            *string             `json:"FailureReason,omitempty"`
	AuthMode                                 types.AuthMode      `json:"AuthMode,omitempty"`
	DefaultUserSettings                      *types.UserSettings `json:"DefaultUserSettings,omitempty"`
	HomeEfsFileSystemKmsKeyId                *string             `json:"HomeEfsFileSystemKmsKeyId,omitempty"`
	SubnetIds                                []string            `json:"SubnetIds,omitzero"`
	Url                                      *string             `json:"Url,omitempty"`
	VpcId                                    *string             `json:"VpcId,omitempty"`
}

func (r *DescribeDomainResult) String() string { return shape.String(r) }
func (r *DescribeDomainResult) Equal(other *DescribeDomainResult) bool { return shape.Equal(r, other) }
func (r *DescribeDomainResult) HashCode() int32 { return shape.Hash(r) }

func (r *DescribeDomainResult) AddSubnetIds(items ...string) { shape.Append(&r.SubnetIds, items...) }

type UpdateDomainRequest struct {
	RequestMetadata `json:"-"`

	DomainId            *string             `json:"DomainId,omitempty" validate:"omitempty,max=63"`
	DefaultUserSettings *types.UserSettings `json:"DefaultUserSettings,omitempty"`
}

func (r *UpdateDomainRequest) String() string { return shape.String(r) }
func (r *UpdateDomainRequest) Equal(other *UpdateDomainRequest) bool { return shape.Equal(r, other) }
func (r *UpdateDomainRequest) HashCode() int32 { return shape.Hash(r) }

type UpdateDomainResult struct {
	DomainArn *string `json:"DomainArn,omitempty"`
}

func (r *UpdateDomainResult) String() string { return shape.String(r) }
func (r *UpdateDomainResult) Equal(other *UpdateDomainResult) bool { return shape.Equal(r, other) }
func (r *UpdateDomainResult) HashCode() int32 { return shape.Hash(r) }

// DeleteDomainRequest deletes a domain. The domain must not contain user profiles or apps.
type DeleteDomainRequest struct {
	RequestMetadata `json:"-"`

	DomainId        *string                `json:"DomainId,omitempty" validate:"omitempty,max=63"`
	RetentionPolicy *types.RetentionPolicy `json:"RetentionPolicy,omitempty"`
}

func (r *DeleteDomainRequest) String() string { return shape.String(r) }
func (r *DeleteDomainRequest) Equal(other *DeleteDomainRequest) bool { return shape.Equal(r, other) }
func (r *DeleteDomainRequest) HashCode() int32 { return shape.Hash(r) }

type DeleteDomainResult struct{}

func (r *DeleteDomainResult) String() string { return shape.String(r) }
func (r *DeleteDomainResult) Equal(other *DeleteDomainResult) bool { return shape.Equal(r, other) }
func (r *DeleteDomainResult) HashCode() int32 { return shape.Hash(r) }

type ListDomainsRequest struct {
	RequestMetadata `json:"-"`

	NextToken  *string `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r *ListDomainsRequest) String() string { return shape.String(r) }
func (r *ListDomainsRequest) Equal(other *ListDomainsRequest) bool { return shape.Equal(r, other) }
func (r *ListDomainsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *ListDomainsRequest) SetNextToken(token *string) { r.NextToken = token }

type ListDomainsResult struct {
	Domains   []types.DomainDetails `json:"Domains,omitzero"`
	NextToken *string               `json:"NextToken,omitempty"`
}

func (r *ListDomainsResult) String() string { return shape.String(r) }
func (r *ListDomainsResult) Equal(other *ListDomainsResult) bool { return shape.Equal(r, other) }
func (r *ListDomainsResult) HashCode() int32 { return shape.Hash(r) }

func (r *ListDomainsResult) AddDomains(items ...types.DomainDetails) { shape.Append(&r.Domains, items...) }

func (r *ListDomainsResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}
