package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

type DescribeNotebookInstanceRequest struct {
	RequestMetadata `json:"-"`

	NotebookInstanceName *string `json:"NotebookInstanceName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *DescribeNotebookInstanceRequest) String() string { return shape.String(r) }
func (r *DescribeNotebookInstanceRequest) Equal(other *DescribeNotebookInstanceRequest) bool { return shape.Equal(r, other) }
func (r *DescribeNotebookInstanceRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeNotebookInstanceResult struct {
	NotebookInstanceArn                 *string                      `json:"NotebookInstanceArn,omitempty"`
	NotebookInstanceName                *string                      `json:"NotebookInstanceName,omitempty"`
	NotebookInstanceStatus              types.NotebookInstanceStatus `json:"NotebookInstanceStatus,omitempty"`
	FailureReason                       *string                      `json:"FailureReason,omitempty"`
	Url                                 *string                      `json:"Url,omitempty"`
	InstanceType                        types.InstanceType           `json:"InstanceType,omitempty"`
	SubnetId                            *string                      `json:"SubnetId,omitempty"`
	SecurityGroups                      []string                     `json:"SecurityGroups,omitzero"`
	RoleArn                             *string                      `json:"RoleArn,omitempty"`
	KmsKeyId                            *string                      `json:"KmsKeyId,omitempty"`
	NetworkInterfaceId                  *string                      `json:"NetworkInterfaceId,omitempty"`
	LastModifiedTime                    *types.Timestamp             `json:"LastModifiedTime,omitempty"`
	CreationTime                        *types.Timestamp             `json:"CreationTime,omitempty"`
	NotebookInstanceLifecycleConfigName *string                      `json:"NotebookInstanceLifecycleConfigName,omitempty"`
	DirectInternetAccess                types.DirectInternetAccess   `json:"DirectInternetAccess,omitempty"`
	VolumeSizeInGB                      *int32                       `json:"VolumeSizeInGB,omitempty"`
	AcceleratorTypes                    []string                     `json:"AcceleratorTypes,omitzero"`
	DefaultCodeRepository               *string                      `json:"DefaultCodeRepository,omitempty"`
	AdditionalCodeRepositories          []string                     `json:"AdditionalCodeRepositories,omitzero"`
	RootAccess                          types.RootAccess             `json:"RootAccess,omitempty"`
}

func (r *DescribeNotebookInstanceResult) String() string { return shape.String(r) }
func (r *DescribeNotebookInstanceResult) Equal(other *DescribeNotebookInstanceResult) bool { return shape.Equal(r, other) }
func (r *DescribeNotebookInstanceResult) HashCode() int32 { return shape.Hash(r) }

func (r *DescribeNotebookInstanceResult) AddSecurityGroups(items ...string) { shape.Append(&r.SecurityGroups, items...) }

func (r *DescribeNotebookInstanceResult) AddAcceleratorTypes(items ...string) { shape.Append(&r.AcceleratorTypes, items...) }

func (r *DescribeNotebookInstanceResult) AddAdditionalCodeRepositories(items ...string) { shape.Append(&r.AdditionalCodeRepositories, items...) }

// ListNotebookInstancesRequest lists notebook instances, optionally filtered by name, time and status.
type ListNotebookInstancesRequest struct {
	RequestMetadata `json:"-"`

	NextToken              *string                         `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults             *int32                          `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=100"`
	SortBy                 types.NotebookInstanceSortKey   `json:"SortBy,omitempty"`
	SortOrder              types.NotebookInstanceSortOrder `json:"SortOrder,omitempty"`
	NameContains           *string                         `json:"NameContains,omitempty" validate:"omitempty,max=63"`
	CreationTimeBefore     *types.Timestamp                `json:"CreationTimeBefore,omitempty"`
	CreationTimeAfter      *types.Timestamp                `json:"CreationTimeAfter,omitempty"`
	LastModifiedTimeBefore *types.Timestamp                `json:"LastModifiedTimeBefore,omitempty"`
	LastModifiedTimeAfter  *types.Timestamp                `json:"LastModifiedTimeAfter,omitempty"`
	StatusEquals           types.NotebookInstanceStatus    `json:"StatusEquals,omitempty"`
}

func (r *ListNotebookInstancesRequest) String() string { return shape.String(r) }
func (r *ListNotebookInstancesRequest) Equal(other *ListNotebookInstancesRequest) bool { return shape.Equal(r, other) }
func (r *ListNotebookInstancesRequest) HashCode() int32 { return shape.Hash(r) }

func (r *ListNotebookInstancesRequest) SetNextToken(token *string) { r.NextToken = token }

type ListNotebookInstancesResult struct {
	NextToken         *string                         `json:"NextToken,omitempty"`
	NotebookInstances []types.NotebookInstanceSummary `json:"NotebookInstances,omitzero"`
}

func (r *ListNotebookInstancesResult) String() string { return shape.String(r) }
func (r *ListNotebookInstancesResult) Equal(other *ListNotebookInstancesResult) bool { return shape.Equal(r, other) }
func (r *ListNotebookInstancesResult) HashCode() int32 { return shape.Hash(r) }

func (r *ListNotebookInstancesResult) AddNotebookInstances(items ...types.NotebookInstanceSummary) { shape.Append(&r.NotebookInstances, items...) }

func (r *ListNotebookInstancesResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}

type StartNotebookInstanceRequest struct {
	RequestMetadata `json:"-"`

	NotebookInstanceName *string `json:"NotebookInstanceName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *StartNotebookInstanceRequest) String() string { return shape.String(r) }
func (r *StartNotebookInstanceRequest) Equal(other *StartNotebookInstanceRequest) bool { return shape.Equal(r, other) }
func (r *StartNotebookInstanceRequest) HashCode() int32 { return shape.Hash(r) }

type StartNotebookInstanceResult struct{}

func (r *StartNotebookInstanceResult) String() string { return shape.String(r) }
func (r *StartNotebookInstanceResult) Equal(other *StartNotebookInstanceResult) bool { return shape.Equal(r, other) }
func (r *StartNotebookInstanceResult) HashCode() int32 { return shape.Hash(r) }

type StopNotebookInstanceRequest struct {
	RequestMetadata `json:"-"`

	NotebookInstanceName *string `json:"NotebookInstanceName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *StopNotebookInstanceRequest) String() string { return shape.String(r) }
func (r *StopNotebookInstanceRequest) Equal(other *StopNotebookInstanceRequest) bool { return shape.Equal(r, other) }
func (r *StopNotebookInstanceRequest) HashCode() int32 { return shape.Hash(r) }

type StopNotebookInstanceResult struct{}

func (r *StopNotebookInstanceResult) String() string { return shape.String(r) }
func (r *StopNotebookInstanceResult) Equal(other *StopNotebookInstanceResult) bool { return shape.Equal(r, other) }
func (r *StopNotebookInstanceResult) HashCode() int32 { return shape.Hash(r) }
