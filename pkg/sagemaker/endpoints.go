package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

type CreateEndpointConfigRequest struct {
	RequestMetadata `json:"-"`

	EndpointConfigName *string                   `json:"EndpointConfigName,omitempty" validate:"omitempty,max=63,sm_name"`
	ProductionVariants []types.ProductionVariant `json:"ProductionVariants,omitzero" validate:"omitempty,min=1,max=10,dive"`
	DataCaptureConfig  *types.DataCaptureConfig  `json:"DataCaptureConfig,omitempty"`
	Tags               []types.Tag               `json:"Tags,omitzero" validate:"omitempty,max=50,dive"`
	KmsKeyId           *string                   `json:"KmsKeyId,omitempty" validate:"omitempty,max=2048"`
}

func (r *CreateEndpointConfigRequest) String() string { return shape.String(r) }
func (r *CreateEndpointConfigRequest) Equal(other *CreateEndpointConfigRequest) bool { return shape.Equal(r, other) }
func (r *CreateEndpointConfigRequest) HashCode() int32 { return shape.Hash(r) }

func (r *CreateEndpointConfigRequest) AddProductionVariants(items ...types.ProductionVariant) { shape.Append(&r.ProductionVariants, items...) }

func (r *CreateEndpointConfigRequest) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type CreateEndpointConfigResult struct {
	EndpointConfigArn *string `json:"EndpointConfigArn,omitempty"`
}

func (r *CreateEndpointConfigResult) String() string { return shape.String(r) }
func (r *CreateEndpointConfigResult) Equal(other *CreateEndpointConfigResult) bool { return shape.Equal(r, other) }
func (r *CreateEndpointConfigResult) HashCode() int32 { return shape.Hash(r) }

type DescribeEndpointRequest struct {
	RequestMetadata `json:"-"`

	EndpointName *string `json:"EndpointName,omitempty" validate:"omitempty,max=63,sm_name"`
}

func (r *DescribeEndpointRequest) String() string { return shape.String(r) }
func (r *DescribeEndpointRequest) Equal(other *DescribeEndpointRequest) bool { return shape.Equal(r, other) }
func (r *DescribeEndpointRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeEndpointResult struct {
	EndpointName       *string                         `json:"EndpointName,omitempty"`
	EndpointArn        *string                         `json:"EndpointArn,omitempty"`
	EndpointConfigName *string                         `json:"EndpointConfigName,omitempty"`
	DataCaptureConfig  *types.DataCaptureConfigSummary `json:"DataCaptureConfig,omitempty"`
	EndpointStatus     types.EndpointStatus            `json:"EndpointStatus,omitempty"`
	FailureReason      *string                         `json:"FailureReason,omitempty"`
	CreationTime       *types.Timestamp                `json:"CreationTime,omitempty"`
	LastModifiedTime   *types.Timestamp                `json:"LastModifiedTime,omitempty"`
}

func (r *DescribeEndpointResult) String() string { return shape.String(r) }
func (r *DescribeEndpointResult) Equal(other *DescribeEndpointResult) bool { return shape.Equal(r, other) }
func (r *DescribeEndpointResult) HashCode() int32 { return shape.Hash(r) }
