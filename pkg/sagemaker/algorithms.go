package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// CreateAlgorithmRequest registers an algorithm resource for use in training jobs.
type CreateAlgorithmRequest struct {
	RequestMetadata `json:"-"`

	AlgorithmName          *string                       `json:"AlgorithmName,omitempty" validate:"omitempty,min=1,max=63,sm_name"`
	AlgorithmDescription   *string                       `json:"AlgorithmDescription,omitempty" validate:"omitempty,max=1024"`
	TrainingSpecification  *types.TrainingSpecification  `json:"TrainingSpecification,omitempty"`
	InferenceSpecification *types.InferenceSpecification `json:"InferenceSpecification,omitempty"`
	CertifyForMarketplace  *bool                         `json:"CertifyForMarketplace,omitempty"`
}

func (r *CreateAlgorithmRequest) String() string { return shape.String(r) }
func (r *CreateAlgorithmRequest) Equal(other *CreateAlgorithmRequest) bool { return shape.Equal(r, other) }
func (r *CreateAlgorithmRequest) HashCode() int32 { return shape.Hash(r) }

type CreateAlgorithmResult struct {
	AlgorithmArn *string `json:"AlgorithmArn,omitempty"`
}

func (r *CreateAlgorithmResult) String() string { return shape.String(r) }
func (r *CreateAlgorithmResult) Equal(other *CreateAlgorithmResult) bool { return shape.Equal(r, other) }
func (r *CreateAlgorithmResult) HashCode() int32 { return shape.Hash(r) }

type DescribeAlgorithmRequest struct {
	RequestMetadata `json:"-"`

	AlgorithmName *string `json:"AlgorithmName,omitempty" validate:"omitempty,min=1,max=170"`
}

func (r *DescribeAlgorithmRequest) String() string { return shape.String(r) }
func (r *DescribeAlgorithmRequest) Equal(other *DescribeAlgorithmRequest) bool { return shape.Equal(r, other) }
func (r *DescribeAlgorithmRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeAlgorithmResult struct {
	AlgorithmName          *string                       `json:"AlgorithmName,omitempty"`
	AlgorithmArn           *string                       `json:"AlgorithmArn,omitempty"`
	AlgorithmDescription   *string                       `json:"AlgorithmDescription,omitempty"`
	CreationTime           *types.Timestamp              `json:"CreationTime,omitempty"`
	TrainingSpecification  *types.TrainingSpecification  `json:"TrainingSpecification,omitempty"`
	InferenceSpecification *types.InferenceSpecification `json:"InferenceSpecification,omitempty"`
	AlgorithmStatus        types.AlgorithmStatus         `json:"AlgorithmStatus,omitempty"`
	ProductId              *string                       `json:"ProductId,omitempty"`
	CertifyForMarketplace  *bool                         `json:"CertifyForMarketplace,omitempty"`
}

func (r *DescribeAlgorithmResult) String() string { return shape.String(r) }
func (r *DescribeAlgorithmResult) Equal(other *DescribeAlgorithmResult) bool { return shape.Equal(r, other) }
func (r *DescribeAlgorithmResult) HashCode() int32 { return shape.Hash(r) }

type DeleteAlgorithmRequest struct {
	RequestMetadata `json:"-"`

	AlgorithmName *string `json:"AlgorithmName,omitempty" validate:"omitempty,min=1,max=63,sm_name"`
}

func (r *DeleteAlgorithmRequest) String() string { return shape.String(r) }
func (r *DeleteAlgorithmRequest) Equal(other *DeleteAlgorithmRequest) bool { return shape.Equal(r, other) }
func (r *DeleteAlgorithmRequest) HashCode() int32 { return shape.Hash(r) }

type DeleteAlgorithmResult struct{}

func (r *DeleteAlgorithmResult) String() string { return shape.String(r) }
func (r *DeleteAlgorithmResult) Equal(other *DeleteAlgorithmResult) bool { return shape.Equal(r, other) }
func (r *DeleteAlgorithmResult) HashCode() int32 { return shape.Hash(r) }

type ListAlgorithmsRequest struct {
	RequestMetadata `json:"-"`

	CreationTimeAfter  *types.Timestamp      `json:"CreationTimeAfter,omitempty"`
	CreationTimeBefore *types.Timestamp      `json:"CreationTimeBefore,omitempty"`
	MaxResults         *int32                `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=100"`
	NameContains       *string               `json:"NameContains,omitempty" validate:"omitempty,max=63"`
	NextToken          *string               `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	SortBy             types.AlgorithmSortBy `json:"SortBy,omitempty"`
	SortOrder          types.SortOrder       `json:"SortOrder,omitempty"`
}

func (r *ListAlgorithmsRequest) String() string { return shape.String(r) }
func (r *ListAlgorithmsRequest) Equal(other *ListAlgorithmsRequest) bool { return shape.Equal(r, other) }
func (r *ListAlgorithmsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *ListAlgorithmsRequest) SetNextToken(token *string) { r.NextToken = token }

type ListAlgorithmsResult struct {
	AlgorithmSummaryList []types.AlgorithmSummary `json:"AlgorithmSummaryList,omitzero"`
	NextToken            *string                  `json:"NextToken,omitempty"`
}

func (r *ListAlgorithmsResult) String() string { return shape.String(r) }
func (r *ListAlgorithmsResult) Equal(other *ListAlgorithmsResult) bool { return shape.Equal(r, other) }
func (r *ListAlgorithmsResult) HashCode() int32 { return shape.Hash(r) }

func (r *ListAlgorithmsResult) AddAlgorithmSummaryList(items ...types.AlgorithmSummary) { shape.Append(&r.AlgorithmSummaryList, items...) }

func (r *ListAlgorithmsResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}
