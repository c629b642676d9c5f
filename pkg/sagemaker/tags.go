package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// AddTagsRequest adds or overwrites tags on a resource.
type AddTagsRequest struct {
	RequestMetadata `json:"-"`

	ResourceArn *string     `json:"ResourceArn,omitempty" validate:"omitempty,max=256,sm_arn"`
	Tags        []types.Tag `json:"Tags,omitzero" validate:"omitempty,max=50,dive"`
}

func (r *AddTagsRequest) String() string { return shape.String(r) }
func (r *AddTagsRequest) Equal(other *AddTagsRequest) bool { return shape.Equal(r, other) }
func (r *AddTagsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *AddTagsRequest) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type AddTagsResult struct {
	Tags []types.Tag `json:"Tags,omitzero"`
}

func (r *AddTagsResult) String() string { return shape.String(r) }
func (r *AddTagsResult) Equal(other *AddTagsResult) bool { return shape.Equal(r, other) }
func (r *AddTagsResult) HashCode() int32 { return shape.Hash(r) }

func (r *AddTagsResult) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type ListTagsRequest struct {
	RequestMetadata `json:"-"`

	ResourceArn *string `json:"ResourceArn,omitempty" validate:"omitempty,max=256,sm_arn"`
	NextToken   *string `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults  *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=50,max=100"`
}

func (r *ListTagsRequest) String() string { return shape.String(r) }
func (r *ListTagsRequest) Equal(other *ListTagsRequest) bool { return shape.Equal(r, other) }
func (r *ListTagsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *ListTagsRequest) SetNextToken(token *string) { r.NextToken = token }

type ListTagsResult struct {
	Tags      []types.Tag `json:"Tags,omitzero"`
	NextToken *string     `json:"NextToken,omitempty"`
}

func (r *ListTagsResult) String() string { return shape.String(r) }
func (r *ListTagsResult) Equal(other *ListTagsResult) bool { return shape.Equal(r, other) }
func (r *ListTagsResult) HashCode() int32 { return shape.Hash(r) }

func (r *ListTagsResult) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

func (r *ListTagsResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}

type DeleteTagsRequest struct {
	RequestMetadata `json:"-"`

	ResourceArn *string  `json:"ResourceArn,omitempty" validate:"omitempty,max=256,sm_arn"`
	TagKeys     []string `json:"TagKeys,omitzero" validate:"omitempty,min=1,max=50,dive,min=1,max=128"`
}

func (r *DeleteTagsRequest) String() string { return shape.String(r) }
func (r *DeleteTagsRequest) Equal(other *DeleteTagsRequest) bool { return shape.Equal(r, other) }
func (r *DeleteTagsRequest) HashCode() int32 { return shape.Hash(r) }

func (r *DeleteTagsRequest) AddTagKeys(items ...string) { shape.Append(&r.TagKeys, items...) }

type DeleteTagsResult struct{}

func (r *DeleteTagsResult) String() string { return shape.String(r) }
func (r *DeleteTagsResult) Equal(other *DeleteTagsResult) bool { return shape.Equal(r, other) }
func (r *DeleteTagsResult) HashCode() int32 { return shape.Hash(r) }
