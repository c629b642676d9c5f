package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// SearchRequest finds resources of one type that match a search expression.
type SearchRequest struct {
	RequestMetadata `json:"-"`

	Resource         types.ResourceType      `json:"Resource,omitempty"`
	SearchExpression *types.SearchExpression `json:"SearchExpression,omitempty"`
	SortBy           *string                 `json:"SortBy,omitempty" validate:"omitempty,min=1,max=255"`
	SortOrder        types.SearchSortOrder   `json:"SortOrder,omitempty"`
	NextToken        *string                 `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults       *int32                  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r *SearchRequest) String() string { return shape.String(r) }
func (r *SearchRequest) Equal(other *SearchRequest) bool { return shape.Equal(r, other) }
func (r *SearchRequest) HashCode() int32 { return shape.Hash(r) }

func (r *SearchRequest) SetNextToken(token *string) { r.NextToken = token }

type SearchResult struct {
	Results   []types.SearchRecord `json:"Results,omitzero"`
	NextToken *string              `json:"NextToken,omitempty"`
}

func (r *SearchResult) String() string { return shape.String(r) }
func (r *SearchResult) Equal(other *SearchResult) bool { return shape.Equal(r, other) }
func (r *SearchResult) HashCode() int32 { return shape.Hash(r) }

func (r *SearchResult) AddResults(items ...types.SearchRecord) { shape.Append(&r.Results, items...) }

func (r *SearchResult) GetNextToken() *string {
	if r == nil {
		return nil
	}
	return r.NextToken
}

// GetSearchSuggestionsRequest returns property names usable in a Search for the resource type.
type GetSearchSuggestionsRequest struct {
	RequestMetadata `json:"-"`

	Resource        types.ResourceType     `json:"Resource,omitempty"`
	SuggestionQuery *types.SuggestionQuery `json:"SuggestionQuery,omitempty"`
}

func (r *GetSearchSuggestionsRequest) String() string { return shape.String(r) }
func (r *GetSearchSuggestionsRequest) Equal(other *GetSearchSuggestionsRequest) bool { return shape.Equal(r, other) }
func (r *GetSearchSuggestionsRequest) HashCode() int32 { return shape.Hash(r) }

type GetSearchSuggestionsResult struct {
	PropertyNameSuggestions []types.PropertyNameSuggestion `json:"PropertyNameSuggestions,omitzero"`
}

func (r *GetSearchSuggestionsResult) String() string { return shape.String(r) }
func (r *GetSearchSuggestionsResult) Equal(other *GetSearchSuggestionsResult) bool { return shape.Equal(r, other) }
func (r *GetSearchSuggestionsResult) HashCode() int32 { return shape.Hash(r) }

func (r *GetSearchSuggestionsResult) AddPropertyNameSuggestions(items ...types.PropertyNameSuggestion) { shape.Append(&r.PropertyNameSuggestions, items...) }
