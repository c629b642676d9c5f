package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

// Filter is a single condition of a search expression.
type Filter struct {
	Name     *string  `json:"Name,omitempty" validate:"omitempty,min=1,max=255"`
	Operator Operator `json:"Operator,omitempty"`
	Value    *string  `json:"Value,omitempty" validate:"omitempty,min=1,max=1024"`
}

func (s *Filter) String() string { return shape.String(s) }
func (s *Filter) Equal(other *Filter) bool { return shape.Equal(s, other) }
func (s *Filter) HashCode() int32 { return shape.Hash(s) }

type NestedFilters struct {
	NestedPropertyName *string  `json:"NestedPropertyName,omitempty" validate:"omitempty,min=1,max=255"`
	Filters            []Filter `json:"Filters,omitzero" validate:"omitempty,min=1,max=20,dive"`
}

func (s *NestedFilters) String() string { return shape.String(s) }
func (s *NestedFilters) Equal(other *NestedFilters) bool { return shape.Equal(s, other) }
func (s *NestedFilters) HashCode() int32 { return shape.Hash(s) }

func (s *NestedFilters) AddFilters(items ...Filter) { shape.Append(&s.Filters, items...) }

// SearchExpression combines filters and sub expressions with a boolean operator.
type SearchExpression struct {
	Filters        []Filter           `json:"Filters,omitzero" validate:"omitempty,min=1,max=20,dive"`
	NestedFilters  []NestedFilters    `json:"NestedFilters,omitzero" validate:"omitempty,min=1,max=20,dive"`
	SubExpressions []SearchExpression `json:"SubExpressions,omitzero" validate:"omitempty,min=1,max=20,dive"`
	Operator       BooleanOperator    `json:"Operator,omitempty"`
}

func (s *SearchExpression) String() string { return shape.String(s) }
func (s *SearchExpression) Equal(other *SearchExpression) bool { return shape.Equal(s, other) }
func (s *SearchExpression) HashCode() int32 { return shape.Hash(s) }

func (s *SearchExpression) AddFilters(items ...Filter) { shape.Append(&s.Filters, items...) }

func (s *SearchExpression) AddNestedFilters(items ...NestedFilters) { shape.Append(&s.NestedFilters, items...) }

func (s *SearchExpression) AddSubExpressions(items ...SearchExpression) { shape.Append(&s.SubExpressions, items...) }

type Experiment struct {
	ExperimentName   *string    `json:"ExperimentName,omitempty"`
	ExperimentArn    *string    `json:"ExperimentArn,omitempty"`
	DisplayName      *string    `json:"DisplayName,omitempty"`
	Description      *string    `json:"Description,omitempty"`
	CreationTime     *Timestamp `json:"CreationTime,omitempty"`
	LastModifiedTime *Timestamp `json:"LastModifiedTime,omitempty"`
	Tags             []Tag      `json:"Tags,omitzero"`
}

func (s *Experiment) String() string { return shape.String(s) }
func (s *Experiment) Equal(other *Experiment) bool { return shape.Equal(s, other) }
func (s *Experiment) HashCode() int32 { return shape.Hash(s) }

func (s *Experiment) AddTags(items ...Tag) { shape.Append(&s.Tags, items...) }

type Trial struct {
	TrialName        *string    `json:"TrialName,omitempty"`
	TrialArn         *string    `json:"TrialArn,omitempty"`
	DisplayName      *string    `json:"DisplayName,omitempty"`
	ExperimentName   *string    `json:"ExperimentName,omitempty"`
	CreationTime     *Timestamp `json:"CreationTime,omitempty"`
	LastModifiedTime *Timestamp `json:"LastModifiedTime,omitempty"`
	Tags             []Tag      `json:"Tags,omitzero"`
}

func (s *Trial) String() string { return shape.String(s) }
func (s *Trial) Equal(other *Trial) bool { return shape.Equal(s, other) }
func (s *Trial) HashCode() int32 { return shape.Hash(s) }

func (s *Trial) AddTags(items ...Tag) { shape.Append(&s.Tags, items...) }

type TrialComponentStatus struct {
	PrimaryStatus TrialComponentPrimaryStatus `json:"PrimaryStatus,omitempty"`
	Message       *string                     `json:"Message,omitempty"`
}

func (s *TrialComponentStatus) String() string { return shape.String(s) }
func (s *TrialComponentStatus) Equal(other *TrialComponentStatus) bool { return shape.Equal(s, other) }
func (s *TrialComponentStatus) HashCode() int32 { return shape.Hash(s) }

// TrialComponentParameterValue holds either a string or a number.
type TrialComponentParameterValue struct {
	StringValue *string  `json:"StringValue,omitempty" validate:"omitempty,max=256"`
	NumberValue *float64 `json:"NumberValue,omitempty"`
}

func (s *TrialComponentParameterValue) String() string { return shape.String(s) }
func (s *TrialComponentParameterValue) Equal(other *TrialComponentParameterValue) bool { return shape.Equal(s, other) }
func (s *TrialComponentParameterValue) HashCode() int32 { return shape.Hash(s) }

type TrialComponent struct {
	TrialComponentName *string                                 `json:"TrialComponentName,omitempty"`
	DisplayName        *string                                 `json:"DisplayName,omitempty"`
	TrialComponentArn  *string                                 `json:"TrialComponentArn,omitempty"`
	Status             *TrialComponentStatus                   `json:"Status,omitempty"`
	StartTime          *Timestamp                              `json:"StartTime,omitempty"`
	EndTime            *Timestamp                              `json:"EndTime,omitempty"`
	CreationTime       *Timestamp                              `json:"CreationTime,omitempty"`
	LastModifiedTime   *Timestamp                              `json:"LastModifiedTime,omitempty"`
	Parameters         map[string]TrialComponentParameterValue `json:"Parameters,omitzero"`
	Tags               []Tag                                   `json:"Tags,omitzero"`
}

func (s *TrialComponent) String() string { return shape.String(s) }
func (s *TrialComponent) Equal(other *TrialComponent) bool { return shape.Equal(s, other) }
func (s *TrialComponent) HashCode() int32 { return shape.Hash(s) }

// PutParameters adds an entry to Parameters. It fails if the key is already present.
func (s *TrialComponent) PutParameters(key string, value TrialComponentParameterValue) error {
	return shape.PutUnique(&s.Parameters, key, value)
}

func (s *TrialComponent) ClearParameters() { shape.Clear(&s.Parameters) }

func (s *TrialComponent) AddTags(items ...Tag) { shape.Append(&s.Tags, items...) }

// SearchRecord holds the one resource a search hit refers to.
type SearchRecord struct {
	TrainingJob    *TrainingJob    `json:"TrainingJob,omitempty"`
	Experiment     *Experiment     `json:"Experiment,omitempty"`
	Trial          *Trial          `json:"Trial,omitempty"`
	TrialComponent *TrialComponent `json:"TrialComponent,omitempty"`
}

func (s *SearchRecord) String() string { return shape.String(s) }
func (s *SearchRecord) Equal(other *SearchRecord) bool { return shape.Equal(s, other) }
func (s *SearchRecord) HashCode() int32 { return shape.Hash(s) }

type PropertyNameQuery struct {
	PropertyNameHint *string `json:"PropertyNameHint,omitempty" validate:"omitempty,max=100"`
}

func (s *PropertyNameQuery) String() string { return shape.String(s) }
func (s *PropertyNameQuery) Equal(other *PropertyNameQuery) bool { return shape.Equal(s, other) }
func (s *PropertyNameQuery) HashCode() int32 { return shape.Hash(s) }

type SuggestionQuery struct {
	PropertyNameQuery *PropertyNameQuery `json:"PropertyNameQuery,omitempty"`
}

func (s *SuggestionQuery) String() string { return shape.String(s) }
func (s *SuggestionQuery) Equal(other *SuggestionQuery) bool { return shape.Equal(s, other) }
func (s *SuggestionQuery) HashCode() int32 { return shape.Hash(s) }

type PropertyNameSuggestion struct {
	PropertyName *string `json:"PropertyName,omitempty" validate:"omitempty,min=1,max=255"`
}

func (s *PropertyNameSuggestion) String() string { return shape.String(s) }
func (s *PropertyNameSuggestion) Equal(other *PropertyNameSuggestion) bool { return shape.Equal(s, other) }
func (s *PropertyNameSuggestion) HashCode() int32 { return shape.Hash(s) }
