package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type IntegerParameterRange struct {
	Name        *string                   `json:"Name,omitempty" validate:"omitempty,max=256"`
	MinValue    *string                   `json:"MinValue,omitempty" validate:"omitempty,max=256"`
	MaxValue    *string                   `json:"MaxValue,omitempty" validate:"omitempty,max=256"`
	ScalingType HyperParameterScalingType `json:"ScalingType,omitempty"`
}

func (s *IntegerParameterRange) String() string { return shape.String(s) }
func (s *IntegerParameterRange) Equal(other *IntegerParameterRange) bool { return shape.Equal(s, other) }
func (s *IntegerParameterRange) HashCode() int32 { return shape.Hash(s) }

type ContinuousParameterRange struct {
	Name        *string                   `json:"Name,omitempty" validate:"omitempty,max=256"`
	MinValue    *string                   `json:"MinValue,omitempty" validate:"omitempty,max=256"`
	MaxValue    *string                   `json:"MaxValue,omitempty" validate:"omitempty,max=256"`
	ScalingType HyperParameterScalingType `json:"ScalingType,omitempty"`
}

func (s *ContinuousParameterRange) String() string { return shape.String(s) }
func (s *ContinuousParameterRange) Equal(other *ContinuousParameterRange) bool { return shape.Equal(s, other) }
func (s *ContinuousParameterRange) HashCode() int32 { return shape.Hash(s) }

type CategoricalParameterRange struct {
	Name   *string  `json:"Name,omitempty" validate:"omitempty,max=256"`
	Values []string `json:"Values,omitzero" validate:"omitempty,min=1,max=20,dive,max=256"`
}

func (s *CategoricalParameterRange) String() string { return shape.String(s) }
func (s *CategoricalParameterRange) Equal(other *CategoricalParameterRange) bool { return shape.Equal(s, other) }
func (s *CategoricalParameterRange) HashCode() int32 { return shape.Hash(s) }

func (s *CategoricalParameterRange) AddValues(items ...string) { shape.Append(&s.Values, items...) }

// ParameterRanges are the hyperparameter ranges a tuning job searches.
type ParameterRanges struct {
	IntegerParameterRanges     []IntegerParameterRange     `json:"IntegerParameterRanges,omitzero" validate:"omitempty,max=20,dive"`
	ContinuousParameterRanges  []ContinuousParameterRange  `json:"ContinuousParameterRanges,omitzero" validate:"omitempty,max=20,dive"`
	CategoricalParameterRanges []CategoricalParameterRange `json:"CategoricalParameterRanges,omitzero" validate:"omitempty,max=20,dive"`
}

func (s *ParameterRanges) String() string { return shape.String(s) }
func (s *ParameterRanges) Equal(other *ParameterRanges) bool { return shape.Equal(s, other) }
func (s *ParameterRanges) HashCode() int32 { return shape.Hash(s) }

func (s *ParameterRanges) AddIntegerParameterRanges(items ...IntegerParameterRange) { shape.Append(&s.IntegerParameterRanges, items...) }

func (s *ParameterRanges) AddContinuousParameterRanges(items ...ContinuousParameterRange) { shape.Append(&s.ContinuousParameterRanges, items...) }

func (s *ParameterRanges) AddCategoricalParameterRanges(items ...CategoricalParameterRange) { shape.Append(&s.CategoricalParameterRanges, items...) }

// TrainingJobStatusCounters count the training jobs of a tuning job by status.
type TrainingJobStatusCounters struct {
	Completed         *int32 `json:"Completed,omitempty"`
	InProgress        *int32 `json:"InProgress,omitempty"`
	RetryableError    *int32 `json:"RetryableError,omitempty"`
	NonRetryableError *int32 `json:"NonRetryableError,omitempty"`
	Stopped           *int32 `json:"Stopped,omitempty"`
}

func (s *TrainingJobStatusCounters) String() string { return shape.String(s) }
func (s *TrainingJobStatusCounters) Equal(other *TrainingJobStatusCounters) bool { return shape.Equal(s, other) }
func (s *TrainingJobStatusCounters) HashCode() int32 { return shape.Hash(s) }

type ObjectiveStatusCounters struct {
	Succeeded *int32 `json:"Succeeded,omitempty"`
	Pending   *int32 `json:"Pending,omitempty"`
	Failed    *int32 `json:"Failed,omitempty"`
}

func (s *ObjectiveStatusCounters) String() string { return shape.String(s) }
func (s *ObjectiveStatusCounters) Equal(other *ObjectiveStatusCounters) bool { return shape.Equal(s, other) }
func (s *ObjectiveStatusCounters) HashCode() int32 { return shape.Hash(s) }

type ResourceLimits struct {
	MaxNumberOfTrainingJobs *int32 `json:"MaxNumberOfTrainingJobs,omitempty" validate:"omitempty,min=1"`
	MaxParallelTrainingJobs *int32 `json:"MaxParallelTrainingJobs,omitempty" validate:"omitempty,min=1"`
}

func (s *ResourceLimits) String() string { return shape.String(s) }
func (s *ResourceLimits) Equal(other *ResourceLimits) bool { return shape.Equal(s, other) }
func (s *ResourceLimits) HashCode() int32 { return shape.Hash(s) }

type HyperParameterTuningJobObjective struct {
	Type       HyperParameterTuningJobObjectiveType `json:"Type,omitempty"`
	MetricName *string                              `json:"MetricName,omitempty" validate:"omitempty,min=1,max=255"`
}

func (s *HyperParameterTuningJobObjective) String() string { return shape.String(s) }
func (s *HyperParameterTuningJobObjective) Equal(other *HyperParameterTuningJobObjective) bool { return shape.Equal(s, other) }
func (s *HyperParameterTuningJobObjective) HashCode() int32 { return shape.Hash(s) }

type HyperParameterTuningJobConfig struct {
	Strategy                         HyperParameterTuningJobStrategyType `json:"Strategy,omitempty"`
	HyperParameterTuningJobObjective *HyperParameterTuningJobObjective   `json:"HyperParameterTuningJobObjective,omitempty"`
	ResourceLimits                   *ResourceLimits                     `json:"ResourceLimits,omitempty"`
	ParameterRanges                  *ParameterRanges                    `json:"ParameterRanges,omitempty"`
	TrainingJobEarlyStoppingType     TrainingJobEarlyStoppingType        `json:"TrainingJobEarlyStoppingType,omitempty"`
}

func (s *HyperParameterTuningJobConfig) String() string { return shape.String(s) }
func (s *HyperParameterTuningJobConfig) Equal(other *HyperParameterTuningJobConfig) bool { return shape.Equal(s, other) }
func (s *HyperParameterTuningJobConfig) HashCode() int32 { return shape.Hash(s) }
