package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

// ChannelSpecification describes an input channel accepted by an algorithm.
type ChannelSpecification struct {
	Name                      *string             `json:"Name,omitempty" validate:"omitempty,min=1,max=64,sm_channel_name"`
	Description               *string             `json:"Description,omitempty" validate:"omitempty,max=1024"`
	IsRequired                *bool               `json:"IsRequired,omitempty"`
	SupportedContentTypes     []string            `json:"SupportedContentTypes,omitzero" validate:"omitempty,dive,max=256"`
	SupportedCompressionTypes []CompressionType   `json:"SupportedCompressionTypes,omitzero"`
	SupportedInputModes       []TrainingInputMode `json:"SupportedInputModes,omitzero" validate:"omitempty,min=1"`
}

func (s *ChannelSpecification) String() string { return shape.String(s) }
func (s *ChannelSpecification) Equal(other *ChannelSpecification) bool { return shape.Equal(s, other) }
func (s *ChannelSpecification) HashCode() int32 { return shape.Hash(s) }

func (s *ChannelSpecification) AddSupportedContentTypes(items ...string) { shape.Append(&s.SupportedContentTypes, items...) }

func (s *ChannelSpecification) AddSupportedCompressionTypes(items ...CompressionType) { shape.Append(&s.SupportedCompressionTypes, items...) }

func (s *ChannelSpecification) AddSupportedInputModes(items ...TrainingInputMode) { shape.Append(&s.SupportedInputModes, items...) }

type MetricDefinition struct {
	Name  *string `json:"Name,omitempty" validate:"omitempty,min=1,max=255"`
	Regex *string `json:"Regex,omitempty" validate:"omitempty,min=1,max=500"`
}

func (s *MetricDefinition) String() string { return shape.String(s) }
func (s *MetricDefinition) Equal(other *MetricDefinition) bool { return shape.Equal(s, other) }
func (s *MetricDefinition) HashCode() int32 { return shape.Hash(s) }

type IntegerParameterRangeSpecification struct {
	MinValue *string `json:"MinValue,omitempty" validate:"omitempty,max=256"`
	MaxValue *string `json:"MaxValue,omitempty" validate:"omitempty,max=256"`
}

func (s *IntegerParameterRangeSpecification) String() string { return shape.String(s) }
func (s *IntegerParameterRangeSpecification) Equal(other *IntegerParameterRangeSpecification) bool { return shape.Equal(s, other) }
func (s *IntegerParameterRangeSpecification) HashCode() int32 { return shape.Hash(s) }

type ContinuousParameterRangeSpecification struct {
	MinValue *string `json:"MinValue,omitempty" validate:"omitempty,max=256"`
	MaxValue *string `json:"MaxValue,omitempty" validate:"omitempty,max=256"`
}

func (s *ContinuousParameterRangeSpecification) String() string { return shape.String(s) }
func (s *ContinuousParameterRangeSpecification) Equal(other *ContinuousParameterRangeSpecification) bool { return shape.Equal(s, other) }
func (s *ContinuousParameterRangeSpecification) HashCode() int32 { return shape.Hash(s) }

type CategoricalParameterRangeSpecification struct {
	Values []string `json:"Values,omitzero" validate:"omitempty,min=1,max=20,dive,max=256"`
}

func (s *CategoricalParameterRangeSpecification) String() string { return shape.String(s) }
func (s *CategoricalParameterRangeSpecification) Equal(other *CategoricalParameterRangeSpecification) bool { return shape.Equal(s, other) }
func (s *CategoricalParameterRangeSpecification) HashCode() int32 { return shape.Hash(s) }

func (s *CategoricalParameterRangeSpecification) AddValues(items ...string) { shape.Append(&s.Values, items...) }

// ParameterRange holds exactly one of the three range specifications.
type ParameterRange struct {
	IntegerParameterRangeSpecification     *IntegerParameterRangeSpecification     `json:"IntegerParameterRangeSpecification,omitempty"`
	ContinuousParameterRangeSpecification  *ContinuousParameterRangeSpecification  `json:"ContinuousParameterRangeSpecification,omitempty"`
	CategoricalParameterRangeSpecification *CategoricalParameterRangeSpecification `json:"CategoricalParameterRangeSpecification,omitempty"`
}

func (s *ParameterRange) String() string { return shape.String(s) }
func (s *ParameterRange) Equal(other *ParameterRange) bool { return shape.Equal(s, other) }
func (s *ParameterRange) HashCode() int32 { return shape.Hash(s) }

type HyperParameterSpecification struct {
	Name         *string         `json:"Name,omitempty" validate:"omitempty,max=256"`
	Description  *string         `json:"Description,omitempty" validate:"omitempty,max=1024"`
	Type         ParameterType   `json:"Type,omitempty"`
	Range        *ParameterRange `json:"Range,omitempty"`
	IsTunable    *bool           `json:"IsTunable,omitempty"`
	IsRequired   *bool           `json:"IsRequired,omitempty"`
	DefaultValue *string         `json:"DefaultValue,omitempty" validate:"omitempty,max=256"`
}

func (s *HyperParameterSpecification) String() string { return shape.String(s) }
func (s *HyperParameterSpecification) Equal(other *HyperParameterSpecification) bool { return shape.Equal(s, other) }
func (s *HyperParameterSpecification) HashCode() int32 { return shape.Hash(s) }

// TrainingSpecification describes how an algorithm is trained.
type TrainingSpecification struct {
	TrainingImage                      *string                            `json:"TrainingImage,omitempty" validate:"omitempty,max=255"`
	TrainingImageDigest                *string                            `json:"TrainingImageDigest,omitempty" validate:"omitempty,max=72"`
	SupportedHyperParameters           []HyperParameterSpecification      `json:"SupportedHyperParameters,omitzero" validate:"omitempty,max=100,dive"`
	SupportedTrainingInstanceTypes     []TrainingInstanceType             `json:"SupportedTrainingInstanceTypes,omitzero"`
	SupportsDistributedTraining        *bool                              `json:"SupportsDistributedTraining,omitempty"`
	MetricDefinitions                  []MetricDefinition                 `json:"MetricDefinitions,omitzero" validate:"omitempty,max=40,dive"`
	TrainingChannels                   []ChannelSpecification             `json:"TrainingChannels,omitzero" validate:"omitempty,min=1,max=8,dive"`
	SupportedTuningJobObjectiveMetrics []HyperParameterTuningJobObjective `json:"SupportedTuningJobObjectiveMetrics,omitzero" validate:"omitempty,dive"`
}

func (s *TrainingSpecification) String() string { return shape.String(s) }
func (s *TrainingSpecification) Equal(other *TrainingSpecification) bool { return shape.Equal(s, other) }
func (s *TrainingSpecification) HashCode() int32 { return shape.Hash(s) }

func (s *TrainingSpecification) AddSupportedHyperParameters(items ...HyperParameterSpecification) { shape.Append(&s.SupportedHyperParameters, items...) }

func (s *TrainingSpecification) AddSupportedTrainingInstanceTypes(items ...TrainingInstanceType) { shape.Append(&s.SupportedTrainingInstanceTypes, items...) }

func (s *TrainingSpecification) AddMetricDefinitions(items ...MetricDefinition) { shape.Append(&s.MetricDefinitions, items...) }

func (s *TrainingSpecification) AddTrainingChannels(items ...ChannelSpecification) { shape.Append(&s.TrainingChannels, items...) }

func (s *TrainingSpecification) AddSupportedTuningJobObjectiveMetrics(items ...HyperParameterTuningJobObjective) { shape.Append(&s.SupportedTuningJobObjectiveMetrics, items...) }

type ModelPackageContainerDefinition struct {
	ContainerHostname *string `json:"ContainerHostname,omitempty" validate:"omitempty,max=63"`
	Image             *string `json:"Image,omitempty" validate:"omitempty,max=255"`
	ImageDigest       *string `json:"ImageDigest,omitempty" validate:"omitempty,max=72"`
	ModelDataUrl      *string `json:"ModelDataUrl,omitempty" validate:"omitempty,max=1024"`
	ProductId         *string `json:"ProductId,omitempty" validate:"omitempty,max=256"`
}

func (s *ModelPackageContainerDefinition) String() string { return shape.String(s) }
func (s *ModelPackageContainerDefinition) Equal(other *ModelPackageContainerDefinition) bool { return shape.Equal(s, other) }
func (s *ModelPackageContainerDefinition) HashCode() int32 { return shape.Hash(s) }

type InferenceSpecification struct {
	Containers                              []ModelPackageContainerDefinition `json:"Containers,omitzero" validate:"omitempty,min=1,max=1,dive"`
	SupportedTransformInstanceTypes         []string                          `json:"SupportedTransformInstanceTypes,omitzero" validate:"omitempty,min=1"`
	SupportedRealtimeInferenceInstanceTypes []ProductionVariantInstanceType   `json:"SupportedRealtimeInferenceInstanceTypes,omitzero"`
	SupportedContentTypes                   []string                          `json:"SupportedContentTypes,omitzero" validate:"omitempty,dive,max=256"`
	SupportedResponseMIMETypes              []string                          `json:"SupportedResponseMIMETypes,omitzero" validate:"omitempty,dive,max=1024"`
}

func (s *InferenceSpecification) String() string { return shape.String(s) }
func (s *InferenceSpecification) Equal(other *InferenceSpecification) bool { return shape.Equal(s, other) }
func (s *InferenceSpecification) HashCode() int32 { return shape.Hash(s) }

func (s *InferenceSpecification) AddContainers(items ...ModelPackageContainerDefinition) { shape.Append(&s.Containers, items...) }

func (s *InferenceSpecification) AddSupportedTransformInstanceTypes(items ...string) { shape.Append(&s.SupportedTransformInstanceTypes, items...) }

func (s *InferenceSpecification) AddSupportedRealtimeInferenceInstanceTypes(items ...ProductionVariantInstanceType) { shape.Append(&s.SupportedRealtimeInferenceInstanceTypes, items...) }

func (s *InferenceSpecification) AddSupportedContentTypes(items ...string) { shape.Append(&s.SupportedContentTypes, items...) }

func (s *InferenceSpecification) AddSupportedResponseMIMETypes(items ...string) { shape.Append(&s.SupportedResponseMIMETypes, items...) }

type AlgorithmSummary struct {
	AlgorithmName        *string         `json:"AlgorithmName,omitempty"`
	AlgorithmArn         *string         `json:"AlgorithmArn,omitempty"`
	AlgorithmDescription *string         `json:"AlgorithmDescription,omitempty"`
	CreationTime         *Timestamp      `json:"CreationTime,omitempty"`
	AlgorithmStatus      AlgorithmStatus `json:"AlgorithmStatus,omitempty"`
}

func (s *AlgorithmSummary) String() string { return shape.String(s) }
func (s *AlgorithmSummary) Equal(other *AlgorithmSummary) bool { return shape.Equal(s, other) }
func (s *AlgorithmSummary) HashCode() int32 { return shape.Hash(s) }
