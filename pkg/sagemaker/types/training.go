package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type AlgorithmSpecification struct {
	TrainingImage                    *string            `json:"TrainingImage,omitempty" validate:"omitempty,max=255"`
	AlgorithmName                    *string            `json:"AlgorithmName,omitempty" validate:"omitempty,min=1,max=170"`
	TrainingInputMode                TrainingInputMode  `json:"TrainingInputMode,omitempty"`
	MetricDefinitions                []MetricDefinition `json:"MetricDefinitions,omitzero" validate:"omitempty,max=40,dive"`
	EnableSageMakerMetricsTimeSeries *bool              `json:"EnableSageMakerMetricsTimeSeries,omitempty"`
}

func (s *AlgorithmSpecification) String() string { return shape.String(s) }
func (s *AlgorithmSpecification) Equal(other *AlgorithmSpecification) bool { return shape.Equal(s, other) }
func (s *AlgorithmSpecification) HashCode() int32 { return shape.Hash(s) }

func (s *AlgorithmSpecification) AddMetricDefinitions(items ...MetricDefinition) { shape.Append(&s.MetricDefinitions, items...) }

type S3DataSource struct {
	S3DataType             S3DataType         `json:"S3DataType,omitempty"`
	S3Uri                  *string            `json:"S3Uri,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	S3DataDistributionType S3DataDistribution `json:"S3DataDistributionType,omitempty"`
	AttributeNames         []string           `json:"AttributeNames,omitzero" validate:"omitempty,max=16,dive,min=1,max=256"`
}

func (s *S3DataSource) String() string { return shape.String(s) }
func (s *S3DataSource) Equal(other *S3DataSource) bool { return shape.Equal(s, other) }
func (s *S3DataSource) HashCode() int32 { return shape.Hash(s) }

func (s *S3DataSource) AddAttributeNames(items ...string) { shape.Append(&s.AttributeNames, items...) }

type DataSource struct {
	S3DataSource *S3DataSource `json:"S3DataSource,omitempty"`
}

func (s *DataSource) String() string { return shape.String(s) }
func (s *DataSource) Equal(other *DataSource) bool { return shape.Equal(s, other) }
func (s *DataSource) HashCode() int32 { return shape.Hash(s) }

type ShuffleConfig struct {
	Seed *int64 `json:"Seed,omitempty"`
}

func (s *ShuffleConfig) String() string { return shape.String(s) }
func (s *ShuffleConfig) Equal(other *ShuffleConfig) bool { return shape.Equal(s, other) }
func (s *ShuffleConfig) HashCode() int32 { return shape.Hash(s) }

// Channel is a named input of a training job.
type Channel struct {
	ChannelName       *string           `json:"ChannelName,omitempty" validate:"omitempty,min=1,max=64,sm_channel_name"`
	DataSource        *DataSource       `json:"DataSource,omitempty"`
	ContentType       *string           `json:"ContentType,omitempty" validate:"omitempty,max=256"`
	CompressionType   CompressionType   `json:"CompressionType,omitempty"`
	RecordWrapperType RecordWrapper     `json:"RecordWrapperType,omitempty"`
	InputMode         TrainingInputMode `json:"InputMode,omitempty"`
	ShuffleConfig     *ShuffleConfig    `json:"ShuffleConfig,omitempty"`
}

func (s *Channel) String() string { return shape.String(s) }
func (s *Channel) Equal(other *Channel) bool { return shape.Equal(s, other) }
func (s *Channel) HashCode() int32 { return shape.Hash(s) }

type OutputDataConfig struct {
	KmsKeyId     *string `json:"KmsKeyId,omitempty" validate:"omitempty,max=2048"`
	S3OutputPath *string `json:"S3OutputPath,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
}

func (s *OutputDataConfig) String() string { return shape.String(s) }
func (s *OutputDataConfig) Equal(other *OutputDataConfig) bool { return shape.Equal(s, other) }
func (s *OutputDataConfig) HashCode() int32 { return shape.Hash(s) }

type ResourceConfig struct {
	InstanceType   TrainingInstanceType `json:"InstanceType,omitempty"`
	InstanceCount  *int32               `json:"InstanceCount,omitempty" validate:"omitempty,min=1"`
	VolumeSizeInGB *int32               `json:"VolumeSizeInGB,omitempty" validate:"omitempty,min=1"`
	VolumeKmsKeyId *string              `json:"VolumeKmsKeyId,omitempty" validate:"omitempty,max=2048"`
}

func (s *ResourceConfig) String() string { return shape.String(s) }
func (s *ResourceConfig) Equal(other *ResourceConfig) bool { return shape.Equal(s, other) }
func (s *ResourceConfig) HashCode() int32 { return shape.Hash(s) }

type StoppingCondition struct {
	MaxRuntimeInSeconds  *int32 `json:"MaxRuntimeInSeconds,omitempty" validate:"omitempty,min=1"`
	MaxWaitTimeInSeconds *int32 `json:"MaxWaitTimeInSeconds,omitempty" validate:"omitempty,min=1"`
}

func (s *StoppingCondition) String() string { return shape.String(s) }
func (s *StoppingCondition) Equal(other *StoppingCondition) bool { return shape.Equal(s, other) }
func (s *StoppingCondition) HashCode() int32 { return shape.Hash(s) }

type CheckpointConfig struct {
	S3Uri     *string `json:"S3Uri,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	LocalPath *string `json:"LocalPath,omitempty" validate:"omitempty,max=4096"`
}

func (s *CheckpointConfig) String() string { return shape.String(s) }
func (s *CheckpointConfig) Equal(other *CheckpointConfig) bool { return shape.Equal(s, other) }
func (s *CheckpointConfig) HashCode() int32 { return shape.Hash(s) }

// CollectionConfiguration configures a tensor collection saved by the debugger hook.
type CollectionConfiguration struct {
	CollectionName       *string           `json:"CollectionName,omitempty" validate:"omitempty,min=1,max=256"`
	CollectionParameters map[string]string `json:"CollectionParameters,omitzero" validate:"omitempty,max=20"`
}

func (s *CollectionConfiguration) String() string { return shape.String(s) }
func (s *CollectionConfiguration) Equal(other *CollectionConfiguration) bool { return shape.Equal(s, other) }
func (s *CollectionConfiguration) HashCode() int32 { return shape.Hash(s) }

// PutCollectionParameters adds an entry to CollectionParameters. It fails if the key is already present.
func (s *CollectionConfiguration) PutCollectionParameters(key string, value string) error {
	return shape.PutUnique(&s.CollectionParameters, key, value)
}

func (s *CollectionConfiguration) ClearCollectionParameters() { shape.Clear(&s.CollectionParameters) }

type DebugHookConfig struct {
	LocalPath                *string                   `json:"LocalPath,omitempty" validate:"omitempty,max=4096"`
	S3OutputPath             *string                   `json:"S3OutputPath,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	HookParameters           map[string]string         `json:"HookParameters,omitzero" validate:"omitempty,max=20"`
	CollectionConfigurations []CollectionConfiguration `json:"CollectionConfigurations,omitzero" validate:"omitempty,max=20,dive"`
}

func (s *DebugHookConfig) String() string { return shape.String(s) }
func (s *DebugHookConfig) Equal(other *DebugHookConfig) bool { return shape.Equal(s, other) }
func (s *DebugHookConfig) HashCode() int32 { return shape.Hash(s) }

// PutHookParameters adds an entry to HookParameters. It fails if the key is already present.
func (s *DebugHookConfig) PutHookParameters(key string, value string) error {
	return shape.PutUnique(&s.HookParameters, key, value)
}

func (s *DebugHookConfig) ClearHookParameters() { shape.Clear(&s.HookParameters) }

func (s *DebugHookConfig) AddCollectionConfigurations(items ...CollectionConfiguration) { shape.Append(&s.CollectionConfigurations, items...) }

type TensorBoardOutputConfig struct {
	LocalPath    *string `json:"LocalPath,omitempty" validate:"omitempty,max=4096"`
	S3OutputPath *string `json:"S3OutputPath,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
}

func (s *TensorBoardOutputConfig) String() string { return shape.String(s) }
func (s *TensorBoardOutputConfig) Equal(other *TensorBoardOutputConfig) bool { return shape.Equal(s, other) }
func (s *TensorBoardOutputConfig) HashCode() int32 { return shape.Hash(s) }

type ExperimentConfig struct {
	ExperimentName            *string `json:"ExperimentName,omitempty" validate:"omitempty,min=1,max=120,sm_name"`
	TrialName                 *string `json:"TrialName,omitempty" validate:"omitempty,min=1,max=120,sm_name"`
	TrialComponentDisplayName *string `json:"TrialComponentDisplayName,omitempty" validate:"omitempty,min=1,max=120,sm_name"`
}

func (s *ExperimentConfig) String() string { return shape.String(s) }
func (s *ExperimentConfig) Equal(other *ExperimentConfig) bool { return shape.Equal(s, other) }
func (s *ExperimentConfig) HashCode() int32 { return shape.Hash(s) }

// TrainingJob is the training job record returned by Search.
type TrainingJob struct {
	TrainingJobName        *string                 `json:"TrainingJobName,omitempty"`
	TrainingJobArn         *string                 `json:"TrainingJobArn,omitempty"`
	TuningJobArn           *string                 `json:"TuningJobArn,omitempty"`
	AlgorithmSpecification *AlgorithmSpecification `json:"AlgorithmSpecification,omitempty"`
	RoleArn                *string                 `json:"RoleArn,omitempty"`
	HyperParameters        map[string]string       `json:"HyperParameters,omitzero"`
	InputDataConfig        []Channel               `json:"InputDataConfig,omitzero"`
	OutputDataConfig       *OutputDataConfig       `json:"OutputDataConfig,omitempty"`
	ResourceConfig         *ResourceConfig         `json:"ResourceConfig,omitempty"`
	VpcConfig              *VpcConfig              `json:"VpcConfig,omitempty"`
	StoppingCondition      *StoppingCondition      `json:"StoppingCondition,omitempty"`
	TrainingJobStatus      TrainingJobStatus       `json:"TrainingJobStatus,omitempty"`
	FailureReason          *string                 `json:"FailureReason,omitempty"`
	CreationTime           *Timestamp              `json:"CreationTime,omitempty"`
	TrainingStartTime      *Timestamp              `json:"TrainingStartTime,omitempty"`
	TrainingEndTime        *Timestamp              `json:"TrainingEndTime,omitempty"`
	LastModifiedTime       *Timestamp              `json:"LastModifiedTime,omitempty"`
	EnableNetworkIsolation *bool                   `json:"EnableNetworkIsolation,omitempty"`
	DebugHookConfig        *DebugHookConfig        `json:"DebugHookConfig,omitempty"`
	ExperimentConfig       *ExperimentConfig       `json:"ExperimentConfig,omitempty"`
	Tags                   []Tag                   `json:"Tags,omitzero"`
}

func (s *TrainingJob) String() string { return shape.String(s) }
func (s *TrainingJob) Equal(other *TrainingJob) bool { return shape.Equal(s, other) }
func (s *TrainingJob) HashCode() int32 { return shape.Hash(s) }

// PutHyperParameters adds an entry to HyperParameters. It fails if the key is already present.
func (s *TrainingJob) PutHyperParameters(key string, value string) error {
	return shape.PutUnique(&s.HyperParameters, key, value)
}

func (s *TrainingJob) ClearHyperParameters() { shape.Clear(&s.HyperParameters) }

func (s *TrainingJob) AddInputDataConfig(items ...Channel) { shape.Append(&s.InputDataConfig, items...) }

func (s *TrainingJob) AddTags(items ...Tag) { shape.Append(&s.Tags, items...) }
