package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// CreateTrainingJobRequest starts a model training job.
type CreateTrainingJobRequest struct {
	RequestMetadata `json:"-"`

	TrainingJobName                       *string                        `json:"TrainingJobName,omitempty" validate:"omitempty,min=1,max=63,sm_name"`
	HyperParameters                       map[string]string              `json:"HyperParameters,omitzero" validate:"omitempty,max=100"`
	AlgorithmSpecification                *types.AlgorithmSpecification  `json:"AlgorithmSpecification,omitempty"`
	RoleArn                               *string                        `json:"RoleArn,omitempty" validate:"omitempty,min=20,max=2048,sm_role_arn"`
	InputDataConfig                       []types.Channel                `json:"InputDataConfig,omitzero" validate:"omitempty,min=1,max=20,dive"`
	OutputDataConfig                      *types.OutputDataConfig        `json:"OutputDataConfig,omitempty"`
	ResourceConfig                        *types.ResourceConfig          `json:"ResourceConfig,omitempty"`
	VpcConfig                             *types.VpcConfig               `json:"VpcConfig,omitempty"`
	StoppingCondition                     *types.StoppingCondition       `json:"StoppingCondition,omitempty"`
	Tags                                  []types.Tag                    `json:"Tags,omitzero" validate:"omitempty,max=50,dive"`
	EnableNetworkIsolation                *bool                          `json:"EnableNetworkIsolation,omitempty"`
	EnableInterContainerTrafficEncryption *bool                          `json:"EnableInterContainerTrafficEncryption,omitempty"`
	EnableManagedSpotTraining             *bool                          `json:"EnableManagedSpotTraining,omitempty"`
	CheckpointConfig                      *types.CheckpointConfig        `json:"CheckpointConfig,omitempty"`
	DebugHookConfig                       *types.DebugHookConfig         `json:"DebugHookConfig,omitempty"`
	TensorBoardOutputConfig               *types.TensorBoardOutputConfig `json:"TensorBoardOutputConfig,omitempty"`
	ExperimentConfig                      *types.ExperimentConfig        `json:"ExperimentConfig,omitempty"`
}

func (r *CreateTrainingJobRequest) String() string { return shape.String(r) }
func (r *CreateTrainingJobRequest) Equal(other *CreateTrainingJobRequest) bool { return shape.Equal(r, other) }
func (r *CreateTrainingJobRequest) HashCode() int32 { return shape.Hash(r) }

// PutHyperParameters adds an entry to HyperParameters. It fails if the key is already present.
func (r *CreateTrainingJobRequest) PutHyperParameters(key string, value string) error {
	return shape.PutUnique(&r.HyperParameters, key, value)
}

func (r *CreateTrainingJobRequest) ClearHyperParameters() { shape.Clear(&r.HyperParameters) }

func (r *CreateTrainingJobRequest) AddInputDataConfig(items ...types.Channel) { shape.Append(&r.InputDataConfig, items...) }

func (r *CreateTrainingJobRequest) AddTags(items ...types.Tag) { shape.Append(&r.Tags, items...) }

type CreateTrainingJobResult struct {
	TrainingJobArn *string `json:"TrainingJobArn,omitempty"`
}

func (r *CreateTrainingJobResult) String() string { return shape.String(r) }
func (r *CreateTrainingJobResult) Equal(other *CreateTrainingJobResult) bool { return shape.Equal(r, other) }
func (r *CreateTrainingJobResult) HashCode() int32 { return shape.Hash(r) }

type DescribeHyperParameterTuningJobRequest struct {
	RequestMetadata `json:"-"`

	HyperParameterTuningJobName *string `json:"HyperParameterTuningJobName,omitempty" validate:"omitempty,min=1,max=32,sm_name"`
}

func (r *DescribeHyperParameterTuningJobRequest) String() string { return shape.String(r) }
func (r *DescribeHyperParameterTuningJobRequest) Equal(other *DescribeHyperParameterTuningJobRequest) bool { return shape.Equal(r, other) }
func (r *DescribeHyperParameterTuningJobRequest) HashCode() int32 { return shape.Hash(r) }

type DescribeHyperParameterTuningJobResult struct {
	HyperParameterTuningJobName   *string                              `json:"HyperParameterTuningJobName,omitempty"`
	HyperParameterTuningJobArn    *string                              `json:"HyperParameterTuningJobArn,omitempty"`
	HyperParameterTuningJobConfig *types.HyperParameterTuningJobConfig `json:"HyperParameterTuningJobConfig,omitempty"`
	HyperParameterTuningJobStatus types.HyperParameterTuningJobStatus  `json:"HyperParameterTuningJobStatus,omitempty"`
	CreationTime                  *types.Timestamp                     `json:"CreationTime,omitempty"`
	HyperParameterTuningEndTime   *types.Timestamp                     `json:"HyperParameterTuningEndTime,omitempty"`
	LastModifiedTime              *types.Timestamp                     `json:"LastModifiedTime,omitempty"`
	TrainingJobStatusCounters     *types.TrainingJobStatusCounters     `json:"TrainingJobStatusCounters,omitempty"`
	ObjectiveStatusCounters       *types.ObjectiveStatusCounters       `json:"ObjectiveStatusCounters,omitempty"`
	FailureReason                 *string                              `json:"FailureReason,omitempty"`
}

func (r *DescribeHyperParameterTuningJobResult) String() string { return shape.String(r) }
func (r *DescribeHyperParameterTuningJobResult) Equal(other *DescribeHyperParameterTuningJobResult) bool { return shape.Equal(r, other) }
func (r *DescribeHyperParameterTuningJobResult) HashCode() int32 { return shape.Hash(r) }
