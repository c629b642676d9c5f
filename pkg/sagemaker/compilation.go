package sagemaker

import (
	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

// CreateCompilationJobRequest starts a model compilation job for a target device or platform.
type CreateCompilationJobRequest struct {
	RequestMetadata `json:"-"`

	CompilationJobName *string                  `json:"CompilationJobName,omitempty" validate:"omitempty,min=1,max=63,sm_name"`
	RoleArn            *string                  `json:"RoleArn,omitempty" validate:"omitempty,min=20,max=2048,sm_role_arn"`
	InputConfig        *types.InputConfig       `json:"InputConfig,omitempty"`
	OutputConfig       *types.OutputConfig      `json:"OutputConfig,omitempty"`
	StoppingCondition  *types.StoppingCondition `json:"StoppingCondition,omitempty"`
}

func (r *CreateCompilationJobRequest) String() string { return shape.String(r) }
func (r *CreateCompilationJobRequest) Equal(other *CreateCompilationJobRequest) bool { return shape.Equal(r, other) }
func (r *CreateCompilationJobRequest) HashCode() int32 { return shape.Hash(r) }

type CreateCompilationJobResult struct {
	CompilationJobArn *string `json:"CompilationJobArn,omitempty"`
}

func (r *CreateCompilationJobResult) String() string { return shape.String(r) }
func (r *CreateCompilationJobResult) Equal(other *CreateCompilationJobResult) bool { return shape.Equal(r, other) }
func (r *CreateCompilationJobResult) HashCode() int32 { return shape.Hash(r) }
