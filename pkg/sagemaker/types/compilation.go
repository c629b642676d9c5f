package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type InputConfig struct {
	S3Uri           *string   `json:"S3Uri,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	DataInputConfig *string   `json:"DataInputConfig,omitempty" validate:"omitempty,min=1,max=1024"`
	Framework       Framework `json:"Framework,omitempty"`
}

func (s *InputConfig) String() string { return shape.String(s) }
func (s *InputConfig) Equal(other *InputConfig) bool { return shape.Equal(s, other) }
func (s *InputConfig) HashCode() int32 { return shape.Hash(s) }

// TargetPlatform is an alternative to TargetDevice for edge targets.
type TargetPlatform struct {
	Os          TargetPlatformOs          `json:"Os,omitempty"`
	Arch        TargetPlatformArch        `json:"Arch,omitempty"`
	Accelerator TargetPlatformAccelerator `json:"Accelerator,omitempty"`
}

func (s *TargetPlatform) String() string { return shape.String(s) }
func (s *TargetPlatform) Equal(other *TargetPlatform) bool { return shape.Equal(s, other) }
func (s *TargetPlatform) HashCode() int32 { return shape.Hash(s) }

type OutputConfig struct {
	S3OutputLocation *string         `json:"S3OutputLocation,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	TargetDevice     TargetDevice    `json:"TargetDevice,omitempty"`
	TargetPlatform   *TargetPlatform `json:"TargetPlatform,omitempty"`
	CompilerOptions  *string         `json:"CompilerOptions,omitempty" validate:"omitempty,min=7,max=1024"`
}

func (s *OutputConfig) String() string { return shape.String(s) }
func (s *OutputConfig) Equal(other *OutputConfig) bool { return shape.Equal(s, other) }
func (s *OutputConfig) HashCode() int32 { return shape.Hash(s) }
