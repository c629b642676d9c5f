package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

// ResourceSpec describes the image and instance type an app runs on.
type ResourceSpec struct {
	SageMakerImageArn *string         `json:"SageMakerImageArn,omitempty" validate:"omitempty,max=256,sm_image_arn"`
	InstanceType      AppInstanceType `json:"InstanceType,omitempty"`
}

func (s *ResourceSpec) String() string { return shape.String(s) }
func (s *ResourceSpec) Equal(other *ResourceSpec) bool { return shape.Equal(s, other) }
func (s *ResourceSpec) HashCode() int32 { return shape.Hash(s) }

// SharingSettings controls how notebook cell output is shared.
type SharingSettings struct {
	NotebookOutputOption NotebookOutputOption `json:"NotebookOutputOption,omitempty"`
	S3OutputPath         *string              `json:"S3OutputPath,omitempty" validate:"omitempty,max=1024,sm_s3_uri"`
	S3KmsKeyId           *string              `json:"S3KmsKeyId,omitempty" validate:"omitempty,max=2048"`
}

func (s *SharingSettings) String() string { return shape.String(s) }
func (s *SharingSettings) Equal(other *SharingSettings) bool { return shape.Equal(s, other) }
func (s *SharingSettings) HashCode() int32 { return shape.Hash(s) }

type JupyterServerAppSettings struct {
	DefaultResourceSpec *ResourceSpec `json:"DefaultResourceSpec,omitempty"`
}

func (s *JupyterServerAppSettings) String() string { return shape.String(s) }
func (s *JupyterServerAppSettings) Equal(other *JupyterServerAppSettings) bool { return shape.Equal(s, other) }
func (s *JupyterServerAppSettings) HashCode() int32 { return shape.Hash(s) }

type KernelGatewayAppSettings struct {
	DefaultResourceSpec *ResourceSpec `json:"DefaultResourceSpec,omitempty"`
}

func (s *KernelGatewayAppSettings) String() string { return shape.String(s) }
func (s *KernelGatewayAppSettings) Equal(other *KernelGatewayAppSettings) bool { return shape.Equal(s, other) }
func (s *KernelGatewayAppSettings) HashCode() int32 { return shape.Hash(s) }

type TensorBoardAppSettings struct {
	DefaultResourceSpec *ResourceSpec `json:"DefaultResourceSpec,omitempty"`
}

func (s *TensorBoardAppSettings) String() string { return shape.String(s) }
func (s *TensorBoardAppSettings) Equal(other *TensorBoardAppSettings) bool { return shape.Equal(s, other) }
func (s *TensorBoardAppSettings) HashCode() int32 { return shape.Hash(s) }

// UserSettings are the defaults applied to user profiles of a domain.
type UserSettings struct {
	ExecutionRole            *string                   `json:"ExecutionRole,omitempty" validate:"omitempty,min=20,max=2048,sm_role_arn"`
	SecurityGroups           []string                  `json:"SecurityGroups,omitzero" validate:"omitempty,max=5,dive,max=32,sm_resource_id"`
	SharingSettings          *SharingSettings          `json:"SharingSettings,omitempty"`
	JupyterServerAppSettings *JupyterServerAppSettings `json:"JupyterServerAppSettings,omitempty"`
	KernelGatewayAppSettings *KernelGatewayAppSettings `json:"KernelGatewayAppSettings,omitempty"`
	TensorBoardAppSettings   *TensorBoardAppSettings   `json:"TensorBoardAppSettings,omitempty"`
}

func (s *UserSettings) String() string { return shape.String(s) }
func (s *UserSettings) Equal(other *UserSettings) bool { return shape.Equal(s, other) }
func (s *UserSettings) HashCode() int32 { return shape.Hash(s) }

func (s *UserSettings) AddSecurityGroups(items ...string) { shape.Append(&s.SecurityGroups, items...) }

// AppDetails is the summary of an app returned by ListApps.
type AppDetails struct {
	DomainId        *string    `json:"DomainId,omitempty"`
	UserProfileName *string    `json:"UserProfileName,omitempty"`
	AppType         AppType    `json:"AppType,omitempty"`
	AppName         *string    `json:"AppName,omitempty"`
	Status          AppStatus  `json:"Status,omitempty"`
	CreationTime    *Timestamp `json:"CreationTime,omitempty"`
}

func (s *AppDetails) String() string { return shape.String(s) }
func (s *AppDetails) Equal(other *AppDetails) bool { return shape.Equal(s, other) }
func (s *AppDetails) HashCode() int32 { return shape.Hash(s) }

type DomainDetails struct {
	DomainArn        *string      `json:"DomainArn,omitempty"`
	DomainId         *string      `json:"DomainId,omitempty"`
	DomainName       *string      `json:"DomainName,omitempty"`
	Status           DomainStatus `json:"Status,omitempty"`
	CreationTime     *Timestamp   `json:"CreationTime,omitempty"`
	LastModifiedTime *Timestamp   `json:"LastModifiedTime,omitempty"`
	Url              *string      `json:"Url,omitempty"`
}

func (s *DomainDetails) String() string { return shape.String(s) }
func (s *DomainDetails) Equal(other *DomainDetails) bool { return shape.Equal(s, other) }
func (s *DomainDetails) HashCode() int32 { return shape.Hash(s) }

// RetentionPolicy decides what happens to the home EFS volume when a domain is deleted.
type RetentionPolicy struct {
	HomeEfsFileSystem RetentionType `json:"HomeEfsFileSystem,omitempty"`
}

func (s *RetentionPolicy) String() string { return shape.String(s) }
func (s *RetentionPolicy) Equal(other *RetentionPolicy) bool { return shape.Equal(s, other) }
func (s *RetentionPolicy) HashCode() int32 { return shape.Hash(s) }

// Tag is a key value pair attached to a resource.
type Tag struct {
	Key   *string `json:"Key,omitempty" validate:"omitempty,min=1,max=128"`
	Value *string `json:"Value,omitempty" validate:"omitempty,max=256"`
}

func (s *Tag) String() string { return shape.String(s) }
func (s *Tag) Equal(other *Tag) bool { return shape.Equal(s, other) }
func (s *Tag) HashCode() int32 { return shape.Hash(s) }
