package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type CaptureOption struct {
	CaptureMode CaptureMode `json:"CaptureMode,omitempty"`
}

func (s *CaptureOption) String() string { return shape.String(s) }
func (s *CaptureOption) Equal(other *CaptureOption) bool { return shape.Equal(s, other) }
func (s *CaptureOption) HashCode() int32 { return shape.Hash(s) }

type CaptureContentTypeHeader struct {
	CsvContentTypes  []string `json:"CsvContentTypes,omitzero" validate:"omitempty,min=1,max=10,dive,min=1,max=256"`
	JsonContentTypes []string `json:"JsonContentTypes,omitzero" validate:"omitempty,min=1,max=10,dive,min=1,max=256"`
}

func (s *CaptureContentTypeHeader) String() string { return shape.String(s) }
func (s *CaptureContentTypeHeader) Equal(other *CaptureContentTypeHeader) bool { return shape.Equal(s, other) }
func (s *CaptureContentTypeHeader) HashCode() int32 { return shape.Hash(s) }

func (s *CaptureContentTypeHeader) AddCsvContentTypes(items ...string) { shape.Append(&s.CsvContentTypes, items...) }

func (s *CaptureContentTypeHeader) AddJsonContentTypes(items ...string) { shape.Append(&s.JsonContentTypes, items...) }

type DataCaptureConfig struct {
	EnableCapture             *bool                     `json:"EnableCapture,omitempty"`
	InitialSamplingPercentage *int32                    `json:"InitialSamplingPercentage,omitempty" validate:"omitempty,min=0,max=100"`
	DestinationS3Uri          *string                   `json:"DestinationS3Uri,omitempty" validate:"omitempty,max=512,sm_s3_uri"`
	KmsKeyId                  *string                   `json:"KmsKeyId,omitempty" validate:"omitempty,max=2048"`
	CaptureOptions            []CaptureOption           `json:"CaptureOptions,omitzero" validate:"omitempty,min=1,max=2,dive"`
	CaptureContentTypeHeader  *CaptureContentTypeHeader `json:"CaptureContentTypeHeader,omitempty"`
}

func (s *DataCaptureConfig) String() string { return shape.String(s) }
func (s *DataCaptureConfig) Equal(other *DataCaptureConfig) bool { return shape.Equal(s, other) }
func (s *DataCaptureConfig) HashCode() int32 { return shape.Hash(s) }

func (s *DataCaptureConfig) AddCaptureOptions(items ...CaptureOption) { shape.Append(&s.CaptureOptions, items...) }

type DataCaptureConfigSummary struct {
	EnableCapture             *bool         `json:"EnableCapture,omitempty"`
	CaptureStatus             CaptureStatus `json:"CaptureStatus,omitempty"`
	CurrentSamplingPercentage *int32        `json:"CurrentSamplingPercentage,omitempty"`
	DestinationS3Uri          *string       `json:"DestinationS3Uri,omitempty"`
	KmsKeyId                  *string       `json:"KmsKeyId,omitempty"`
}

func (s *DataCaptureConfigSummary) String() string { return shape.String(s) }
func (s *DataCaptureConfigSummary) Equal(other *DataCaptureConfigSummary) bool { return shape.Equal(s, other) }
func (s *DataCaptureConfigSummary) HashCode() int32 { return shape.Hash(s) }

type ProductionVariant struct {
	VariantName          *string                       `json:"VariantName,omitempty" validate:"omitempty,max=63,sm_name"`
	ModelName            *string                       `json:"ModelName,omitempty" validate:"omitempty,max=63,sm_name"`
	InitialInstanceCount *int32                        `json:"InitialInstanceCount,omitempty" validate:"omitempty,min=1"`
	InstanceType         ProductionVariantInstanceType `json:"InstanceType,omitempty"`
	InitialVariantWeight *float32                      `json:"InitialVariantWeight,omitempty" validate:"omitempty,min=0"`
	AcceleratorType      *string                       `json:"AcceleratorType,omitempty"`
}

func (s *ProductionVariant) String() string { return shape.String(s) }
func (s *ProductionVariant) Equal(other *ProductionVariant) bool { return shape.Equal(s, other) }
func (s *ProductionVariant) HashCode() int32 { return shape.Hash(s) }
