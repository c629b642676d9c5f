package types

import "slices"

// AppType is the kind of Studio app.
type AppType string

// Enum values for AppType
const (
	AppTypeJupyterServer AppType = "JupyterServer"
	AppTypeKernelGateway AppType = "KernelGateway"
	AppTypeTensorBoard   AppType = "TensorBoard"
)

// Values returns all known values for AppType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AppType) Values() []AppType {
	return []AppType{
		"JupyterServer",
		"KernelGateway",
		"TensorBoard",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AppType) IsKnown() bool { return slices.Contains(e.Values(), e) }

// AppStatus is the server side lifecycle state of an app. The client only reports it.
type AppStatus string

// Enum values for AppStatus
const (
	AppStatusDeleted   AppStatus = "Deleted"
	AppStatusDeleting  AppStatus = "Deleting"
	AppStatusFailed    AppStatus = "Failed"
	AppStatusInService AppStatus = "InService"
	AppStatusPending   AppStatus = "Pending"
)

// Values returns all known values for AppStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AppStatus) Values() []AppStatus {
	return []AppStatus{
		"Deleted",
		"Deleting",
		"Failed",
		"InService",
		"Pending",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AppStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type AppInstanceType string

// Enum values for AppInstanceType
const (
	AppInstanceTypeSystem         AppInstanceType = "system"
	AppInstanceTypeMlT3Micro      AppInstanceType = "ml.t3.micro"
	AppInstanceTypeMlT3Small      AppInstanceType = "ml.t3.small"
	AppInstanceTypeMlT3Medium     AppInstanceType = "ml.t3.medium"
	AppInstanceTypeMlT3Large      AppInstanceType = "ml.t3.large"
	AppInstanceTypeMlT3Xlarge     AppInstanceType = "ml.t3.xlarge"
	AppInstanceTypeMlT32xlarge    AppInstanceType = "ml.t3.2xlarge"
	AppInstanceTypeMlM5Large      AppInstanceType = "ml.m5.large"
	AppInstanceTypeMlM5Xlarge     AppInstanceType = "ml.m5.xlarge"
	AppInstanceTypeMlM52xlarge    AppInstanceType = "ml.m5.2xlarge"
	AppInstanceTypeMlM54xlarge    AppInstanceType = "ml.m5.4xlarge"
	AppInstanceTypeMlM58xlarge    AppInstanceType = "ml.m5.8xlarge"
	AppInstanceTypeMlM512xlarge   AppInstanceType = "ml.m5.12xlarge"
	AppInstanceTypeMlM516xlarge   AppInstanceType = "ml.m5.16xlarge"
	AppInstanceTypeMlM524xlarge   AppInstanceType = "ml.m5.24xlarge"
	AppInstanceTypeMlC5Large      AppInstanceType = "ml.c5.large"
	AppInstanceTypeMlC5Xlarge     AppInstanceType = "ml.c5.xlarge"
	AppInstanceTypeMlC52xlarge    AppInstanceType = "ml.c5.2xlarge"
	AppInstanceTypeMlC54xlarge    AppInstanceType = "ml.c5.4xlarge"
	AppInstanceTypeMlC59xlarge    AppInstanceType = "ml.c5.9xlarge"
	AppInstanceTypeMlC512xlarge   AppInstanceType = "ml.c5.12xlarge"
	AppInstanceTypeMlC518xlarge   AppInstanceType = "ml.c5.18xlarge"
	AppInstanceTypeMlC524xlarge   AppInstanceType = "ml.c5.24xlarge"
	AppInstanceTypeMlP32xlarge    AppInstanceType = "ml.p3.2xlarge"
	AppInstanceTypeMlP38xlarge    AppInstanceType = "ml.p3.8xlarge"
	AppInstanceTypeMlP316xlarge   AppInstanceType = "ml.p3.16xlarge"
	AppInstanceTypeMlG4dnXlarge   AppInstanceType = "ml.g4dn.xlarge"
	AppInstanceTypeMlG4dn2xlarge  AppInstanceType = "ml.g4dn.2xlarge"
	AppInstanceTypeMlG4dn4xlarge  AppInstanceType = "ml.g4dn.4xlarge"
	AppInstanceTypeMlG4dn8xlarge  AppInstanceType = "ml.g4dn.8xlarge"
	AppInstanceTypeMlG4dn12xlarge AppInstanceType = "ml.g4dn.12xlarge"
	AppInstanceTypeMlG4dn16xlarge AppInstanceType = "ml.g4dn.16xlarge"
)

// Values returns all known values for AppInstanceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AppInstanceType) Values() []AppInstanceType {
	return []AppInstanceType{
		"system",
		"ml.t3.micro",
		"ml.t3.small",
		"ml.t3.medium",
		"ml.t3.large",
		"ml.t3.xlarge",
		"ml.t3.2xlarge",
		"ml.m5.large",
		"ml.m5.xlarge",
		"ml.m5.2xlarge",
		"ml.m5.4xlarge",
		"ml.m5.8xlarge",
		"ml.m5.12xlarge",
		"ml.m5.16xlarge",
		"ml.m5.24xlarge",
		"ml.c5.large",
		"ml.c5.xlarge",
		"ml.c5.2xlarge",
		"ml.c5.4xlarge",
		"ml.c5.9xlarge",
		"ml.c5.12xlarge",
		"ml.c5.18xlarge",
		"ml.c5.24xlarge",
		"ml.p3.2xlarge",
		"ml.p3.8xlarge",
		"ml.p3.16xlarge",
		"ml.g4dn.xlarge",
		"ml.g4dn.2xlarge",
		"ml.g4dn.4xlarge",
		"ml.g4dn.8xlarge",
		"ml.g4dn.12xlarge",
		"ml.g4dn.16xlarge",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AppInstanceType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type AppSortKey string

// Enum values for AppSortKey
const (
	AppSortKeyCreationTime AppSortKey = "CreationTime"
)

// Values returns all known values for AppSortKey. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AppSortKey) Values() []AppSortKey {
	return []AppSortKey{
		"CreationTime",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AppSortKey) IsKnown() bool { return slices.Contains(e.Values(), e) }

type SortOrder string

// Enum values for SortOrder
const (
	SortOrderAscending  SortOrder = "Ascending"
	SortOrderDescending SortOrder = "Descending"
)

// Values returns all known values for SortOrder. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (SortOrder) Values() []SortOrder {
	return []SortOrder{
		"Ascending",
		"Descending",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e SortOrder) IsKnown() bool { return slices.Contains(e.Values(), e) }

type CaptureStatus string

// Enum values for CaptureStatus
const (
	CaptureStatusStarted CaptureStatus = "Started"
	CaptureStatusStopped CaptureStatus = "Stopped"
)

// Values returns all known values for CaptureStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (CaptureStatus) Values() []CaptureStatus {
	return []CaptureStatus{
		"Started",
		"Stopped",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e CaptureStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type CaptureMode string

// Enum values for CaptureMode
const (
	CaptureModeInput  CaptureMode = "Input"
	CaptureModeOutput CaptureMode = "Output"
)

// Values returns all known values for CaptureMode. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (CaptureMode) Values() []CaptureMode {
	return []CaptureMode{
		"Input",
		"Output",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e CaptureMode) IsKnown() bool { return slices.Contains(e.Values(), e) }

// TargetDevice is the device a compiled model is optimized for.
type TargetDevice string

// Enum values for TargetDevice
const (
	TargetDeviceLambda       TargetDevice = "lambda"
	TargetDeviceMlM4         TargetDevice = "ml_m4"
	TargetDeviceMlM5         TargetDevice = "ml_m5"
	TargetDeviceMlC4         TargetDevice = "ml_c4"
	TargetDeviceMlC5         TargetDevice = "ml_c5"
	TargetDeviceMlP2         TargetDevice = "ml_p2"
	TargetDeviceMlP3         TargetDevice = "ml_p3"
	TargetDeviceMlG4dn       TargetDevice = "ml_g4dn"
	TargetDeviceMlInf1       TargetDevice = "ml_inf1"
	TargetDeviceJetsonTx1    TargetDevice = "jetson_tx1"
	TargetDeviceJetsonTx2    TargetDevice = "jetson_tx2"
	TargetDeviceJetsonNano   TargetDevice = "jetson_nano"
	TargetDeviceJetsonXavier TargetDevice = "jetson_xavier"
	TargetDeviceRasp3b       TargetDevice = "rasp3b"
	TargetDeviceImx8qm       TargetDevice = "imx8qm"
	TargetDeviceDeeplens     TargetDevice = "deeplens"
	TargetDeviceRk3399       TargetDevice = "rk3399"
	TargetDeviceRk3288       TargetDevice = "rk3288"
	TargetDeviceAisage       TargetDevice = "aisage"
	TargetDeviceSbeC         TargetDevice = "sbe_c"
	TargetDeviceQcs605       TargetDevice = "qcs605"
	TargetDeviceQcs603       TargetDevice = "qcs603"
	TargetDeviceSitaraAm57x  TargetDevice = "sitara_am57x"
	TargetDeviceAmbaCv22     TargetDevice = "amba_cv22"
	TargetDeviceX86Win32     TargetDevice = "x86_win32"
	TargetDeviceX86Win64     TargetDevice = "x86_win64"
)

// Values returns all known values for TargetDevice. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TargetDevice) Values() []TargetDevice {
	return []TargetDevice{
		"lambda",
		"ml_m4",
		"ml_m5",
		"ml_c4",
		"ml_c5",
		"ml_p2",
		"ml_p3",
		"ml_g4dn",
		"ml_inf1",
		"jetson_tx1",
		"jetson_tx2",
		"jetson_nano",
		"jetson_xavier",
		"rasp3b",
		"imx8qm",
		"deeplens",
		"rk3399",
		"rk3288",
		"aisage",
		"sbe_c",
		"qcs605",
		"qcs603",
		"sitara_am57x",
		"amba_cv22",
		"x86_win32",
		"x86_win64",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TargetDevice) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TargetPlatformOs string

// Enum values for TargetPlatformOs
const (
	TargetPlatformOsAndroid TargetPlatformOs = "ANDROID"
	TargetPlatformOsLinux   TargetPlatformOs = "LINUX"
)

// Values returns all known values for TargetPlatformOs. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TargetPlatformOs) Values() []TargetPlatformOs {
	return []TargetPlatformOs{
		"ANDROID",
		"LINUX",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TargetPlatformOs) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TargetPlatformArch string

// Enum values for TargetPlatformArch
const (
	TargetPlatformArchX8664     TargetPlatformArch = "X86_64"
	TargetPlatformArchX86       TargetPlatformArch = "X86"
	TargetPlatformArchArm64     TargetPlatformArch = "ARM64"
	TargetPlatformArchArmEabi   TargetPlatformArch = "ARM_EABI"
	TargetPlatformArchArmEabihf TargetPlatformArch = "ARM_EABIHF"
)

// Values returns all known values for TargetPlatformArch. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TargetPlatformArch) Values() []TargetPlatformArch {
	return []TargetPlatformArch{
		"X86_64",
		"X86",
		"ARM64",
		"ARM_EABI",
		"ARM_EABIHF",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TargetPlatformArch) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TargetPlatformAccelerator string

// Enum values for TargetPlatformAccelerator
const (
	TargetPlatformAcceleratorIntelGraphics TargetPlatformAccelerator = "INTEL_GRAPHICS"
	TargetPlatformAcceleratorMali          TargetPlatformAccelerator = "MALI"
	TargetPlatformAcceleratorNvidia        TargetPlatformAccelerator = "NVIDIA"
)

// Values returns all known values for TargetPlatformAccelerator. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TargetPlatformAccelerator) Values() []TargetPlatformAccelerator {
	return []TargetPlatformAccelerator{
		"INTEL_GRAPHICS",
		"MALI",
		"NVIDIA",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TargetPlatformAccelerator) IsKnown() bool { return slices.Contains(e.Values(), e) }

type Framework string

// Enum values for Framework
const (
	FrameworkTensorflow Framework = "TENSORFLOW"
	FrameworkKeras      Framework = "KERAS"
	FrameworkMxnet      Framework = "MXNET"
	FrameworkOnnx       Framework = "ONNX"
	FrameworkPytorch    Framework = "PYTORCH"
	FrameworkXgboost    Framework = "XGBOOST"
	FrameworkTflite     Framework = "TFLITE"
)

// Values returns all known values for Framework. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (Framework) Values() []Framework {
	return []Framework{
		"TENSORFLOW",
		"KERAS",
		"MXNET",
		"ONNX",
		"PYTORCH",
		"XGBOOST",
		"TFLITE",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e Framework) IsKnown() bool { return slices.Contains(e.Values(), e) }

type CompressionType string

// Enum values for CompressionType
const (
	CompressionTypeNone CompressionType = "None"
	CompressionTypeGzip CompressionType = "Gzip"
)

// Values returns all known values for CompressionType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (CompressionType) Values() []CompressionType {
	return []CompressionType{
		"None",
		"Gzip",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e CompressionType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TrainingInputMode string

// Enum values for TrainingInputMode
const (
	TrainingInputModePipe TrainingInputMode = "Pipe"
	TrainingInputModeFile TrainingInputMode = "File"
)

// Values returns all known values for TrainingInputMode. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TrainingInputMode) Values() []TrainingInputMode {
	return []TrainingInputMode{
		"Pipe",
		"File",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TrainingInputMode) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TrainingInstanceType string

// Enum values for TrainingInstanceType
const (
	TrainingInstanceTypeMlM4Xlarge     TrainingInstanceType = "ml.m4.xlarge"
	TrainingInstanceTypeMlM42xlarge    TrainingInstanceType = "ml.m4.2xlarge"
	TrainingInstanceTypeMlM44xlarge    TrainingInstanceType = "ml.m4.4xlarge"
	TrainingInstanceTypeMlM410xlarge   TrainingInstanceType = "ml.m4.10xlarge"
	TrainingInstanceTypeMlM416xlarge   TrainingInstanceType = "ml.m4.16xlarge"
	TrainingInstanceTypeMlG4dnXlarge   TrainingInstanceType = "ml.g4dn.xlarge"
	TrainingInstanceTypeMlG4dn2xlarge  TrainingInstanceType = "ml.g4dn.2xlarge"
	TrainingInstanceTypeMlG4dn4xlarge  TrainingInstanceType = "ml.g4dn.4xlarge"
	TrainingInstanceTypeMlG4dn8xlarge  TrainingInstanceType = "ml.g4dn.8xlarge"
	TrainingInstanceTypeMlG4dn12xlarge TrainingInstanceType = "ml.g4dn.12xlarge"
	TrainingInstanceTypeMlG4dn16xlarge TrainingInstanceType = "ml.g4dn.16xlarge"
	TrainingInstanceTypeMlM5Large      TrainingInstanceType = "ml.m5.large"
	TrainingInstanceTypeMlM5Xlarge     TrainingInstanceType = "ml.m5.xlarge"
	TrainingInstanceTypeMlM52xlarge    TrainingInstanceType = "ml.m5.2xlarge"
	TrainingInstanceTypeMlM54xlarge    TrainingInstanceType = "ml.m5.4xlarge"
	TrainingInstanceTypeMlM512xlarge   TrainingInstanceType = "ml.m5.12xlarge"
	TrainingInstanceTypeMlM524xlarge   TrainingInstanceType = "ml.m5.24xlarge"
	TrainingInstanceTypeMlC4Xlarge     TrainingInstanceType = "ml.c4.xlarge"
	TrainingInstanceTypeMlC42xlarge    TrainingInstanceType = "ml.c4.2xlarge"
	TrainingInstanceTypeMlC44xlarge    TrainingInstanceType = "ml.c4.4xlarge"
	TrainingInstanceTypeMlC48xlarge    TrainingInstanceType = "ml.c4.8xlarge"
	TrainingInstanceTypeMlP2Xlarge     TrainingInstanceType = "ml.p2.xlarge"
	TrainingInstanceTypeMlP28xlarge    TrainingInstanceType = "ml.p2.8xlarge"
	TrainingInstanceTypeMlP216xlarge   TrainingInstanceType = "ml.p2.16xlarge"
	TrainingInstanceTypeMlP32xlarge    TrainingInstanceType = "ml.p3.2xlarge"
	TrainingInstanceTypeMlP38xlarge    TrainingInstanceType = "ml.p3.8xlarge"
	TrainingInstanceTypeMlP316xlarge   TrainingInstanceType = "ml.p3.16xlarge"
	TrainingInstanceTypeMlP3dn24xlarge TrainingInstanceType = "ml.p3dn.24xlarge"
	TrainingInstanceTypeMlC5Xlarge     TrainingInstanceType = "ml.c5.xlarge"
	TrainingInstanceTypeMlC52xlarge    TrainingInstanceType = "ml.c5.2xlarge"
	TrainingInstanceTypeMlC54xlarge    TrainingInstanceType = "ml.c5.4xlarge"
	TrainingInstanceTypeMlC59xlarge    TrainingInstanceType = "ml.c5.9xlarge"
	TrainingInstanceTypeMlC518xlarge   TrainingInstanceType = "ml.c5.18xlarge"
	TrainingInstanceTypeMlC5nXlarge    TrainingInstanceType = "ml.c5n.xlarge"
	TrainingInstanceTypeMlC5n2xlarge   TrainingInstanceType = "ml.c5n.2xlarge"
	TrainingInstanceTypeMlC5n4xlarge   TrainingInstanceType = "ml.c5n.4xlarge"
	TrainingInstanceTypeMlC5n9xlarge   TrainingInstanceType = "ml.c5n.9xlarge"
	TrainingInstanceTypeMlC5n18xlarge  TrainingInstanceType = "ml.c5n.18xlarge"
)

// Values returns all known values for TrainingInstanceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TrainingInstanceType) Values() []TrainingInstanceType {
	return []TrainingInstanceType{
		"ml.m4.xlarge",
		"ml.m4.2xlarge",
		"ml.m4.4xlarge",
		"ml.m4.10xlarge",
		"ml.m4.16xlarge",
		"ml.g4dn.xlarge",
		"ml.g4dn.2xlarge",
		"ml.g4dn.4xlarge",
		"ml.g4dn.8xlarge",
		"ml.g4dn.12xlarge",
		"ml.g4dn.16xlarge",
		"ml.m5.large",
		"ml.m5.xlarge",
		"ml.m5.2xlarge",
		"ml.m5.4xlarge",
		"ml.m5.12xlarge",
		"ml.m5.24xlarge",
		"ml.c4.xlarge",
		"ml.c4.2xlarge",
		"ml.c4.4xlarge",
		"ml.c4.8xlarge",
		"ml.p2.xlarge",
		"ml.p2.8xlarge",
		"ml.p2.16xlarge",
		"ml.p3.2xlarge",
		"ml.p3.8xlarge",
		"ml.p3.16xlarge",
		"ml.p3dn.24xlarge",
		"ml.c5.xlarge",
		"ml.c5.2xlarge",
		"ml.c5.4xlarge",
		"ml.c5.9xlarge",
		"ml.c5.18xlarge",
		"ml.c5n.xlarge",
		"ml.c5n.2xlarge",
		"ml.c5n.4xlarge",
		"ml.c5n.9xlarge",
		"ml.c5n.18xlarge",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TrainingInstanceType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type ParameterType string

// Enum values for ParameterType
const (
	ParameterTypeInteger     ParameterType = "Integer"
	ParameterTypeContinuous  ParameterType = "Continuous"
	ParameterTypeCategorical ParameterType = "Categorical"
	ParameterTypeFreeText    ParameterType = "FreeText"
)

// Values returns all known values for ParameterType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (ParameterType) Values() []ParameterType {
	return []ParameterType{
		"Integer",
		"Continuous",
		"Categorical",
		"FreeText",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e ParameterType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type HyperParameterScalingType string

// Enum values for HyperParameterScalingType
const (
	HyperParameterScalingTypeAuto               HyperParameterScalingType = "Auto"
	HyperParameterScalingTypeLinear             HyperParameterScalingType = "Linear"
	HyperParameterScalingTypeLogarithmic        HyperParameterScalingType = "Logarithmic"
	HyperParameterScalingTypeReverseLogarithmic HyperParameterScalingType = "ReverseLogarithmic"
)

// Values returns all known values for HyperParameterScalingType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (HyperParameterScalingType) Values() []HyperParameterScalingType {
	return []HyperParameterScalingType{
		"Auto",
		"Linear",
		"Logarithmic",
		"ReverseLogarithmic",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e HyperParameterScalingType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type NotebookOutputOption string

// Enum values for NotebookOutputOption
const (
	NotebookOutputOptionAllowed  NotebookOutputOption = "Allowed"
	NotebookOutputOptionDisabled NotebookOutputOption = "Disabled"
)

// Values returns all known values for NotebookOutputOption. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (NotebookOutputOption) Values() []NotebookOutputOption {
	return []NotebookOutputOption{
		"Allowed",
		"Disabled",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e NotebookOutputOption) IsKnown() bool { return slices.Contains(e.Values(), e) }

type AuthMode string

// Enum values for AuthMode
const (
	AuthModeSso AuthMode = "SSO"
	AuthModeIam AuthMode = "IAM"
)

// Values returns all known values for AuthMode. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AuthMode) Values() []AuthMode {
	return []AuthMode{
		"SSO",
		"IAM",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AuthMode) IsKnown() bool { return slices.Contains(e.Values(), e) }

type DomainStatus string

// Enum values for DomainStatus
const (
	DomainStatusDeleting  DomainStatus = "Deleting"
	DomainStatusFailed    DomainStatus = "Failed"
	DomainStatusInService DomainStatus = "InService"
	DomainStatusPending   DomainStatus = "Pending"
)

// Values returns all known values for DomainStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (DomainStatus) Values() []DomainStatus {
	return []DomainStatus{
		"Deleting",
		"Failed",
		"InService",
		"Pending",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e DomainStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type RetentionType string

// Enum values for RetentionType
const (
	RetentionTypeRetain RetentionType = "Retain"
	RetentionTypeDelete RetentionType = "Delete"
)

// Values returns all known values for RetentionType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (RetentionType) Values() []RetentionType {
	return []RetentionType{
		"Retain",
		"Delete",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e RetentionType) IsKnown() bool { return slices.Contains(e.Values(), e) }

// ResourceType names the kind of resource a search runs against.
type ResourceType string

// Enum values for ResourceType
const (
	ResourceTypeTrainingJob              ResourceType = "TrainingJob"
	ResourceTypeExperiment               ResourceType = "Experiment"
	ResourceTypeExperimentTrial          ResourceType = "ExperimentTrial"
	ResourceTypeExperimentTrialComponent ResourceType = "ExperimentTrialComponent"
)

// Values returns all known values for ResourceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (ResourceType) Values() []ResourceType {
	return []ResourceType{
		"TrainingJob",
		"Experiment",
		"ExperimentTrial",
		"ExperimentTrialComponent",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e ResourceType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type SearchSortOrder string

// Enum values for SearchSortOrder
const (
	SearchSortOrderAscending  SearchSortOrder = "Ascending"
	SearchSortOrderDescending SearchSortOrder = "Descending"
)

// Values returns all known values for SearchSortOrder. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (SearchSortOrder) Values() []SearchSortOrder {
	return []SearchSortOrder{
		"Ascending",
		"Descending",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e SearchSortOrder) IsKnown() bool { return slices.Contains(e.Values(), e) }

type Operator string

// Enum values for Operator
const (
	OperatorEquals               Operator = "Equals"
	OperatorNotEquals            Operator = "NotEquals"
	OperatorGreaterThan          Operator = "GreaterThan"
	OperatorGreaterThanOrEqualTo Operator = "GreaterThanOrEqualTo"
	OperatorLessThan             Operator = "LessThan"
	OperatorLessThanOrEqualTo    Operator = "LessThanOrEqualTo"
	OperatorContains             Operator = "Contains"
	OperatorExists               Operator = "Exists"
	OperatorNotExists            Operator = "NotExists"
	OperatorIn                   Operator = "In"
)

// Values returns all known values for Operator. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (Operator) Values() []Operator {
	return []Operator{
		"Equals",
		"NotEquals",
		"GreaterThan",
		"GreaterThanOrEqualTo",
		"LessThan",
		"LessThanOrEqualTo",
		"Contains",
		"Exists",
		"NotExists",
		"In",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e Operator) IsKnown() bool { return slices.Contains(e.Values(), e) }

type BooleanOperator string

// Enum values for BooleanOperator
const (
	BooleanOperatorAnd BooleanOperator = "And"
	BooleanOperatorOr  BooleanOperator = "Or"
)

// Values returns all known values for BooleanOperator. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (BooleanOperator) Values() []BooleanOperator {
	return []BooleanOperator{
		"And",
		"Or",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e BooleanOperator) IsKnown() bool { return slices.Contains(e.Values(), e) }

type AlgorithmSortBy string

// Enum values for AlgorithmSortBy
const (
	AlgorithmSortByName         AlgorithmSortBy = "Name"
	AlgorithmSortByCreationTime AlgorithmSortBy = "CreationTime"
)

// Values returns all known values for AlgorithmSortBy. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AlgorithmSortBy) Values() []AlgorithmSortBy {
	return []AlgorithmSortBy{
		"Name",
		"CreationTime",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AlgorithmSortBy) IsKnown() bool { return slices.Contains(e.Values(), e) }

type AlgorithmStatus string

// Enum values for AlgorithmStatus
const (
	AlgorithmStatusPending    AlgorithmStatus = "Pending"
	AlgorithmStatusInProgress AlgorithmStatus = "InProgress"
	AlgorithmStatusCompleted  AlgorithmStatus = "Completed"
	AlgorithmStatusFailed     AlgorithmStatus = "Failed"
	AlgorithmStatusDeleting   AlgorithmStatus = "Deleting"
)

// Values returns all known values for AlgorithmStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (AlgorithmStatus) Values() []AlgorithmStatus {
	return []AlgorithmStatus{
		"Pending",
		"InProgress",
		"Completed",
		"Failed",
		"Deleting",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e AlgorithmStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type NotebookInstanceStatus string

// Enum values for NotebookInstanceStatus
const (
	NotebookInstanceStatusPending   NotebookInstanceStatus = "Pending"
	NotebookInstanceStatusInService NotebookInstanceStatus = "InService"
	NotebookInstanceStatusStopping  NotebookInstanceStatus = "Stopping"
	NotebookInstanceStatusStopped   NotebookInstanceStatus = "Stopped"
	NotebookInstanceStatusFailed    NotebookInstanceStatus = "Failed"
	NotebookInstanceStatusDeleting  NotebookInstanceStatus = "Deleting"
	NotebookInstanceStatusUpdating  NotebookInstanceStatus = "Updating"
)

// Values returns all known values for NotebookInstanceStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (NotebookInstanceStatus) Values() []NotebookInstanceStatus {
	return []NotebookInstanceStatus{
		"Pending",
		"InService",
		"Stopping",
		"Stopped",
		"Failed",
		"Deleting",
		"Updating",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e NotebookInstanceStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type DirectInternetAccess string

// Enum values for DirectInternetAccess
const (
	DirectInternetAccessEnabled  DirectInternetAccess = "Enabled"
	DirectInternetAccessDisabled DirectInternetAccess = "Disabled"
)

// Values returns all known values for DirectInternetAccess. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (DirectInternetAccess) Values() []DirectInternetAccess {
	return []DirectInternetAccess{
		"Enabled",
		"Disabled",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e DirectInternetAccess) IsKnown() bool { return slices.Contains(e.Values(), e) }

type RootAccess string

// Enum values for RootAccess
const (
	RootAccessEnabled  RootAccess = "Enabled"
	RootAccessDisabled RootAccess = "Disabled"
)

// Values returns all known values for RootAccess. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (RootAccess) Values() []RootAccess {
	return []RootAccess{
		"Enabled",
		"Disabled",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e RootAccess) IsKnown() bool { return slices.Contains(e.Values(), e) }

// InstanceType is the ML compute instance type of a notebook instance.
type InstanceType string

// Enum values for InstanceType
const (
	InstanceTypeMlT2Medium    InstanceType = "ml.t2.medium"
	InstanceTypeMlT2Large     InstanceType = "ml.t2.large"
	InstanceTypeMlT2Xlarge    InstanceType = "ml.t2.xlarge"
	InstanceTypeMlT22xlarge   InstanceType = "ml.t2.2xlarge"
	InstanceTypeMlT3Medium    InstanceType = "ml.t3.medium"
	InstanceTypeMlT3Large     InstanceType = "ml.t3.large"
	InstanceTypeMlT3Xlarge    InstanceType = "ml.t3.xlarge"
	InstanceTypeMlT32xlarge   InstanceType = "ml.t3.2xlarge"
	InstanceTypeMlM4Xlarge    InstanceType = "ml.m4.xlarge"
	InstanceTypeMlM42xlarge   InstanceType = "ml.m4.2xlarge"
	InstanceTypeMlM44xlarge   InstanceType = "ml.m4.4xlarge"
	InstanceTypeMlM410xlarge  InstanceType = "ml.m4.10xlarge"
	InstanceTypeMlM416xlarge  InstanceType = "ml.m4.16xlarge"
	InstanceTypeMlM5Xlarge    InstanceType = "ml.m5.xlarge"
	InstanceTypeMlM52xlarge   InstanceType = "ml.m5.2xlarge"
	InstanceTypeMlM54xlarge   InstanceType = "ml.m5.4xlarge"
	InstanceTypeMlM512xlarge  InstanceType = "ml.m5.12xlarge"
	InstanceTypeMlM524xlarge  InstanceType = "ml.m5.24xlarge"
	InstanceTypeMlC4Xlarge    InstanceType = "ml.c4.xlarge"
	InstanceTypeMlC42xlarge   InstanceType = "ml.c4.2xlarge"
	InstanceTypeMlC44xlarge   InstanceType = "ml.c4.4xlarge"
	InstanceTypeMlC48xlarge   InstanceType = "ml.c4.8xlarge"
	InstanceTypeMlC5Xlarge    InstanceType = "ml.c5.xlarge"
	InstanceTypeMlC52xlarge   InstanceType = "ml.c5.2xlarge"
	InstanceTypeMlC54xlarge   InstanceType = "ml.c5.4xlarge"
	InstanceTypeMlC59xlarge   InstanceType = "ml.c5.9xlarge"
	InstanceTypeMlC518xlarge  InstanceType = "ml.c5.18xlarge"
	InstanceTypeMlC5dXlarge   InstanceType = "ml.c5d.xlarge"
	InstanceTypeMlC5d2xlarge  InstanceType = "ml.c5d.2xlarge"
	InstanceTypeMlC5d4xlarge  InstanceType = "ml.c5d.4xlarge"
	InstanceTypeMlC5d9xlarge  InstanceType = "ml.c5d.9xlarge"
	InstanceTypeMlC5d18xlarge InstanceType = "ml.c5d.18xlarge"
	InstanceTypeMlP2Xlarge    InstanceType = "ml.p2.xlarge"
	InstanceTypeMlP28xlarge   InstanceType = "ml.p2.8xlarge"
	InstanceTypeMlP216xlarge  InstanceType = "ml.p2.16xlarge"
	InstanceTypeMlP32xlarge   InstanceType = "ml.p3.2xlarge"
	InstanceTypeMlP38xlarge   InstanceType = "ml.p3.8xlarge"
	InstanceTypeMlP316xlarge  InstanceType = "ml.p3.16xlarge"
)

// Values returns all known values for InstanceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (InstanceType) Values() []InstanceType {
	return []InstanceType{
		"ml.t2.medium",
		"ml.t2.large",
		"ml.t2.xlarge",
		"ml.t2.2xlarge",
		"ml.t3.medium",
		"ml.t3.large",
		"ml.t3.xlarge",
		"ml.t3.2xlarge",
		"ml.m4.xlarge",
		"ml.m4.2xlarge",
		"ml.m4.4xlarge",
		"ml.m4.10xlarge",
		"ml.m4.16xlarge",
		"ml.m5.xlarge",
		"ml.m5.2xlarge",
		"ml.m5.4xlarge",
		"ml.m5.12xlarge",
		"ml.m5.24xlarge",
		"ml.c4.xlarge",
		"ml.c4.2xlarge",
		"ml.c4.4xlarge",
		"ml.c4.8xlarge",
		"ml.c5.xlarge",
		"ml.c5.2xlarge",
		"ml.c5.4xlarge",
		"ml.c5.9xlarge",
		"ml.c5.18xlarge",
		"ml.c5d.xlarge",
		"ml.c5d.2xlarge",
		"ml.c5d.4xlarge",
		"ml.c5d.9xlarge",
		"ml.c5d.18xlarge",
		"ml.p2.xlarge",
		"ml.p2.8xlarge",
		"ml.p2.16xlarge",
		"ml.p3.2xlarge",
		"ml.p3.8xlarge",
		"ml.p3.16xlarge",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e InstanceType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type NotebookInstanceSortKey string

// Enum values for NotebookInstanceSortKey
const (
	NotebookInstanceSortKeyName         NotebookInstanceSortKey = "Name"
	NotebookInstanceSortKeyCreationTime NotebookInstanceSortKey = "CreationTime"
	NotebookInstanceSortKeyStatus       NotebookInstanceSortKey = "Status"
)

// Values returns all known values for NotebookInstanceSortKey. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (NotebookInstanceSortKey) Values() []NotebookInstanceSortKey {
	return []NotebookInstanceSortKey{
		"Name",
		"CreationTime",
		"Status",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e NotebookInstanceSortKey) IsKnown() bool { return slices.Contains(e.Values(), e) }

type NotebookInstanceSortOrder string

// Enum values for NotebookInstanceSortOrder
const (
	NotebookInstanceSortOrderAscending  NotebookInstanceSortOrder = "Ascending"
	NotebookInstanceSortOrderDescending NotebookInstanceSortOrder = "Descending"
)

// Values returns all known values for NotebookInstanceSortOrder. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (NotebookInstanceSortOrder) Values() []NotebookInstanceSortOrder {
	return []NotebookInstanceSortOrder{
		"Ascending",
		"Descending",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e NotebookInstanceSortOrder) IsKnown() bool { return slices.Contains(e.Values(), e) }

type HyperParameterTuningJobStatus string

// Enum values for HyperParameterTuningJobStatus
const (
	HyperParameterTuningJobStatusCompleted  HyperParameterTuningJobStatus = "Completed"
	HyperParameterTuningJobStatusInProgress HyperParameterTuningJobStatus = "InProgress"
	HyperParameterTuningJobStatusFailed     HyperParameterTuningJobStatus = "Failed"
	HyperParameterTuningJobStatusStopped    HyperParameterTuningJobStatus = "Stopped"
	HyperParameterTuningJobStatusStopping   HyperParameterTuningJobStatus = "Stopping"
)

// Values returns all known values for HyperParameterTuningJobStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (HyperParameterTuningJobStatus) Values() []HyperParameterTuningJobStatus {
	return []HyperParameterTuningJobStatus{
		"Completed",
		"InProgress",
		"Failed",
		"Stopped",
		"Stopping",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e HyperParameterTuningJobStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type HyperParameterTuningJobStrategyType string

// Enum values for HyperParameterTuningJobStrategyType
const (
	HyperParameterTuningJobStrategyTypeBayesian HyperParameterTuningJobStrategyType = "Bayesian"
	HyperParameterTuningJobStrategyTypeRandom   HyperParameterTuningJobStrategyType = "Random"
)

// Values returns all known values for HyperParameterTuningJobStrategyType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (HyperParameterTuningJobStrategyType) Values() []HyperParameterTuningJobStrategyType {
	return []HyperParameterTuningJobStrategyType{
		"Bayesian",
		"Random",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e HyperParameterTuningJobStrategyType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type HyperParameterTuningJobObjectiveType string

// Enum values for HyperParameterTuningJobObjectiveType
const (
	HyperParameterTuningJobObjectiveTypeMaximize HyperParameterTuningJobObjectiveType = "Maximize"
	HyperParameterTuningJobObjectiveTypeMinimize HyperParameterTuningJobObjectiveType = "Minimize"
)

// Values returns all known values for HyperParameterTuningJobObjectiveType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (HyperParameterTuningJobObjectiveType) Values() []HyperParameterTuningJobObjectiveType {
	return []HyperParameterTuningJobObjectiveType{
		"Maximize",
		"Minimize",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e HyperParameterTuningJobObjectiveType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TrainingJobEarlyStoppingType string

// Enum values for TrainingJobEarlyStoppingType
const (
	TrainingJobEarlyStoppingTypeOff  TrainingJobEarlyStoppingType = "Off"
	TrainingJobEarlyStoppingTypeAuto TrainingJobEarlyStoppingType = "Auto"
)

// Values returns all known values for TrainingJobEarlyStoppingType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TrainingJobEarlyStoppingType) Values() []TrainingJobEarlyStoppingType {
	return []TrainingJobEarlyStoppingType{
		"Off",
		"Auto",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TrainingJobEarlyStoppingType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type EndpointStatus string

// Enum values for EndpointStatus
const (
	EndpointStatusOutOfService   EndpointStatus = "OutOfService"
	EndpointStatusCreating       EndpointStatus = "Creating"
	EndpointStatusUpdating       EndpointStatus = "Updating"
	EndpointStatusSystemUpdating EndpointStatus = "SystemUpdating"
	EndpointStatusRollingBack    EndpointStatus = "RollingBack"
	EndpointStatusInService      EndpointStatus = "InService"
	EndpointStatusDeleting       EndpointStatus = "Deleting"
	EndpointStatusFailed         EndpointStatus = "Failed"
)

// Values returns all known values for EndpointStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (EndpointStatus) Values() []EndpointStatus {
	return []EndpointStatus{
		"OutOfService",
		"Creating",
		"Updating",
		"SystemUpdating",
		"RollingBack",
		"InService",
		"Deleting",
		"Failed",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e EndpointStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type ProductionVariantInstanceType string

// Enum values for ProductionVariantInstanceType
const (
	ProductionVariantInstanceTypeMlT2Medium     ProductionVariantInstanceType = "ml.t2.medium"
	ProductionVariantInstanceTypeMlT2Large      ProductionVariantInstanceType = "ml.t2.large"
	ProductionVariantInstanceTypeMlT2Xlarge     ProductionVariantInstanceType = "ml.t2.xlarge"
	ProductionVariantInstanceTypeMlT22xlarge    ProductionVariantInstanceType = "ml.t2.2xlarge"
	ProductionVariantInstanceTypeMlM4Xlarge     ProductionVariantInstanceType = "ml.m4.xlarge"
	ProductionVariantInstanceTypeMlM42xlarge    ProductionVariantInstanceType = "ml.m4.2xlarge"
	ProductionVariantInstanceTypeMlM44xlarge    ProductionVariantInstanceType = "ml.m4.4xlarge"
	ProductionVariantInstanceTypeMlM410xlarge   ProductionVariantInstanceType = "ml.m4.10xlarge"
	ProductionVariantInstanceTypeMlM416xlarge   ProductionVariantInstanceType = "ml.m4.16xlarge"
	ProductionVariantInstanceTypeMlM5Large      ProductionVariantInstanceType = "ml.m5.large"
	ProductionVariantInstanceTypeMlM5Xlarge     ProductionVariantInstanceType = "ml.m5.xlarge"
	ProductionVariantInstanceTypeMlM52xlarge    ProductionVariantInstanceType = "ml.m5.2xlarge"
	ProductionVariantInstanceTypeMlM54xlarge    ProductionVariantInstanceType = "ml.m5.4xlarge"
	ProductionVariantInstanceTypeMlM512xlarge   ProductionVariantInstanceType = "ml.m5.12xlarge"
	ProductionVariantInstanceTypeMlM524xlarge   ProductionVariantInstanceType = "ml.m5.24xlarge"
	ProductionVariantInstanceTypeMlC4Large      ProductionVariantInstanceType = "ml.c4.large"
	ProductionVariantInstanceTypeMlC4Xlarge     ProductionVariantInstanceType = "ml.c4.xlarge"
	ProductionVariantInstanceTypeMlC42xlarge    ProductionVariantInstanceType = "ml.c4.2xlarge"
	ProductionVariantInstanceTypeMlC44xlarge    ProductionVariantInstanceType = "ml.c4.4xlarge"
	ProductionVariantInstanceTypeMlC48xlarge    ProductionVariantInstanceType = "ml.c4.8xlarge"
	ProductionVariantInstanceTypeMlP2Xlarge     ProductionVariantInstanceType = "ml.p2.xlarge"
	ProductionVariantInstanceTypeMlP28xlarge    ProductionVariantInstanceType = "ml.p2.8xlarge"
	ProductionVariantInstanceTypeMlP216xlarge   ProductionVariantInstanceType = "ml.p2.16xlarge"
	ProductionVariantInstanceTypeMlP32xlarge    ProductionVariantInstanceType = "ml.p3.2xlarge"
	ProductionVariantInstanceTypeMlP38xlarge    ProductionVariantInstanceType = "ml.p3.8xlarge"
	ProductionVariantInstanceTypeMlP316xlarge   ProductionVariantInstanceType = "ml.p3.16xlarge"
	ProductionVariantInstanceTypeMlC5Large      ProductionVariantInstanceType = "ml.c5.large"
	ProductionVariantInstanceTypeMlC5Xlarge     ProductionVariantInstanceType = "ml.c5.xlarge"
	ProductionVariantInstanceTypeMlC52xlarge    ProductionVariantInstanceType = "ml.c5.2xlarge"
	ProductionVariantInstanceTypeMlC54xlarge    ProductionVariantInstanceType = "ml.c5.4xlarge"
	ProductionVariantInstanceTypeMlC59xlarge    ProductionVariantInstanceType = "ml.c5.9xlarge"
	ProductionVariantInstanceTypeMlC518xlarge   ProductionVariantInstanceType = "ml.c5.18xlarge"
	ProductionVariantInstanceTypeMlG4dnXlarge   ProductionVariantInstanceType = "ml.g4dn.xlarge"
	ProductionVariantInstanceTypeMlG4dn2xlarge  ProductionVariantInstanceType = "ml.g4dn.2xlarge"
	ProductionVariantInstanceTypeMlG4dn4xlarge  ProductionVariantInstanceType = "ml.g4dn.4xlarge"
	ProductionVariantInstanceTypeMlG4dn8xlarge  ProductionVariantInstanceType = "ml.g4dn.8xlarge"
	ProductionVariantInstanceTypeMlG4dn12xlarge ProductionVariantInstanceType = "ml.g4dn.12xlarge"
	ProductionVariantInstanceTypeMlG4dn16xlarge ProductionVariantInstanceType = "ml.g4dn.16xlarge"
	ProductionVariantInstanceTypeMlInf1Xlarge   ProductionVariantInstanceType = "ml.inf1.xlarge"
	ProductionVariantInstanceTypeMlInf12xlarge  ProductionVariantInstanceType = "ml.inf1.2xlarge"
	ProductionVariantInstanceTypeMlInf16xlarge  ProductionVariantInstanceType = "ml.inf1.6xlarge"
	ProductionVariantInstanceTypeMlInf124xlarge ProductionVariantInstanceType = "ml.inf1.24xlarge"
)

// Values returns all known values for ProductionVariantInstanceType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (ProductionVariantInstanceType) Values() []ProductionVariantInstanceType {
	return []ProductionVariantInstanceType{
		"ml.t2.medium",
		"ml.t2.large",
		"ml.t2.xlarge",
		"ml.t2.2xlarge",
		"ml.m4.xlarge",
		"ml.m4.2xlarge",
		"ml.m4.4xlarge",
		"ml.m4.10xlarge",
		"ml.m4.16xlarge",
		"ml.m5.large",
		"ml.m5.xlarge",
		"ml.m5.2xlarge",
		"ml.m5.4xlarge",
		"ml.m5.12xlarge",
		"ml.m5.24xlarge",
		"ml.c4.large",
		"ml.c4.xlarge",
		"ml.c4.2xlarge",
		"ml.c4.4xlarge",
		"ml.c4.8xlarge",
		"ml.p2.xlarge",
		"ml.p2.8xlarge",
		"ml.p2.16xlarge",
		"ml.p3.2xlarge",
		"ml.p3.8xlarge",
		"ml.p3.16xlarge",
		"ml.c5.large",
		"ml.c5.xlarge",
		"ml.c5.2xlarge",
		"ml.c5.4xlarge",
		"ml.c5.9xlarge",
		"ml.c5.18xlarge",
		"ml.g4dn.xlarge",
		"ml.g4dn.2xlarge",
		"ml.g4dn.4xlarge",
		"ml.g4dn.8xlarge",
		"ml.g4dn.12xlarge",
		"ml.g4dn.16xlarge",
		"ml.inf1.xlarge",
		"ml.inf1.2xlarge",
		"ml.inf1.6xlarge",
		"ml.inf1.24xlarge",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e ProductionVariantInstanceType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type S3DataType string

// Enum values for S3DataType
const (
	S3DataTypeManifestFile          S3DataType = "ManifestFile"
	S3DataTypeS3Prefix              S3DataType = "S3Prefix"
	S3DataTypeAugmentedManifestFile S3DataType = "AugmentedManifestFile"
)

// Values returns all known values for S3DataType. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (S3DataType) Values() []S3DataType {
	return []S3DataType{
		"ManifestFile",
		"S3Prefix",
		"AugmentedManifestFile",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e S3DataType) IsKnown() bool { return slices.Contains(e.Values(), e) }

type S3DataDistribution string

// Enum values for S3DataDistribution
const (
	S3DataDistributionFullyReplicated S3DataDistribution = "FullyReplicated"
	S3DataDistributionShardedByS3Key  S3DataDistribution = "ShardedByS3Key"
)

// Values returns all known values for S3DataDistribution. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (S3DataDistribution) Values() []S3DataDistribution {
	return []S3DataDistribution{
		"FullyReplicated",
		"ShardedByS3Key",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e S3DataDistribution) IsKnown() bool { return slices.Contains(e.Values(), e) }

type RecordWrapper string

// Enum values for RecordWrapper
const (
	RecordWrapperNone     RecordWrapper = "None"
	RecordWrapperRecordIO RecordWrapper = "RecordIO"
)

// Values returns all known values for RecordWrapper. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (RecordWrapper) Values() []RecordWrapper {
	return []RecordWrapper{
		"None",
		"RecordIO",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e RecordWrapper) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TrainingJobStatus string

// Enum values for TrainingJobStatus
const (
	TrainingJobStatusInProgress TrainingJobStatus = "InProgress"
	TrainingJobStatusCompleted  TrainingJobStatus = "Completed"
	TrainingJobStatusFailed     TrainingJobStatus = "Failed"
	TrainingJobStatusStopping   TrainingJobStatus = "Stopping"
	TrainingJobStatusStopped    TrainingJobStatus = "Stopped"
)

// Values returns all known values for TrainingJobStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TrainingJobStatus) Values() []TrainingJobStatus {
	return []TrainingJobStatus{
		"InProgress",
		"Completed",
		"Failed",
		"Stopping",
		"Stopped",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TrainingJobStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }

type TrialComponentPrimaryStatus string

// Enum values for TrialComponentPrimaryStatus
const (
	TrialComponentPrimaryStatusInProgress TrialComponentPrimaryStatus = "InProgress"
	TrialComponentPrimaryStatusCompleted  TrialComponentPrimaryStatus = "Completed"
	TrialComponentPrimaryStatusFailed     TrialComponentPrimaryStatus = "Failed"
	TrialComponentPrimaryStatusStopping   TrialComponentPrimaryStatus = "Stopping"
	TrialComponentPrimaryStatusStopped    TrialComponentPrimaryStatus = "Stopped"
)

// Values returns all known values for TrialComponentPrimaryStatus. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func (TrialComponentPrimaryStatus) Values() []TrialComponentPrimaryStatus {
	return []TrialComponentPrimaryStatus{
		"InProgress",
		"Completed",
		"Failed",
		"Stopping",
		"Stopped",
	}
}

// IsKnown reports whether the value is one of the values listed by Values.
func (e TrialComponentPrimaryStatus) IsKnown() bool { return slices.Contains(e.Values(), e) }
