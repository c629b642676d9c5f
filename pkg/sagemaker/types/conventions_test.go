package types_test

import (
	"testing"

	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shapetest"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func TestAllShapesFollowConventions(t *testing.T) {
	shapes := []any{
		&types.ResourceSpec{},
		&types.SharingSettings{},
		&types.JupyterServerAppSettings{},
		&types.KernelGatewayAppSettings{},
		&types.TensorBoardAppSettings{},
		&types.UserSettings{},
		&types.AppDetails{},
		&types.DomainDetails{},
		&types.RetentionPolicy{},
		&types.Tag{},
		&types.VpcConfig{},
		&types.NetworkConfig{},
		&types.IntegerParameterRange{},
		&types.ContinuousParameterRange{},
		&types.CategoricalParameterRange{},
		&types.ParameterRanges{},
		&types.TrainingJobStatusCounters{},
		&types.ObjectiveStatusCounters{},
		&types.ResourceLimits{},
		&types.HyperParameterTuningJobObjective{},
		&types.HyperParameterTuningJobConfig{},
		&types.ChannelSpecification{},
		&types.MetricDefinition{},
		&types.IntegerParameterRangeSpecification{},
		&types.ContinuousParameterRangeSpecification{},
		&types.CategoricalParameterRangeSpecification{},
		&types.ParameterRange{},
		&types.HyperParameterSpecification{},
		&types.TrainingSpecification{},
		&types.ModelPackageContainerDefinition{},
		&types.InferenceSpecification{},
		&types.AlgorithmSummary{},
		&types.AlgorithmSpecification{},
		&types.S3DataSource{},
		&types.DataSource{},
		&types.ShuffleConfig{},
		&types.Channel{},
		&types.OutputDataConfig{},
		&types.ResourceConfig{},
		&types.StoppingCondition{},
		&types.CheckpointConfig{},
		&types.CollectionConfiguration{},
		&types.DebugHookConfig{},
		&types.TensorBoardOutputConfig{},
		&types.ExperimentConfig{},
		&types.TrainingJob{},
		&types.InputConfig{},
		&types.TargetPlatform{},
		&types.OutputConfig{},
		&types.CaptureOption{},
		&types.CaptureContentTypeHeader{},
		&types.DataCaptureConfig{},
		&types.DataCaptureConfigSummary{},
		&types.ProductionVariant{},
		&types.NotebookInstanceSummary{},
		&types.Filter{},
		&types.NestedFilters{},
		&types.SearchExpression{},
		&types.Experiment{},
		&types.Trial{},
		&types.TrialComponentStatus{},
		&types.TrialComponentParameterValue{},
		&types.TrialComponent{},
		&types.SearchRecord{},
		&types.PropertyNameQuery{},
		&types.SuggestionQuery{},
		&types.PropertyNameSuggestion{},
	}

	for _, s := range shapes {
		shapetest.Conventions(t, s)
	}
}
