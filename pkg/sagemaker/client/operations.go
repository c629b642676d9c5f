package client

import (
	"context"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
)

//go:generate moq -rm -out ../../test/sagemakerclient_mock.go . SageMakerClient

// SageMakerClient issues SageMaker control plane calls. Every method sends
// one request and returns the decoded result or an error.
type SageMakerClient interface {
	// Apps
	CreateApp(ctx context.Context, in *sagemaker.CreateAppRequest) (*sagemaker.CreateAppResult, error)
	DescribeApp(ctx context.Context, in *sagemaker.DescribeAppRequest) (*sagemaker.DescribeAppResult, error)
	DeleteApp(ctx context.Context, in *sagemaker.DeleteAppRequest) (*sagemaker.DeleteAppResult, error)
	ListApps(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error)

	// Domains
	CreateDomain(ctx context.Context, in *sagemaker.CreateDomainRequest) (*sagemaker.CreateDomainResult, error)
	DescribeDomain(ctx context.Context, in *sagemaker.DescribeDomainRequest) (*sagemaker.DescribeDomainResult, error)
	UpdateDomain(ctx context.Context, in *sagemaker.UpdateDomainRequest) (*sagemaker.UpdateDomainResult, error)
	DeleteDomain(ctx context.Context, in *sagemaker.DeleteDomainRequest) (*sagemaker.DeleteDomainResult, error)
	ListDomains(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error)

	// Algorithms
	CreateAlgorithm(ctx context.Context, in *sagemaker.CreateAlgorithmRequest) (*sagemaker.CreateAlgorithmResult, error)
	DescribeAlgorithm(ctx context.Context, in *sagemaker.DescribeAlgorithmRequest) (*sagemaker.DescribeAlgorithmResult, error)
	DeleteAlgorithm(ctx context.Context, in *sagemaker.DeleteAlgorithmRequest) (*sagemaker.DeleteAlgorithmResult, error)
	ListAlgorithms(ctx context.Context, in *sagemaker.ListAlgorithmsRequest) (*sagemaker.ListAlgorithmsResult, error)

	// Notebook instances
	DescribeNotebookInstance(ctx context.Context, in *sagemaker.DescribeNotebookInstanceRequest) (*sagemaker.DescribeNotebookInstanceResult, error)
	ListNotebookInstances(ctx context.Context, in *sagemaker.ListNotebookInstancesRequest) (*sagemaker.ListNotebookInstancesResult, error)
	StartNotebookInstance(ctx context.Context, in *sagemaker.StartNotebookInstanceRequest) (*sagemaker.StartNotebookInstanceResult, error)
	StopNotebookInstance(ctx context.Context, in *sagemaker.StopNotebookInstanceRequest) (*sagemaker.StopNotebookInstanceResult, error)

	// Training and tuning
	CreateTrainingJob(ctx context.Context, in *sagemaker.CreateTrainingJobRequest) (*sagemaker.CreateTrainingJobResult, error)
	DescribeHyperParameterTuningJob(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobRequest) (*sagemaker.DescribeHyperParameterTuningJobResult, error)

	// Compilation
	CreateCompilationJob(ctx context.Context, in *sagemaker.CreateCompilationJobRequest) (*sagemaker.CreateCompilationJobResult, error)

	// Endpoints
	CreateEndpointConfig(ctx context.Context, in *sagemaker.CreateEndpointConfigRequest) (*sagemaker.CreateEndpointConfigResult, error)
	DescribeEndpoint(ctx context.Context, in *sagemaker.DescribeEndpointRequest) (*sagemaker.DescribeEndpointResult, error)

	// Search
	Search(ctx context.Context, in *sagemaker.SearchRequest) (*sagemaker.SearchResult, error)
	GetSearchSuggestions(ctx context.Context, in *sagemaker.GetSearchSuggestionsRequest) (*sagemaker.GetSearchSuggestionsResult, error)

	// Tags
	AddTags(ctx context.Context, in *sagemaker.AddTagsRequest) (*sagemaker.AddTagsResult, error)
	ListTags(ctx context.Context, in *sagemaker.ListTagsRequest) (*sagemaker.ListTagsResult, error)
	DeleteTags(ctx context.Context, in *sagemaker.DeleteTagsRequest) (*sagemaker.DeleteTagsResult, error)
}

func (c *smClient) CreateApp(ctx context.Context, in *sagemaker.CreateAppRequest) (*sagemaker.CreateAppResult, error) {
	return invoke[sagemaker.CreateAppRequest, sagemaker.CreateAppResult](ctx, c, "CreateApp", in)
}

func (c *smClient) DescribeApp(ctx context.Context, in *sagemaker.DescribeAppRequest) (*sagemaker.DescribeAppResult, error) {
	return invoke[sagemaker.DescribeAppRequest, sagemaker.DescribeAppResult](ctx, c, "DescribeApp", in)
}

func (c *smClient) DeleteApp(ctx context.Context, in *sagemaker.DeleteAppRequest) (*sagemaker.DeleteAppResult, error) {
	return invoke[sagemaker.DeleteAppRequest, sagemaker.DeleteAppResult](ctx, c, "DeleteApp", in)
}

func (c *smClient) ListApps(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error) {
	return invoke[sagemaker.ListAppsRequest, sagemaker.ListAppsResult](ctx, c, "ListApps", in)
}

func (c *smClient) CreateDomain(ctx context.Context, in *sagemaker.CreateDomainRequest) (*sagemaker.CreateDomainResult, error) {
	return invoke[sagemaker.CreateDomainRequest, sagemaker.CreateDomainResult](ctx, c, "CreateDomain", in)
}

func (c *smClient) DescribeDomain(ctx context.Context, in *sagemaker.DescribeDomainRequest) (*sagemaker.DescribeDomainResult, error) {
	return invoke[sagemaker.DescribeDomainRequest, sagemaker.DescribeDomainResult](ctx, c, "DescribeDomain", in)
}

func (c *smClient) UpdateDomain(ctx context.Context, in *sagemaker.UpdateDomainRequest) (*sagemaker.UpdateDomainResult, error) {
	return invoke[sagemaker.UpdateDomainRequest, sagemaker.UpdateDomainResult](ctx, c, "UpdateDomain", in)
}

func (c *smClient) DeleteDomain(ctx context.Context, in *sagemaker.DeleteDomainRequest) (*sagemaker.DeleteDomainResult, error) {
	return invoke[sagemaker.DeleteDomainRequest, sagemaker.DeleteDomainResult](ctx, c, "DeleteDomain", in)
}

func (c *smClient) ListDomains(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error) {
	return invoke[sagemaker.ListDomainsRequest, sagemaker.ListDomainsResult](ctx, c, "ListDomains", in)
}

func (c *smClient) CreateAlgorithm(ctx context.Context, in *sagemaker.CreateAlgorithmRequest) (*sagemaker.CreateAlgorithmResult, error) {
	return invoke[sagemaker.CreateAlgorithmRequest, sagemaker.CreateAlgorithmResult](ctx, c, "CreateAlgorithm", in)
}

func (c *smClient) DescribeAlgorithm(ctx context.Context, in *sagemaker.DescribeAlgorithmRequest) (*sagemaker.DescribeAlgorithmResult, error) {
	return invoke[sagemaker.DescribeAlgorithmRequest, sagemaker.DescribeAlgorithmResult](ctx, c, "DescribeAlgorithm", in)
}

func (c *smClient) DeleteAlgorithm(ctx context.Context, in *sagemaker.DeleteAlgorithmRequest) (*sagemaker.DeleteAlgorithmResult, error) {
	return invoke[sagemaker.DeleteAlgorithmRequest, sagemaker.DeleteAlgorithmResult](ctx, c, "DeleteAlgorithm", in)
}

func (c *smClient) ListAlgorithms(ctx context.Context, in *sagemaker.ListAlgorithmsRequest) (*sagemaker.ListAlgorithmsResult, error) {
	return invoke[sagemaker.ListAlgorithmsRequest, sagemaker.ListAlgorithmsResult](ctx, c, "ListAlgorithms", in)
}

func (c *smClient) DescribeNotebookInstance(ctx context.Context, in *sagemaker.DescribeNotebookInstanceRequest) (*sagemaker.DescribeNotebookInstanceResult, error) {
	return invoke[sagemaker.DescribeNotebookInstanceRequest, sagemaker.DescribeNotebookInstanceResult](ctx, c, "DescribeNotebookInstance", in)
}

func (c *smClient) ListNotebookInstances(ctx context.Context, in *sagemaker.ListNotebookInstancesRequest) (*sagemaker.ListNotebookInstancesResult, error) {
	return invoke[sagemaker.ListNotebookInstancesRequest, sagemaker.ListNotebookInstancesResult](ctx, c, "ListNotebookInstances", in)
}

func (c *smClient) StartNotebookInstance(ctx context.Context, in *sagemaker.StartNotebookInstanceRequest) (*sagemaker.StartNotebookInstanceResult, error) {
	return invoke[sagemaker.StartNotebookInstanceRequest, sagemaker.StartNotebookInstanceResult](ctx, c, "StartNotebookInstance", in)
}

func (c *smClient) StopNotebookInstance(ctx context.Context, in *sagemaker.StopNotebookInstanceRequest) (*sagemaker.StopNotebookInstanceResult, error) {
	return invoke[sagemaker.StopNotebookInstanceRequest, sagemaker.StopNotebookInstanceResult](ctx, c, "StopNotebookInstance", in)
}

func (c *smClient) CreateTrainingJob(ctx context.Context, in *sagemaker.CreateTrainingJobRequest) (*sagemaker.CreateTrainingJobResult, error) {
	return invoke[sagemaker.CreateTrainingJobRequest, sagemaker.CreateTrainingJobResult](ctx, c, "CreateTrainingJob", in)
}

func (c *smClient) DescribeHyperParameterTuningJob(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobRequest) (*sagemaker.DescribeHyperParameterTuningJobResult, error) {
	return invoke[sagemaker.DescribeHyperParameterTuningJobRequest, sagemaker.DescribeHyperParameterTuningJobResult](ctx, c, "DescribeHyperParameterTuningJob", in)
}

func (c *smClient) CreateCompilationJob(ctx context.Context, in *sagemaker.CreateCompilationJobRequest) (*sagemaker.CreateCompilationJobResult, error) {
	return invoke[sagemaker.CreateCompilationJobRequest, sagemaker.CreateCompilationJobResult](ctx, c, "CreateCompilationJob", in)
}

func (c *smClient) CreateEndpointConfig(ctx context.Context, in *sagemaker.CreateEndpointConfigRequest) (*sagemaker.CreateEndpointConfigResult, error) {
	return invoke[sagemaker.CreateEndpointConfigRequest, sagemaker.CreateEndpointConfigResult](ctx, c, "CreateEndpointConfig", in)
}

func (c *smClient) DescribeEndpoint(ctx context.Context, in *sagemaker.DescribeEndpointRequest) (*sagemaker.DescribeEndpointResult, error) {
	return invoke[sagemaker.DescribeEndpointRequest, sagemaker.DescribeEndpointResult](ctx, c, "DescribeEndpoint", in)
}

func (c *smClient) Search(ctx context.Context, in *sagemaker.SearchRequest) (*sagemaker.SearchResult, error) {
	return invoke[sagemaker.SearchRequest, sagemaker.SearchResult](ctx, c, "Search", in)
}

func (c *smClient) GetSearchSuggestions(ctx context.Context, in *sagemaker.GetSearchSuggestionsRequest) (*sagemaker.GetSearchSuggestionsResult, error) {
	return invoke[sagemaker.GetSearchSuggestionsRequest, sagemaker.GetSearchSuggestionsResult](ctx, c, "GetSearchSuggestions", in)
}

func (c *smClient) AddTags(ctx context.Context, in *sagemaker.AddTagsRequest) (*sagemaker.AddTagsResult, error) {
	return invoke[sagemaker.AddTagsRequest, sagemaker.AddTagsResult](ctx, c, "AddTags", in)
}

func (c *smClient) ListTags(ctx context.Context, in *sagemaker.ListTagsRequest) (*sagemaker.ListTagsResult, error) {
	return invoke[sagemaker.ListTagsRequest, sagemaker.ListTagsResult](ctx, c, "ListTags", in)
}

func (c *smClient) DeleteTags(ctx context.Context, in *sagemaker.DeleteTagsRequest) (*sagemaker.DeleteTagsResult, error) {
	return invoke[sagemaker.DeleteTagsRequest, sagemaker.DeleteTagsResult](ctx, c, "DeleteTags", in)
}
