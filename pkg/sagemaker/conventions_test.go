package sagemaker

import (
	"testing"

	"github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shapetest"
)

func TestAllEnvelopesFollowConventions(t *testing.T) {
	envelopes := []any{
		&CreateAppRequest{},
		&CreateAppResult{},
		&DescribeAppRequest{},
		&DescribeAppResult{},
		&DeleteAppRequest{},
		&DeleteAppResult{},
		&ListAppsRequest{},
		&ListAppsResult{},
		&CreateDomainRequest{},
		&CreateDomainResult{},
		&DescribeDomainRequest{},
		&DescribeDomainResult{},
		&UpdateDomainRequest{},
		&UpdateDomainResult{},
		&DeleteDomainRequest{},
		&DeleteDomainResult{},
		&ListDomainsRequest{},
		&ListDomainsResult{},
		&CreateAlgorithmRequest{},
		&CreateAlgorithmResult{},
		&DescribeAlgorithmRequest{},
		&DescribeAlgorithmResult{},
		&DeleteAlgorithmRequest{},
		&DeleteAlgorithmResult{},
		&ListAlgorithmsRequest{},
		&ListAlgorithmsResult{},
		&DescribeNotebookInstanceRequest{},
		&DescribeNotebookInstanceResult{},
		&ListNotebookInstancesRequest{},
		&ListNotebookInstancesResult{},
		&StartNotebookInstanceRequest{},
		&StartNotebookInstanceResult{},
		&StopNotebookInstanceRequest{},
		&StopNotebookInstanceResult{},
		&CreateTrainingJobRequest{},
		&CreateTrainingJobResult{},
		&DescribeHyperParameterTuningJobRequest{},
		&DescribeHyperParameterTuningJobResult{},
		&CreateCompilationJobRequest{},
		&CreateCompilationJobResult{},
		&CreateEndpointConfigRequest{},
		&CreateEndpointConfigResult{},
		&DescribeEndpointRequest{},
		&DescribeEndpointResult{},
		&SearchRequest{},
		&SearchResult{},
		&GetSearchSuggestionsRequest{},
		&GetSearchSuggestionsResult{},
		&AddTagsRequest{},
		&AddTagsResult{},
		&ListTagsRequest{},
		&ListTagsResult{},
		&DeleteTagsRequest{},
		&DeleteTagsResult{},
	}

	for _, e := range envelopes {
		shapetest.Conventions(t, e)
	}
}
