package emulator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/validation"
)

//go:generate moq -rm -out ../../test/controlplane_mock.go . ControlPlane

// ControlPlane is an in memory stand-in for the SageMaker control plane that
// manages domains, apps and resource tags
type ControlPlane interface {
	Start() error
	Stop() error

	CreateDomain(ctx context.Context, in *sagemaker.CreateDomainRequest) (*sagemaker.CreateDomainResult, error)
	DescribeDomain(ctx context.Context, in *sagemaker.DescribeDomainRequest) (*sagemaker.DescribeDomainResult, error)
	UpdateDomain(ctx context.Context, in *sagemaker.UpdateDomainRequest) (*sagemaker.UpdateDomainResult, error)
	DeleteDomain(ctx context.Context, in *sagemaker.DeleteDomainRequest) (*sagemaker.DeleteDomainResult, error)
	ListDomains(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error)

	CreateApp(ctx context.Context, in *sagemaker.CreateAppRequest) (*sagemaker.CreateAppResult, error)
	DescribeApp(ctx context.Context, in *sagemaker.DescribeAppRequest) (*sagemaker.DescribeAppResult, error)
	DeleteApp(ctx context.Context, in *sagemaker.DeleteAppRequest) (*sagemaker.DeleteAppResult, error)
	ListApps(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error)

	AddTags(ctx context.Context, in *sagemaker.AddTagsRequest) (*sagemaker.AddTagsResult, error)
	ListTags(ctx context.Context, in *sagemaker.ListTagsRequest) (*sagemaker.ListTagsResult, error)
	DeleteTags(ctx context.Context, in *sagemaker.DeleteTagsRequest) (*sagemaker.DeleteTagsResult, error)

	Search(ctx context.Context, in *sagemaker.SearchRequest) (*sagemaker.SearchResult, error)
}

type controlPlane struct {
	mu sync.Mutex

	region    string
	accountID string

	domains []*sagemaker.DescribeDomainResult
	apps    []*sagemaker.DescribeAppResult
	tags    map[string][]types.Tag

	lifecycle *lifecycle
	now       func() time.Time
}

func New(ctx context.Context, cfg Config) (ControlPlane, error) {
	cp := &controlPlane{
		region:    cfg.Region,
		accountID: cfg.AccountID,
		tags:      make(map[string][]types.Tag),
		lifecycle: newLifecycle(cfg.LifecycleDelay),
		now:       time.Now,
	}

	if cp.region == "" {
		cp.region = DefaultRegion
	}

	if cp.accountID == "" {
		cp.accountID = DefaultAccountID
	}

	logger := logging.GetFromContext(ctx)

	for _, d := range cfg.Domains {
		domain := cp.newDomain(&sagemaker.CreateDomainRequest{
			DomainName: &d.Name,
			AuthMode:   types.AuthMode(d.AuthMode),
			VpcId:      nonEmpty(d.VpcID),
			SubnetIds:  slices.Clone(d.SubnetIDs),
			DefaultUserSettings: &types.UserSettings{
				ExecutionRole: nonEmpty(d.ExecutionRole),
			},
		})
		domain.Status = types.DomainStatusInService

		cp.domains = append(cp.domains, domain)

		logger.Info("seeded domain", "name", d.Name, "id", *domain.DomainId)
	}

	return cp, nil
}

func (cp *controlPlane) Start() error {
	return cp.lifecycle.Start()
}

func (cp *controlPlane) Stop() error {
	return cp.lifecycle.Stop()
}

func (cp *controlPlane) Search(ctx context.Context, in *sagemaker.SearchRequest) (*sagemaker.SearchResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if in.Resource == "" {
		return nil, validationError("1 validation error detected: Value null at 'resource' failed to satisfy constraint: Member must not be null")
	}

	// training jobs, experiments and trials are never created by the emulator
	return &sagemaker.SearchResult{Results: []types.SearchRecord{}}, nil
}

func (cp *controlPlane) arn(resource string) string {
	return fmt.Sprintf("arn:aws:sagemaker:%s:%s:%s", cp.region, cp.accountID, resource)
}

func validate(in any) error {
	if err := validation.Validate(in); err != nil {
		return validationError(strings.TrimPrefix(err.Error(), smerrors.ErrInvalidRequest.Error()+": "))
	}
	return nil
}

func required(fields map[string]bool) error {
	missing := []string{}
	for name, present := range fields {
		if !present {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return validationError(fmt.Sprintf("%d validation error(s) detected: missing required member(s) %s", len(missing), strings.Join(missing, ", ")))
}

func validationError(msg string) error {
	return smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeValidationException, msg)
}

func notFound(msg string) error {
	return smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeResourceNotFound, msg)
}

func inUse(msg string) error {
	return smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeResourceInUse, msg)
}

func limitExceeded(msg string) error {
	return smerrors.NewServiceError(http.StatusBadRequest, smerrors.CodeResourceLimitExceeded, msg)
}

// clone returns a deep copy of v so that stored state never shares memory
// with requests or results
func clone[T any](v *T) (*T, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to copy %T: %w", v, err)
	}

	c := new(T)
	if err = json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to copy %T: %w", v, err)
	}

	return c, nil
}

func newID(prefix string, length int) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:length]
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
