package emulator

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

func (cp *controlPlane) CreateDomain(ctx context.Context, in *sagemaker.CreateDomainRequest) (*sagemaker.CreateDomainResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	in, err := clone(in)
	if err != nil {
		return nil, err
	}

	err = required(map[string]bool{
		"DomainName":          in.DomainName != nil,
		"AuthMode":            in.AuthMode != "",
		"DefaultUserSettings": in.DefaultUserSettings != nil,
		"SubnetIds":           in.SubnetIds != nil,
		"VpcId":               in.VpcId != nil,
	})
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()

	for _, d := range cp.domains {
		if *d.DomainName == *in.DomainName && d.Status != types.DomainStatusDeleting {
			cp.mu.Unlock()
			return nil, inUse(fmt.Sprintf("Domain with name %s already exists", *in.DomainName))
		}
	}

	domain := cp.newDomain(in)
	cp.domains = append(cp.domains, domain)

	if len(in.Tags) > 0 {
		cp.tags[*domain.DomainArn] = append([]types.Tag{}, in.Tags...)
	}

	cp.mu.Unlock()

	domainID := *domain.DomainId
	logging.GetFromContext(ctx).Info("domain created", "id", domainID, "name", *in.DomainName)

	cp.lifecycle.Schedule(ctx, "domain-in-service", domainID, func() bool {
		return cp.setDomainStatus(domainID, types.DomainStatusPending, types.DomainStatusInService)
	})

	return &sagemaker.CreateDomainResult{
		DomainArn: ptr(*domain.DomainArn),
		Url:       ptr(*domain.Url),
	}, nil
}

func (cp *controlPlane) DescribeDomain(ctx context.Context, in *sagemaker.DescribeDomainRequest) (*sagemaker.DescribeDomainResult, error) {
	if err := required(map[string]bool{"DomainId": in.DomainId != nil}); err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	d, ok := cp.findDomain(*in.DomainId)
	if !ok {
		return nil, notFound(fmt.Sprintf("Domain %s does not exist", *in.DomainId))
	}

	return clone(d)
}

func (cp *controlPlane) UpdateDomain(ctx context.Context, in *sagemaker.UpdateDomainRequest) (*sagemaker.UpdateDomainResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := required(map[string]bool{"DomainId": in.DomainId != nil}); err != nil {
		return nil, err
	}

	in, err := clone(in)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	d, ok := cp.findDomain(*in.DomainId)
	if !ok {
		return nil, notFound(fmt.Sprintf("Domain %s does not exist", *in.DomainId))
	}

	if d.Status != types.DomainStatusInService {
		return nil, inUse(fmt.Sprintf("Domain %s is %s and cannot be updated", *in.DomainId, d.Status))
	}

	d.DefaultUserSettings = mergeUserSettings(d.DefaultUserSettings, in.DefaultUserSettings)
	d.LastModifiedTime = types.NewTimestamp(cp.now())

	return &sagemaker.UpdateDomainResult{DomainArn: ptr(*d.DomainArn)}, nil
}

func (cp *controlPlane) DeleteDomain(ctx context.Context, in *sagemaker.DeleteDomainRequest) (*sagemaker.DeleteDomainResult, error) {
	if err := required(map[string]bool{"DomainId": in.DomainId != nil}); err != nil {
		return nil, err
	}

	cp.mu.Lock()

	d, ok := cp.findDomain(*in.DomainId)
	if !ok {
		cp.mu.Unlock()
		return nil, notFound(fmt.Sprintf("Domain %s does not exist", *in.DomainId))
	}

	for _, app := range cp.apps {
		if *app.DomainId == *in.DomainId && app.Status != types.AppStatusDeleted {
			cp.mu.Unlock()
			return nil, inUse(fmt.Sprintf("Domain %s has apps that are not deleted", *in.DomainId))
		}
	}

	d.Status = types.DomainStatusDeleting
	d.LastModifiedTime = types.NewTimestamp(cp.now())

	cp.mu.Unlock()

	domainID := *in.DomainId
	logging.GetFromContext(ctx).Info("deleting domain", "id", domainID)

	cp.lifecycle.Schedule(ctx, "domain-deleted", domainID, func() bool {
		return cp.removeDomain(domainID)
	})

	return &sagemaker.DeleteDomainResult{}, nil
}

func (cp *controlPlane) ListDomains(ctx context.Context, in *sagemaker.ListDomainsRequest) (*sagemaker.ListDomainsResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	cp.mu.Lock()

	details := make([]types.DomainDetails, 0, len(cp.domains))
	for _, d := range cp.domains {
		details = append(details, types.DomainDetails{
			DomainArn:        d.DomainArn,
			DomainId:         d.DomainId,
			DomainName:       d.DomainName,
			Status:           d.Status,
			CreationTime:     d.CreationTime,
			LastModifiedTime: d.LastModifiedTime,
			Url:              d.Url,
		})
	}

	cp.mu.Unlock()

	page, next, err := paginate(details, in.NextToken, in.MaxResults)
	if err != nil {
		return nil, err
	}

	return clone(&sagemaker.ListDomainsResult{Domains: page, NextToken: next})
}

func (cp *controlPlane) newDomain(in *sagemaker.CreateDomainRequest) *sagemaker.DescribeDomainResult {
	id := newID("d-", 12)
	now := types.NewTimestamp(cp.now())

	return &sagemaker.DescribeDomainResult{
		DomainArn:                 ptr(cp.arn("domain/" + id)),
		DomainId:                  &id,
		DomainName:                in.DomainName,
		HomeEfsFileSystemId:       ptr(newID("fs-", 8)),
		Status:                    types.DomainStatusPending,
		CreationTime:              now,
		LastModifiedTime:          now,
		AuthMode:                  in.AuthMode,
		DefaultUserSettings:       in.DefaultUserSettings,
		HomeEfsFileSystemKmsKeyId: in.HomeEfsFileSystemKmsKeyId,
		SubnetIds:                 in.SubnetIds,
		Url:                       ptr(fmt.Sprintf("https://%s.studio.%s.sagemaker.aws", id, cp.region)),
		VpcId:                     in.VpcId,
	}
}

// findDomain returns a domain that has not been deleted. The caller must hold
// the lock.
func (cp *controlPlane) findDomain(id string) (*sagemaker.DescribeDomainResult, bool) {
	for _, d := range cp.domains {
		if *d.DomainId == id {
			return d, true
		}
	}
	return nil, false
}

func (cp *controlPlane) setDomainStatus(id string, from, to types.DomainStatus) bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	d, ok := cp.findDomain(id)
	if !ok || d.Status != from {
		return false
	}

	d.Status = to
	d.LastModifiedTime = types.NewTimestamp(cp.now())

	return true
}

func (cp *controlPlane) removeDomain(id string) bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	for i, d := range cp.domains {
		if *d.DomainId == id && d.Status == types.DomainStatusDeleting {
			cp.domains = append(cp.domains[:i], cp.domains[i+1:]...)
			delete(cp.tags, *d.DomainArn)
			return true
		}
	}

	return false
}

// mergeUserSettings replaces the settings in current that are set in update
// and keeps the rest
func mergeUserSettings(current, update *types.UserSettings) *types.UserSettings {
	if update == nil {
		return current
	}
	if current == nil {
		return update
	}

	merged := *current
	if update.ExecutionRole != nil {
		merged.ExecutionRole = update.ExecutionRole
	}
	if update.SecurityGroups != nil {
		merged.SecurityGroups = update.SecurityGroups
	}
	if update.SharingSettings != nil {
		merged.SharingSettings = update.SharingSettings
	}
	if update.JupyterServerAppSettings != nil {
		merged.JupyterServerAppSettings = update.JupyterServerAppSettings
	}
	if update.KernelGatewayAppSettings != nil {
		merged.KernelGatewayAppSettings = update.KernelGatewayAppSettings
	}
	if update.TensorBoardAppSettings != nil {
		merged.TensorBoardAppSettings = update.TensorBoardAppSettings
	}

	return &merged
}

func ptr[T any](v T) *T {
	return &v
}
