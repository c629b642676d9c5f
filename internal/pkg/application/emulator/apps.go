package emulator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

type appKey struct {
	domainID    string
	userProfile string
	appType     types.AppType
	name        string
}

func (k appKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.domainID, k.userProfile, strings.ToLower(string(k.appType)), k.name)
}

func identify(domainID, userProfile *string, appType types.AppType, name *string) (appKey, error) {
	err := required(map[string]bool{
		"DomainId":        domainID != nil,
		"UserProfileName": userProfile != nil,
		"AppType":         appType != "",
		"AppName":         name != nil,
	})
	if err != nil {
		return appKey{}, err
	}

	return appKey{*domainID, *userProfile, appType, *name}, nil
}

func keyOf(app *sagemaker.DescribeAppResult) appKey {
	return appKey{*app.DomainId, *app.UserProfileName, app.AppType, *app.AppName}
}

func (cp *controlPlane) CreateApp(ctx context.Context, in *sagemaker.CreateAppRequest) (*sagemaker.CreateAppResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	key, err := identify(in.DomainId, in.UserProfileName, in.AppType, in.AppName)
	if err != nil {
		return nil, err
	}

	in, err = clone(in)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()

	d, ok := cp.findDomain(key.domainID)
	if !ok || d.Status == types.DomainStatusDeleting {
		cp.mu.Unlock()
		return nil, notFound(fmt.Sprintf("Domain %s does not exist", key.domainID))
	}

	if _, ok := cp.findApp(key); ok {
		cp.mu.Unlock()
		return nil, inUse(fmt.Sprintf("App %s already exists", key))
	}

	app := &sagemaker.DescribeAppResult{
		AppArn:          ptr(cp.arn("app/" + key.String())),
		AppType:         key.appType,
		AppName:         in.AppName,
		DomainId:        in.DomainId,
		UserProfileName: in.UserProfileName,
		Status:          types.AppStatusPending,
		CreationTime:    types.NewTimestamp(cp.now()),
		ResourceSpec:    in.ResourceSpec,
	}
	cp.apps = append(cp.apps, app)

	if len(in.Tags) > 0 {
		cp.tags[*app.AppArn] = append([]types.Tag{}, in.Tags...)
	}

	cp.mu.Unlock()

	logging.GetFromContext(ctx).Info("app created", "app", key.String())

	cp.lifecycle.Schedule(ctx, "app-in-service", key.String(), func() bool {
		return cp.setAppStatus(key, types.AppStatusPending, types.AppStatusInService)
	})

	return &sagemaker.CreateAppResult{AppArn: ptr(*app.AppArn)}, nil
}

func (cp *controlPlane) DescribeApp(ctx context.Context, in *sagemaker.DescribeAppRequest) (*sagemaker.DescribeAppResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	key, err := identify(in.DomainId, in.UserProfileName, in.AppType, in.AppName)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	// deleted apps stay visible until they are replaced
	app, ok := cp.latestApp(key)
	if !ok {
		return nil, notFound(fmt.Sprintf("App %s does not exist", key))
	}

	return clone(app)
}

func (cp *controlPlane) DeleteApp(ctx context.Context, in *sagemaker.DeleteAppRequest) (*sagemaker.DeleteAppResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	key, err := identify(in.DomainId, in.UserProfileName, in.AppType, in.AppName)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()

	app, ok := cp.findApp(key)
	if !ok {
		cp.mu.Unlock()
		return nil, notFound(fmt.Sprintf("App %s does not exist", key))
	}

	if app.Status == types.AppStatusDeleting {
		cp.mu.Unlock()
		return &sagemaker.DeleteAppResult{}, nil
	}

	app.Status = types.AppStatusDeleting

	cp.mu.Unlock()

	logging.GetFromContext(ctx).Info("deleting app", "app", key.String())

	cp.lifecycle.Schedule(ctx, "app-deleted", key.String(), func() bool {
		return cp.setAppStatus(key, types.AppStatusDeleting, types.AppStatusDeleted)
	})

	return &sagemaker.DeleteAppResult{}, nil
}

func (cp *controlPlane) ListApps(ctx context.Context, in *sagemaker.ListAppsRequest) (*sagemaker.ListAppsResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	cp.mu.Lock()

	details := []types.AppDetails{}
	for _, app := range cp.apps {
		if in.DomainIdEquals != nil && *app.DomainId != *in.DomainIdEquals {
			continue
		}
		if in.UserProfileNameEquals != nil && *app.UserProfileName != *in.UserProfileNameEquals {
			continue
		}

		details = append(details, types.AppDetails{
			DomainId:        app.DomainId,
			UserProfileName: app.UserProfileName,
			AppType:         app.AppType,
			AppName:         app.AppName,
			Status:          app.Status,
			CreationTime:    app.CreationTime,
		})
	}

	cp.mu.Unlock()

	slices.SortStableFunc(details, func(a, b types.AppDetails) int {
		cmp := a.CreationTime.Time().Compare(b.CreationTime.Time())
		if in.SortOrder == types.SortOrderAscending {
			return cmp
		}
		return -cmp
	})

	page, next, err := paginate(details, in.NextToken, in.MaxResults)
	if err != nil {
		return nil, err
	}

	return clone(&sagemaker.ListAppsResult{Apps: page, NextToken: next})
}

// findApp returns the app with the given identity that has not been deleted.
// The caller must hold the lock.
func (cp *controlPlane) findApp(key appKey) (*sagemaker.DescribeAppResult, bool) {
	for _, app := range cp.apps {
		if app.Status != types.AppStatusDeleted && keyOf(app) == key {
			return app, true
		}
	}
	return nil, false
}

func (cp *controlPlane) latestApp(key appKey) (*sagemaker.DescribeAppResult, bool) {
	for i := len(cp.apps) - 1; i >= 0; i-- {
		if keyOf(cp.apps[i]) == key {
			return cp.apps[i], true
		}
	}
	return nil, false
}

func (cp *controlPlane) setAppStatus(key appKey, from, to types.AppStatus) bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	app, ok := cp.findApp(key)
	if !ok || app.Status != from {
		return false
	}

	app.Status = to

	return true
}
