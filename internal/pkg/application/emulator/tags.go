package emulator

import (
	"context"
	"fmt"
	"slices"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

const (
	maxTagsPerResource int   = 50
	defaultTagPageSize int32 = 50
)

func (cp *controlPlane) AddTags(ctx context.Context, in *sagemaker.AddTagsRequest) (*sagemaker.AddTagsResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := required(map[string]bool{"ResourceArn": in.ResourceArn != nil, "Tags": in.Tags != nil}); err != nil {
		return nil, err
	}

	in, err := clone(in)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.exists(*in.ResourceArn) {
		return nil, notFound(fmt.Sprintf("Resource %s does not exist", *in.ResourceArn))
	}

	tags := slices.Clone(cp.tags[*in.ResourceArn])

	for _, tag := range in.Tags {
		i := slices.IndexFunc(tags, func(t types.Tag) bool { return deref(t.Key) == deref(tag.Key) })
		if i >= 0 {
			tags[i] = tag
		} else {
			tags = append(tags, tag)
		}
	}

	if len(tags) > maxTagsPerResource {
		return nil, limitExceeded(fmt.Sprintf("Resource %s cannot have more than %d tags", *in.ResourceArn, maxTagsPerResource))
	}

	cp.tags[*in.ResourceArn] = tags

	return clone(&sagemaker.AddTagsResult{Tags: in.Tags})
}

func (cp *controlPlane) ListTags(ctx context.Context, in *sagemaker.ListTagsRequest) (*sagemaker.ListTagsResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := required(map[string]bool{"ResourceArn": in.ResourceArn != nil}); err != nil {
		return nil, err
	}

	cp.mu.Lock()

	if !cp.exists(*in.ResourceArn) {
		cp.mu.Unlock()
		return nil, notFound(fmt.Sprintf("Resource %s does not exist", *in.ResourceArn))
	}

	tags := append([]types.Tag{}, cp.tags[*in.ResourceArn]...)

	cp.mu.Unlock()

	maxResults := in.MaxResults
	if maxResults == nil {
		maxResults = ptr(defaultTagPageSize)
	}

	page, next, err := paginate(tags, in.NextToken, maxResults)
	if err != nil {
		return nil, err
	}

	return clone(&sagemaker.ListTagsResult{Tags: page, NextToken: next})
}

func (cp *controlPlane) DeleteTags(ctx context.Context, in *sagemaker.DeleteTagsRequest) (*sagemaker.DeleteTagsResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := required(map[string]bool{"ResourceArn": in.ResourceArn != nil, "TagKeys": in.TagKeys != nil}); err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.exists(*in.ResourceArn) {
		return nil, notFound(fmt.Sprintf("Resource %s does not exist", *in.ResourceArn))
	}

	cp.tags[*in.ResourceArn] = slices.DeleteFunc(cp.tags[*in.ResourceArn], func(t types.Tag) bool {
		return slices.Contains(in.TagKeys, deref(t.Key))
	})

	return &sagemaker.DeleteTagsResult{}, nil
}

// exists reports whether arn names a domain or an app that has not been
// deleted. The caller must hold the lock.
func (cp *controlPlane) exists(arn string) bool {
	for _, d := range cp.domains {
		if *d.DomainArn == arn {
			return true
		}
	}

	for _, app := range cp.apps {
		if *app.AppArn == arn && app.Status != types.AppStatusDeleted {
			return true
		}
	}

	return false
}
