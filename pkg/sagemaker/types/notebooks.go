package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type NotebookInstanceSummary struct {
	NotebookInstanceName                *string                `json:"NotebookInstanceName,omitempty"`
	NotebookInstanceArn                 *string                `json:"NotebookInstanceArn,omitempty"`
	NotebookInstanceStatus              NotebookInstanceStatus `json:"NotebookInstanceStatus,omitempty"`
	Url                                 *string                `json:"Url,omitempty"`
	InstanceType                        InstanceType           `json:"InstanceType,omitempty"`
	CreationTime                        *Timestamp             `json:"CreationTime,omitempty"`
	LastModifiedTime                    *Timestamp             `json:"LastModifiedTime,omitempty"`
	NotebookInstanceLifecycleConfigName *string                `json:"NotebookInstanceLifecycleConfigName,omitempty"`
	DefaultCodeRepository               *string                `json:"DefaultCodeRepository,omitempty"`
	AdditionalCodeRepositories          []string               `json:"AdditionalCodeRepositories,omitzero"`
}

func (s *NotebookInstanceSummary) String() string { return shape.String(s) }
func (s *NotebookInstanceSummary) Equal(other *NotebookInstanceSummary) bool { return shape.Equal(s, other) }
func (s *NotebookInstanceSummary) HashCode() int32 { return shape.Hash(s) }

func (s *NotebookInstanceSummary) AddAdditionalCodeRepositories(items ...string) { shape.Append(&s.AdditionalCodeRepositories, items...) }
