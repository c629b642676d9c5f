package types

import "github.com/diwise/sagemaker-client/pkg/sagemaker/internal/shape"

type VpcConfig struct {
	SecurityGroupIds []string `json:"SecurityGroupIds,omitzero" validate:"omitempty,min=1,max=5,dive,max=32,sm_resource_id"`
	Subnets          []string `json:"Subnets,omitzero" validate:"omitempty,min=1,max=16,dive,max=32,sm_resource_id"`
}

func (s *VpcConfig) String() string { return shape.String(s) }
func (s *VpcConfig) Equal(other *VpcConfig) bool { return shape.Equal(s, other) }
func (s *VpcConfig) HashCode() int32 { return shape.Hash(s) }

func (s *VpcConfig) AddSecurityGroupIds(items ...string) { shape.Append(&s.SecurityGroupIds, items...) }

func (s *VpcConfig) AddSubnets(items ...string) { shape.Append(&s.Subnets, items...) }

type NetworkConfig struct {
	EnableInterContainerTrafficEncryption *bool      `json:"EnableInterContainerTrafficEncryption,omitempty"`
	EnableNetworkIsolation                *bool      `json:"EnableNetworkIsolation,omitempty"`
	VpcConfig                             *VpcConfig `json:"VpcConfig,omitempty"`
}

func (s *NetworkConfig) String() string { return shape.String(s) }
func (s *NetworkConfig) Equal(other *NetworkConfig) bool { return shape.Equal(s, other) }
func (s *NetworkConfig) HashCode() int32 { return shape.Hash(s) }
