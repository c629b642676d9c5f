package emulator

import (
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type DomainConfig struct {
	Name          string   `yaml:"name"`
	AuthMode      string   `yaml:"authMode"`
	ExecutionRole string   `yaml:"executionRole"`
	VpcID         string   `yaml:"vpcId"`
	SubnetIDs     []string `yaml:"subnetIds"`
}

type Config struct {
	Region    string `yaml:"region"`
	AccountID string `yaml:"accountId"`
	// LifecycleDelay is how long a resource stays Pending or Deleting
	LifecycleDelay time.Duration  `yaml:"lifecycleDelay"`
	Domains        []DomainConfig `yaml:"domains"`
}

const (
	DefaultRegion    string = "us-east-1"
	DefaultAccountID string = "123456789012"
)

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
