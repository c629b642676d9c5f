package emulator

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	is.Equal(cfg.Region, "eu-north-1")
	is.Equal(cfg.AccountID, "111122223333")
	is.Equal(cfg.LifecycleDelay, 2*time.Second)
	is.Equal(len(cfg.Domains), 1)
	is.Equal(cfg.Domains[0].Name, "research")
	is.Equal(cfg.Domains[0].SubnetIDs, []string{"subnet-0a1b", "subnet-2c3d"})
}

func TestLoadEmptyConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(len(cfg.Domains), 0)
}

const configYaml string = `
region: eu-north-1
accountId: "111122223333"
lifecycleDelay: 2s
domains:
  - name: research
    authMode: IAM
    executionRole: arn:aws:iam::111122223333:role/service-role/SageMakerExecution
    vpcId: vpc-0a1b2c3d
    subnetIds:
      - subnet-0a1b
      - subnet-2c3d
`
