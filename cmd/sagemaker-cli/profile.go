package main

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

// Profile holds connection settings that can be kept in a config file
type Profile struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	Anonymous       bool   `yaml:"anonymous"`
	Validate        bool   `yaml:"validate"`
	Debug           bool   `yaml:"debug"`
}

type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

func loadProfile(data io.Reader, name string) (Profile, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return Profile{}, err
	}

	f := &profileFile{}
	if err = yaml.Unmarshal(buf, f); err != nil {
		return Profile{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found in config file", name)
	}

	return p, nil
}

// merge fills in every setting that was not given on the command line from p
func (cli *CLI) merge(p Profile) {
	if cli.Endpoint == "" {
		cli.Endpoint = p.Endpoint
	}
	if cli.Region == "" {
		cli.Region = p.Region
	}
	if cli.AccessKeyID == "" && cli.SecretAccessKey == "" {
		cli.AccessKeyID = p.AccessKeyID
		cli.SecretAccessKey = p.SecretAccessKey
	}
	cli.Anonymous = cli.Anonymous || p.Anonymous
	cli.Validate = cli.Validate || p.Validate
	cli.Debug = cli.Debug || p.Debug
}
