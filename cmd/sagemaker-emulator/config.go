package main

import (
	"context"
	"flag"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath

	region
)

func DefaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",

		configPath: "",
		opaPath:    "/opt/diwise/config/authz.rego",
	}
}

// parseExternalConfig overrides the default flags with values from the
// environment and then from the command line
func parseExternalConfig(ctx context.Context, flags FlagMap, args []string) (FlagMap, error) {

	flags[listenAddress] = env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = env.GetVariableOrDefault(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = env.GetVariableOrDefault(ctx, "EMULATOR_CONFIG_PATH", flags[configPath])
	flags[opaPath] = env.GetVariableOrDefault(ctx, "POLICY_PATH", flags[opaPath])
	flags[region] = env.GetVariableOrDefault(ctx, "AWS_REGION", flags[region])

	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)

	apply := func(name, usage string, key FlagType) {
		fs.Func(name, usage, func(value string) error {
			flags[key] = value
			return nil
		})
	}

	apply("config", "path to the emulator configuration file", configPath)
	apply("policies", "path to the authorization policies", opaPath)
	apply("port", "port to listen on", servicePort)
	apply("region", "region reported in resource ARNs", region)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}
