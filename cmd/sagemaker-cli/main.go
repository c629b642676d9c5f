package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/client"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
)

type CLI struct {
	Config          string `name:"config" type:"path" env:"SAGEMAKER_CLI_CONFIG" help:"Path to a YAML file with connection profiles"`
	Profile         string `name:"profile" default:"default" env:"SAGEMAKER_CLI_PROFILE" help:"Profile to use from the config file"`
	Endpoint        string `name:"endpoint" env:"SAGEMAKER_ENDPOINT" help:"Service endpoint, e.g. http://localhost:8080 for the emulator"`
	Region          string `name:"region" env:"AWS_REGION" help:"AWS region"`
	AccessKeyID     string `name:"access-key-id" env:"AWS_ACCESS_KEY_ID" help:"Access key used to sign requests"`
	SecretAccessKey string `name:"secret-access-key" env:"AWS_SECRET_ACCESS_KEY" help:"Secret key used to sign requests"`
	Anonymous       bool   `name:"anonymous" help:"Send unsigned requests"`
	Validate        bool   `name:"validate" help:"Check request constraints before sending"`
	Debug           bool   `name:"debug" help:"Log failed requests"`

	ListDomains    ListDomainsCmd    `cmd:"" name:"list-domains" help:"List Studio domains"`
	DescribeDomain DescribeDomainCmd `cmd:"" name:"describe-domain" help:"Describe a Studio domain"`
	ListApps       ListAppsCmd       `cmd:"" name:"list-apps" help:"List apps, optionally filtered by domain and user profile"`
	DescribeApp    DescribeAppCmd    `cmd:"" name:"describe-app" help:"Describe an app"`
	CreateApp      CreateAppCmd      `cmd:"" name:"create-app" help:"Create an app for a user profile"`
	DeleteApp      DeleteAppCmd      `cmd:"" name:"delete-app" help:"Delete an app"`
	Search         SearchCmd         `cmd:"" name:"search" help:"Search training jobs, experiments, trials and trial components"`
}

type ListDomainsCmd struct {
	MaxResults int32 `name:"max-results" help:"Number of domains per page"`
	All        bool  `name:"all" help:"Follow next tokens and print every page"`
}

type DescribeDomainCmd struct {
	DomainID string `name:"domain-id" required:"" help:"Domain id, e.g. d-xxxxxxxxxxxx"`
}

type AppIdentity struct {
	DomainID        string `name:"domain-id" required:"" help:"Domain id"`
	UserProfileName string `name:"user-profile-name" required:"" help:"User profile that owns the app"`
	AppType         string `name:"app-type" required:"" help:"JupyterServer, KernelGateway or TensorBoard"`
	AppName         string `name:"app-name" required:"" help:"App name"`
}

type ListAppsCmd struct {
	DomainID        string `name:"domain-id" help:"Only list apps in this domain"`
	UserProfileName string `name:"user-profile-name" help:"Only list apps owned by this user profile"`
	SortOrder       string `name:"sort-order" help:"Sort by creation time"`
	MaxResults      int32  `name:"max-results" help:"Number of apps per page"`
	All             bool   `name:"all" help:"Follow next tokens and print every page"`
}

type DescribeAppCmd struct {
	AppIdentity `embed:""`
}

type CreateAppCmd struct {
	AppIdentity `embed:""`

	InstanceType string   `name:"instance-type" help:"Instance type, e.g. ml.t3.medium"`
	ImageArn     string   `name:"image-arn" help:"SageMaker image to run"`
	Tags         []string `name:"tag" help:"Tag as key=value (repeatable)"`
}

type DeleteAppCmd struct {
	AppIdentity `embed:""`
}

type SearchCmd struct {
	Resource   string   `name:"resource" required:"" help:"TrainingJob, Experiment, ExperimentTrial or ExperimentTrialComponent"`
	Filters    []string `name:"filter" help:"Filter as name:operator[:value] (repeatable)"`
	SortBy     string   `name:"sort-by" help:"Property to sort by"`
	SortOrder  string   `name:"sort-order" help:"Sort order"`
	MaxResults int32    `name:"max-results" help:"Number of results per page"`
}

type kongExitCode int

type commandDeps struct {
	newClient func(ctx context.Context, options ...client.Option) (client.SageMakerClient, error)
	openFile  func(path string) (io.ReadCloser, error)
	out       io.Writer
	errOut    io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], defaultDeps()))
}

func defaultDeps() commandDeps {
	return commandDeps{
		newClient: client.NewSageMakerClient,
		openFile:  func(path string) (io.ReadCloser, error) { return os.Open(path) },
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

func run(args []string, deps commandDeps) (exitCode int) {
	out := deps.out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.errOut
	if errOut == nil {
		errOut = os.Stderr
	}

	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name("sagemaker"),
		kong.Description("Call the SageMaker control plane, or a local emulator of it."),
		kong.Writers(out, errOut),
		kong.Exit(func(code int) {
			panic(kongExitCode(code))
		}),
	)
	if err != nil {
		fmt.Fprintf(errOut, "Error: initialize command parser: %v\n", err)
		return 1
	}
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		code, ok := recovered.(kongExitCode)
		if !ok {
			panic(recovered)
		}
		exitCode = int(code)
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		fmt.Fprintln(errOut, "Hint: run `sagemaker --help`.")
		return 1
	}

	ctx := context.Background()

	c, err := newClient(ctx, &cli, deps)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	var result any

	switch kctx.Command() {
	case "list-domains":
		result, err = runListDomains(ctx, c, cli.ListDomains)
	case "describe-domain":
		result, err = c.DescribeDomain(ctx, &sagemaker.DescribeDomainRequest{DomainId: &cli.DescribeDomain.DomainID})
	case "list-apps":
		result, err = runListApps(ctx, c, cli.ListApps)
	case "describe-app":
		result, err = runDescribeApp(ctx, c, cli.DescribeApp)
	case "create-app":
		result, err = runCreateApp(ctx, c, cli.CreateApp)
	case "delete-app":
		result, err = runDeleteApp(ctx, c, cli.DeleteApp)
	case "search":
		result, err = runSearch(ctx, c, cli.Search)
	default:
		fmt.Fprintf(errOut, "Error: unsupported command: %s\n", kctx.Command())
		fmt.Fprintln(errOut, "Hint: run `sagemaker --help`.")
		return 1
	}

	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "Error: failed to encode result: %v\n", err)
		return 1
	}

	fmt.Fprintln(out, string(b))

	return 0
}

func newClient(ctx context.Context, cli *CLI, deps commandDeps) (client.SageMakerClient, error) {
	if cli.Config != "" {
		f, err := deps.openFile(cli.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		p, err := loadProfile(f, cli.Profile)
		if err != nil {
			return nil, err
		}

		cli.merge(p)
	}

	options := []client.Option{
		client.ValidateRequests(cli.Validate),
		client.Debug(cli.Debug),
	}

	if cli.Endpoint != "" {
		options = append(options, client.Endpoint(cli.Endpoint))
	}
	if cli.Region != "" {
		options = append(options, client.Region(cli.Region))
	}

	if cli.Anonymous {
		options = append(options, client.Anonymous())
	} else if cli.AccessKeyID != "" {
		options = append(options, client.StaticCredentials(cli.AccessKeyID, cli.SecretAccessKey, ""))
	}

	return deps.newClient(ctx, options...)
}

func runListDomains(ctx context.Context, c client.SageMakerClient, cmd ListDomainsCmd) (any, error) {
	req := &sagemaker.ListDomainsRequest{MaxResults: optional(cmd.MaxResults)}

	if !cmd.All {
		return c.ListDomains(ctx, req)
	}

	result := &sagemaker.ListDomainsResult{Domains: []types.DomainDetails{}}
	_, err := client.ForEachPage(ctx, req, c.ListDomains, func(page *sagemaker.ListDomainsResult) error {
		result.AddDomains(page.Domains...)
		return nil
	}, 0)

	return result, err
}

func runListApps(ctx context.Context, c client.SageMakerClient, cmd ListAppsCmd) (any, error) {
	req := &sagemaker.ListAppsRequest{
		DomainIdEquals:        optional(cmd.DomainID),
		UserProfileNameEquals: optional(cmd.UserProfileName),
		SortOrder:             types.SortOrder(cmd.SortOrder),
		MaxResults:            optional(cmd.MaxResults),
	}

	if !cmd.All {
		return c.ListApps(ctx, req)
	}

	result := &sagemaker.ListAppsResult{Apps: []types.AppDetails{}}
	_, err := client.ForEachPage(ctx, req, c.ListApps, func(page *sagemaker.ListAppsResult) error {
		result.AddApps(page.Apps...)
		return nil
	}, 0)

	return result, err
}

func runDescribeApp(ctx context.Context, c client.SageMakerClient, cmd DescribeAppCmd) (any, error) {
	return c.DescribeApp(ctx, &sagemaker.DescribeAppRequest{
		DomainId:        &cmd.DomainID,
		UserProfileName: &cmd.UserProfileName,
		AppType:         types.AppType(cmd.AppType),
		AppName:         &cmd.AppName,
	})
}

func runCreateApp(ctx context.Context, c client.SageMakerClient, cmd CreateAppCmd) (any, error) {
	req := &sagemaker.CreateAppRequest{
		DomainId:        &cmd.DomainID,
		UserProfileName: &cmd.UserProfileName,
		AppType:         types.AppType(cmd.AppType),
		AppName:         &cmd.AppName,
	}

	if cmd.InstanceType != "" || cmd.ImageArn != "" {
		req.ResourceSpec = &types.ResourceSpec{
			SageMakerImageArn: optional(cmd.ImageArn),
			InstanceType:      types.AppInstanceType(cmd.InstanceType),
		}
	}

	for _, tag := range cmd.Tags {
		key, value, ok := strings.Cut(tag, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("tag %q is not of the form key=value", tag)
		}
		req.AddTags(types.Tag{Key: &key, Value: &value})
	}

	return c.CreateApp(ctx, req)
}

func runDeleteApp(ctx context.Context, c client.SageMakerClient, cmd DeleteAppCmd) (any, error) {
	return c.DeleteApp(ctx, &sagemaker.DeleteAppRequest{
		DomainId:        &cmd.DomainID,
		UserProfileName: &cmd.UserProfileName,
		AppType:         types.AppType(cmd.AppType),
		AppName:         &cmd.AppName,
	})
}

func runSearch(ctx context.Context, c client.SageMakerClient, cmd SearchCmd) (any, error) {
	req := &sagemaker.SearchRequest{
		Resource:   types.ResourceType(cmd.Resource),
		SortBy:     optional(cmd.SortBy),
		SortOrder:  types.SearchSortOrder(cmd.SortOrder),
		MaxResults: optional(cmd.MaxResults),
	}

	if len(cmd.Filters) > 0 {
		expr := &types.SearchExpression{}
		for _, f := range cmd.Filters {
			filter, err := parseFilter(f)
			if err != nil {
				return nil, err
			}
			expr.AddFilters(filter)
		}
		req.SearchExpression = expr
	}

	return c.Search(ctx, req)
}

// parseFilter reads a filter of the form name:operator[:value]. The value may
// itself contain colons.
func parseFilter(f string) (types.Filter, error) {
	parts := strings.SplitN(f, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return types.Filter{}, fmt.Errorf("filter %q is not of the form name:operator[:value]", f)
	}

	filter := types.Filter{
		Name:     &parts[0],
		Operator: types.Operator(parts[1]),
	}

	if len(parts) == 3 {
		filter.Value = &parts[2]
	}

	return filter, nil
}

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
