package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jroosing/awsrest/internal/config"
	"github.com/jroosing/awsrest/internal/logging"
	"github.com/jroosing/awsrest/internal/transport"
)

// app is the dependency graph shared by subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	configPath string
	debug      bool
	jsonLogs   bool

	cfg    *config.Config
	logger *slog.Logger
	exec   *transport.HTTPExecutor
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ResolveConfigPath(a.configPath))
	if err != nil {
		return err
	}
	if a.jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if a.debug {
		cfg.Logging.Level = "DEBUG"
	}

	a.cfg = cfg
	a.logger = logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
		Output:           cmd.ErrOrStderr(),
	})

	opts := []transport.Option{
		transport.WithTimeout(cfg.Timeout),
		transport.WithLogger(a.logger),
	}
	if cfg.Credentials.HasKeys() {
		opts = append(opts, transport.WithCredentials(
			cfg.Credentials.AccessKeyID,
			cfg.Credentials.SecretAccessKey,
			cfg.Credentials.SessionToken,
		))
	}
	a.exec = transport.NewHTTPExecutor(opts...)
	a.logger.Debug("config loaded",
		"region", cfg.Region,
		"apigateway", cfg.Endpoints.APIGateway,
		"route53", cfg.Endpoints.Route53,
		"signed", a.exec.Signed(),
	)
	return nil
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "awsrest",
		Short:             "Call the API Gateway method-response and Route 53 record-set APIs",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config (or set "+config.EnvConfigPath+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "log as JSON")

	root.AddCommand(apigatewayCmd(a), route53Cmd(a), stubCmd(a))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
