package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jroosing/awsrest/internal/stub"
	"github.com/jroosing/awsrest/internal/stub/store"
)

func stubCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Local fake of the API Gateway and Route 53 endpoints",
	}
	cmd.AddCommand(stubServeCmd(a))
	return cmd
}

func stubServeCmd(a *app) *cobra.Command {
	var host, dbPath string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stub until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if host != "" {
				a.cfg.Stub.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Stub.Port = port
			}
			if dbPath != "" {
				a.cfg.Stub.DBPath = dbPath
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			st, err := store.Open(a.cfg.Stub.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a.logger.Info("awsrest stub starting",
				"addr", a.cfg.StubAddr(),
				"db", a.cfg.Stub.DBPath,
				"api_key", a.cfg.Stub.APIKey != "",
			)
			return stub.New(a.cfg, st, a.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "override bind host")
	cmd.Flags().IntVar(&port, "port", 0, "override bind port")
	cmd.Flags().StringVar(&dbPath, "db", "", "override SQLite path (\":memory:\" for a throwaway store)")
	return cmd
}
