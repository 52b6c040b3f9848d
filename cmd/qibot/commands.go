package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/lgtm-migrator/qibot/internal/app"
	"github.com/lgtm-migrator/qibot/internal/config"
)

type rootOptions struct {
	envPath   string
	assetRoot string
	timeout   time.Duration
	fileOnly  bool

	store *config.Store
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "qibot",
		Short:         "Inspect and exercise the qibot shared layer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.store = config.NewStore(config.Options{Path: opts.envPath, SkipProcessEnv: opts.fileOnly})
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.envPath, "env", "", "path to the .env file (default: search upward from the working directory)")
	root.PersistentFlags().StringVar(&opts.assetRoot, "assets", "", "directory containing assets/data (default: working directory)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for fetch (default 30s)")
	root.PersistentFlags().BoolVar(&opts.fileOnly, "no-process-env", false, "read configuration from the .env file only")

	root.AddCommand(
		newVersionCommand(),
		newConfigCommand(opts),
		newChannelCommand(opts),
		newFetchCommand(opts),
		newAssetCommand(opts),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), banner())
			return err
		},
	}
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration and print it with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.store.Get()
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newChannelCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "channel NAME",
		Short: "Print the configured id of a named channel (0 when unset)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.store.Get()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.ChannelID(args[0]))
			return err
		},
	}
}

func newFetchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a URL through the shared client and write the body to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			body, err := env.FetchBytes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
}

func newAssetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "asset NAME",
		Short: "Load assets/data/NAME.json and print it indented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			doc, err := env.LoadJSON(args[0])
			if err != nil {
				return err
			}
			pretty, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode asset: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return err
		},
	}
}

func (o *rootOptions) env(cmd *cobra.Command) (*app.Env, error) {
	return app.New(o.store, app.Options{
		AssetRoot:   o.assetRoot,
		HTTPTimeout: o.timeout,
		LogOutput:   cmd.ErrOrStderr(),
	})
}
