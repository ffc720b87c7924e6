// Package cmd implements the zoolist command-line interface.
package cmd

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfauna/zoolist/pkg/logging"
)

// BuildInfo carries version metadata from the build into the CLI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context, info BuildInfo) error {
	root := newRootCmd(info)
	return root.ExecuteContext(ctx)
}

func newRootCmd(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "zoolist",
		Short: "Reconcile UK zoo listings from multiple sources",
		Long: `zoolist merges noisy zoo listings from a wiki listing, a membership
directory, and a web-search augmenter into one deduplicated canonical
set, ranked by confidence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .zoolist.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "auto", "log format (auto, console, json)")

	root.AddCommand(newReconcileCmd())
	root.AddCommand(newSourcesCmd())
	root.AddCommand(newVersionCmd(info))

	return root
}

// initConfig wires flags, environment, and the optional config file into
// viper, then configures logging from the merged settings.
func initConfig(cmd *cobra.Command) error {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix("ZOOLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".zoolist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if viper.GetString("config") != "" {
				return err
			}
		}
	}

	logging.Configure(viper.GetString("log-level"), viper.GetString("log-format"))
	return nil
}
