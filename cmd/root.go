package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/killallgit/convo/pkg/config"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/headless"
	"github.com/killallgit/convo/pkg/logger"
	"github.com/killallgit/convo/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	previewCount int
	previewWidth int
)

var rootCmd = &cobra.Command{
	Use:   "convo",
	Short: "A single chat conversation in your terminal",
	Long: `convo shows one conversation screen: an app bar with the partner's badge,
name and call buttons over an endless list of messages synthesized from a
single seed line.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.BuildSettingsPath("settings.yaml")
		}

		created, err := config.InitializeDefaults(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote default settings to", path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Settings already exist at", path)
		}
		return nil
	},
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if err := logger.Init(); err != nil {
		return err
	}
	defer logger.Close()

	if used := config.GetConfigFileUsed(); used != "" {
		logger.Debug("Using config file: %s", used)
	}

	if previewCount > 0 {
		err = runPreview(out, cfg)
	} else {
		err = tui.StartApp(ctx, cfg)
	}
	if err != nil {
		logger.Error("convo exited: %v", err)
	}
	return err
}

func runPreview(out io.Writer, cfg *config.Config) error {
	identity, err := conversation.NewIdentity(cfg.Conversation.Name, cfg.Conversation.LastMessage)
	if err != nil {
		return err
	}

	return headless.RunPreview(out, identity, tui.ThemeFromConfig(cfg.Theme), previewCount,
		headless.WithWidth(previewWidth))
}

// Execute runs the root command and exits non-zero on failure
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.convo/settings.yaml, then $XDG_CONFIG_HOME/convo/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().StringP("name", "n", "", "name of the conversation partner")
	viper.BindPFlag("conversation.name", rootCmd.Flags().Lookup("name"))

	rootCmd.Flags().StringP("last-message", "m", "", "seed line every message is synthesized from")
	viper.BindPFlag("conversation.last_message", rootCmd.Flags().Lookup("last-message"))

	rootCmd.Flags().IntVar(&previewCount, "preview", 0, "print N messages to stdout instead of opening the screen")
	rootCmd.Flags().IntVar(&previewWidth, "preview-width", headless.DefaultWidth, "columns used by --preview")

	rootCmd.AddCommand(initCmd)
}
