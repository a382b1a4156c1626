package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/mindguard/internal/cli"
	"github.com/terraincognita07/mindguard/internal/config"
	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/scoring"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "mindguard",
		Short:        "Mood tracking, symptom scoring and risk classification service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default ./mindguard.yaml)")

	root.AddCommand(
		newServeCommand(&configFile),
		newAnalyzeCommand(),
		newResetPasswordCommand(&configFile),
		newPromoteCounselorCommand(&configFile),
	)
	return root
}

func newAnalyzeCommand() *cobra.Command {
	var (
		file     string
		window   int
		timeZone string
	)

	command := &cobra.Command{
		Use:   "analyze",
		Short: "Score a YAML or JSON file of entries and print the analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, err := time.LoadLocation(timeZone)
			if err != nil {
				return fmt.Errorf("invalid time zone %q: %w", timeZone, err)
			}
			return cli.AnalyzeFile(file, window, location, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "", "entries file (.yaml, .yml or .json)")
	command.Flags().IntVarP(&window, "window", "w", scoring.DefaultWindowSize, "number of most recent days to analyze")
	command.Flags().StringVar(&timeZone, "tz", "UTC", "time zone used to resolve entry dates")
	_ = command.MarkFlagRequired("file")
	return command
}

func newResetPasswordCommand(configFile *string) *cobra.Command {
	var (
		dbPath string
		email  string
		prompt bool
	)

	command := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password",
		Long:  "Reset a user's password. Without --prompt a temporary password is generated and must be changed on next login.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newPassword := ""
			if prompt {
				value, err := cli.PromptNewPassword(os.Stdin, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				newPassword = value
			}

			database, err := openCommandDatabase(dbPath, *configFile)
			if err != nil {
				return err
			}
			_, err = cli.ResetPassword(database, email, newPassword, cmd.OutOrStdout())
			return err
		},
	}
	command.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default DB_PATH from --config or the environment)")
	command.Flags().StringVar(&email, "email", "", "account email")
	command.Flags().BoolVar(&prompt, "prompt", false, "type the new password instead of generating one")
	_ = command.MarkFlagRequired("email")
	return command
}

func newPromoteCounselorCommand(configFile *string) *cobra.Command {
	var (
		dbPath string
		email  string
	)

	command := &cobra.Command{
		Use:   "promote-counselor",
		Short: "Grant the counselor role to an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := openCommandDatabase(dbPath, *configFile)
			if err != nil {
				return err
			}
			return cli.PromoteCounselor(database, email, cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default DB_PATH from --config or the environment)")
	command.Flags().StringVar(&email, "email", "", "account email")
	_ = command.MarkFlagRequired("email")
	return command
}

func resolveDBPath(flagValue string, configFile string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	path, err := config.LoadDBPath(configFile)
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(path), nil
}

func openCommandDatabase(flagValue string, configFile string) (*gorm.DB, error) {
	path, err := resolveDBPath(flagValue, configFile)
	if err != nil {
		return nil, err
	}
	database, err := db.OpenSQLite(path, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}
