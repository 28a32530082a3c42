package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/portalcx/portalcx-go/cmd/portalcx/commands"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "portalcx",
	Short: "PortalCX customer portal CLI",
	Long: `A command-line interface for the PortalCX customer-portal API.

Manage templates and their stages, create projects and customer portals,
and record stage completions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch viper.GetString(constants.ConfigKeyOutput) {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML, "":
			return nil
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownFormat, viper.GetString(constants.ConfigKeyOutput))
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.portalcx/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API base URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "bearer token")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests and responses")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("project-encoding", "", "project body encoding (multipart, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(constants.ConfigKeyAPIBaseURL, rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag(constants.ConfigKeyToken, rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag(constants.ConfigKeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(constants.ConfigKeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(constants.ConfigKeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(constants.ConfigKeyProjectEncoding, rootCmd.PersistentFlags().Lookup("project-encoding"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewRegisterCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewStagesCommand())
	rootCmd.AddCommand(commands.NewProjectsCommand())
	rootCmd.AddCommand(commands.NewPortalsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.portalcx/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.DefaultConfigDirName))
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// PORTALCX_API_BASE_URL, PORTALCX_EMAIL, PORTALCX_PASSWORD, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(constants.ConfigKeyVerbose) {
			_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
