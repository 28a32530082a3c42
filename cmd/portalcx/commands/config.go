package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/portalcx/portalcx-go/internal/client"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/pkg/pcxclient"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const redacted = "********"

// Config represents the CLI configuration.
type Config struct {
	APIBaseURL      string `json:"api_base_url,omitempty"     yaml:"api_base_url,omitempty"`
	Token           string `json:"token,omitempty"            yaml:"token,omitempty"`
	Email           string `json:"email,omitempty"            yaml:"email,omitempty"`
	Output          string `json:"output"                     yaml:"output"`
	LogLevel        string `json:"log_level,omitempty"        yaml:"log_level,omitempty"`
	ProjectEncoding string `json:"project_encoding,omitempty" yaml:"project_encoding,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage PortalCX CLI configuration including the API base URL and stored token",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config

			if masked.Token != "" {
				masked.Token = redacted
			}

			return writeOutput(cmd.OutOrStdout(), masked, func(out io.Writer) error {
				return displayConfigTable(out, &masked)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value: api_base_url, token, email, output, log_level, project_encoding",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// setConfigValue sets a configuration value on config and in viper.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case constants.ConfigKeyAPIBaseURL:
		config.APIBaseURL = value
	case constants.ConfigKeyToken:
		config.Token = value
	case constants.ConfigKeyEmail:
		config.Email = value
	case constants.ConfigKeyOutput:
		config.Output = value
	case constants.ConfigKeyLogLevel:
		config.LogLevel = value
	case constants.ConfigKeyProjectEncoding:
		if value != "" {
			_, err := portalcx.ParseBodyEncoding(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}

		config.ProjectEncoding = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func loadConfig() *Config {
	return &Config{
		APIBaseURL:      viper.GetString(constants.ConfigKeyAPIBaseURL),
		Token:           viper.GetString(constants.ConfigKeyToken),
		Email:           viper.GetString(constants.ConfigKeyEmail),
		Output:          viper.GetString(constants.ConfigKeyOutput),
		LogLevel:        viper.GetString(constants.ConfigKeyLogLevel),
		ProjectEncoding: viper.GetString(constants.ConfigKeyProjectEncoding),
	}
}

// configFilePath returns the config file in use, or ~/.portalcx/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.DefaultConfigDirName,
		constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	_ = table.Append([]string{"API Base URL", config.APIBaseURL})
	_ = table.Append([]string{"Email", config.Email})
	_ = table.Append([]string{"Token", config.Token})
	_ = table.Append([]string{"Output", config.Output})
	_ = table.Append([]string{"Log Level", config.LogLevel})
	_ = table.Append([]string{"Project Encoding", config.ProjectEncoding})
	_ = table.Append([]string{"Logged In", strconv.FormatBool(config.Token != "")})

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// buildPortalConfig maps the CLI configuration onto a client configuration.
func buildPortalConfig(config *Config) (*portalcx.Config, error) {
	if config.APIBaseURL == "" {
		return nil, constants.ErrNoAPIBaseURL
	}

	return &portalcx.Config{
		BaseURL:         pcxclient.NormalizeBaseURL(config.APIBaseURL),
		AccessToken:     config.Token,
		LogLevel:        config.LogLevel,
		Debug:           viper.GetBool(constants.ConfigKeyVerbose),
		HTTPTimeout:     constants.CLIHTTPTimeout,
		ProjectEncoding: portalcx.BodyEncoding(config.ProjectEncoding),
	}, nil
}

// CreateClient creates a PortalCX client whose token changes are written
// back to the config file.
func CreateClient() (*client.Client, *auth.ConfigSession, error) {
	config := loadConfig()

	portalConfig, err := buildPortalConfig(config)
	if err != nil {
		return nil, nil, err
	}

	session := auth.NewConfigSession(NewConfigPersister(), portalConfig.BaseURL, config.Token)

	pcx, err := client.NewWithSession(portalConfig, session)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return pcx, session, nil
}

// writeOutput encodes value as JSON or YAML according to --output, and
// falls back to table for everything else.
func writeOutput(out io.Writer, value interface{}, table func(io.Writer) error) error {
	switch viper.GetString(constants.ConfigKeyOutput) {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	default:
		return table(out)
	}
}
