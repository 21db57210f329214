package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "edumatch"
)

type Config struct {
	Server     *ServerConfig     `mapstructure:"server"`
	Completion *CompletionConfig `mapstructure:"completion"`
	Match      *MatchConfig      `mapstructure:"match"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type CompletionConfig struct {
	Provider     string        `mapstructure:"provider"`
	BaseURL      string        `mapstructure:"base-url"`
	Model        string        `mapstructure:"model"`
	APIKey       string        `mapstructure:"api-key"`
	APIKeyFile   string        `mapstructure:"api-key-file"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxLogLength int           `mapstructure:"max-log-length"`
}

type MatchConfig struct {
	Strict bool `mapstructure:"strict"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "edumatch is an assessment and teacher matching gateway backed by a text generation model",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("completion.api-key", "GROQ_API_KEY"); err != nil {
		log.Fatalf("binding GROQ_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("completion.api-key-file", "EDUMATCH_API_KEY_FILE"); err != nil {
		log.Fatalf("binding EDUMATCH_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("completion.provider", "openai")
	viper.SetDefault("completion.timeout", 60*time.Second)
	viper.SetDefault("completion.max-log-length", 200)
	viper.SetDefault("match.strict", false)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is edumatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional: defaults and environment are enough to serve.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Completion == nil {
		config.Completion = &CompletionConfig{}
	}
	if config.Match == nil {
		config.Match = &MatchConfig{}
	}

	config.Completion.Provider = strings.ToLower(strings.TrimSpace(config.Completion.Provider))

	return config, nil
}
