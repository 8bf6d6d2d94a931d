package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
	logger  *slog.Logger
	cfg     = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "lingen",
	Short: "Generate index codecs from a type schema",
	Long: `lingen reads a YAML schema describing enums, structs and unions and
emits Go source: the type declarations plus codec constructors that map
each type onto a dense integer range.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}

// initConfig wires viper and logging. Flags win over LINGEN_* env vars,
// env vars over the optional config file.
func initConfig() {
	if configFile := os.Getenv("LINGEN_CONFIG"); configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName("lingen")
		cfg.SetConfigType("yaml")
		cfg.AddConfigPath(".")
		cfg.AddConfigPath("$HOME/.config/lingen")
	}
	cfg.SetEnvPrefix("LINGEN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.ReadInConfig()

	level := slog.LevelWarn
	if verbose || cfg.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
