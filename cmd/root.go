package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/slowql/pkg/logger"
)

// version is set at build time with -ldflags "-X github.com/nsxbet/slowql/cmd.version=...".
var version = "dev"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slowql",
	Short: "Find performance anti-patterns in SQL queries",
	Long: `slowql is a command-line tool that scans SQL queries for patterns
known to hurt performance or correctness, such as SELECT *, UPDATE or
DELETE without WHERE, leading LIKE wildcards and non-SARGable filters.

Analysis is static: queries are never executed and no database
connection is needed.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slowql.yaml or ./.slowql.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in .env, the config file and SLOWQL_* environment variables.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("failed to load .env", "error", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slowql")
	}

	viper.SetEnvPrefix("SLOWQL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	setupLogger()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			slog.Warn("failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
		}
		return
	}
	slog.Debug("using config file", "file", viper.ConfigFileUsed())
}

// setupLogger installs the default logger for the --verbose and --debug flags.
func setupLogger() *logger.Logger {
	l := logger.NewWithLevel(logger.LevelFromFlags(viper.GetBool("verbose"), viper.GetBool("debug")))
	slog.SetDefault(l.GetSlogLogger())
	return l
}
