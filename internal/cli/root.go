package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storyport/storyport/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storyport",
	Short: "Storyport - re-tell distant news as if it happened in your country",
	Long: `Storyport renders narrative stories for a reader's own country:
magnitudes are scaled by population, names and places are replaced with
deterministic local equivalents, and casualty figures are anchored to
comparable historical events the reader already knows.

The same story, country, and seed always produce the same output, so
regenerated share images stay pixel-stable.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("storyport v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.storyport/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.storyport")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match STORYPORT_*
	viper.SetEnvPrefix("STORYPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, the config file, and environment variables.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if dir := viper.GetString("data.stories_dir"); dir != "" {
		cfg.Data.StoriesDir = dir
	}
	if dir := viper.GetString("data.countries_dir"); dir != "" {
		cfg.Data.CountriesDir = dir
	}
	if pop := viper.GetInt64("scaling.source_population"); pop > 0 {
		cfg.Scaling.SourcePopulation = pop
	}
	if l := viper.GetString("render.language"); l != "" {
		cfg.Render.Language = l
	}
	if dir := viper.GetString("render.output_dir"); dir != "" {
		cfg.Render.OutputDir = dir
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if ttl := viper.GetDuration("cache.ttl"); ttl > 0 {
		cfg.Cache.TTL = ttl
	}
	if w := viper.GetInt("concurrency.workers"); w > 0 {
		cfg.Concurrency.Workers = w
	}
	if r := viper.GetFloat64("concurrency.renders_per_second"); r > 0 {
		cfg.Concurrency.RendersPerSecond = r
	}
	if b := viper.GetInt("concurrency.burst"); b > 0 {
		cfg.Concurrency.Burst = b
	}
	if p := viper.GetString("store.path"); p != "" {
		cfg.Store.Path = p
	}
	if l := viper.GetString("logging.level"); l != "" {
		cfg.Logging.Level = l
	}

	return cfg
}

// newLogger builds the CLI logger; verbose wins over the configured level.
func newLogger(cfg *model.Config) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
