// Package cmd implements the bby CLI commands.
package cmd

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bestbuyapis/bestbuy-go/internal/config"
	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
	"github.com/bestbuyapis/bestbuy-go/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "bby",
		Short: "Query the Best Buy product catalog API",
		Long: "bby is a command-line client for the Best Buy API.\n" +
			"It can look up products, categories, stores, reviews, open-box\n" +
			"listings, recommendations, warranties and in-store availability.",
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.bby.yaml)")
	rootCmd.PersistentFlags().
		String("key", "", "API key (overrides config file and BBY_API_KEY)")
	rootCmd.PersistentFlags().
		Bool("debug", false, "log request diagnostics to stderr")
	rootCmd.PersistentFlags().
		Bool("associative", false, "preserve JSON key order in output")

	cobra.CheckErr(viper.BindPFlag("key", rootCmd.PersistentFlags().Lookup("key")))
	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	cobra.CheckErr(viper.BindPFlag("associative", rootCmd.PersistentFlags().Lookup("associative")))

	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(storesCmd())
	rootCmd.AddCommand(reviewsCmd())
	rootCmd.AddCommand(availabilityCmd())
	rootCmd.AddCommand(openBoxCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(warrantiesCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("BBY")
	viper.AutomaticEnv()
}

// loadConfig reads the config file named by --config, falling back to
// $HOME/.bby.yaml if present, else built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".bby.yaml")
		if _, err := os.Stat(path); err == nil {
			return config.Load(path)
		}
	}
	return config.Default(), nil
}

// newClient builds the API client. Key resolution, lowest to highest:
// config file, BBY_API_KEY environment variable, --key flag.
func newClient() (*bestbuy.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	debug := cfg.API.Debug || viper.GetBool("debug")
	associative := cfg.API.Associative || viper.GetBool("associative")

	opts := []bestbuy.Option{
		bestbuy.WithAPIKey(cfg.API.Key),
		bestbuy.WithAPIKeyFromEnv(),
		bestbuy.WithAPIKey(viper.GetString("key")),
		bestbuy.WithDebug(debug),
		bestbuy.WithAssociative(associative),
		bestbuy.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		bestbuy.WithV1URL(cfg.API.V1URL),
		bestbuy.WithBetaURL(cfg.API.BetaURL),
		bestbuy.WithRootURL(cfg.API.RootURL),
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, bestbuy.WithUserAgent(cfg.API.UserAgent))
	}
	if debug {
		opts = append(opts, bestbuy.WithLogger(logger.New(cfg.Logging.Level, cfg.Logging.Format)))
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, bestbuy.WithRateLimiter(bestbuy.NewRateLimiter(
			cfg.RateLimit.PerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.DailyLimit,
		)))
	}

	return bestbuy.New(opts...), nil
}

// argQuery turns an optional positional argument into a Query: absent
// means everything, an integer is a direct ID, anything else is a filter
// expression handed to the API verbatim.
func argQuery(args []string) bestbuy.Query {
	if len(args) == 0 {
		return bestbuy.All()
	}
	if id, err := strconv.Atoi(args[0]); err == nil {
		return bestbuy.Single(id)
	}
	return bestbuy.Filter(args[0])
}
