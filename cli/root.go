/* root.go
 * Contains the root command and the configuration wiring shared by every subcommand
 */

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "cups",
		Short: "Simulate knockout cups",
		Long: `cups builds and plays knockout competitions: single elimination with byes,
double elimination with a losers bracket and a grand final, and stepladders.
Results are printed as a fixed width bracket.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./cups.yaml or $HOME/.config/cups/cups.yaml)")
	rootCmd.PersistentFlags().String("log-level", Default().Logging.Level, "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", Default().Logging.Format, "log format: text or json")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(newPlayCmd(v), newTypesCmd())
	return rootCmd
}

func initConfig(v *viper.Viper) error {
	// Set defaults first so they're available even without a config file
	SetDefaults(v)

	v.SetEnvPrefix("CUPS")
	// e.g. CUPS_CUP_REQUIRE_DOUBLE_WIN for cup.require_double_win
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("cups")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/cups")
	// A missing default config file is fine
	_ = v.ReadInConfig()
	return nil
}
