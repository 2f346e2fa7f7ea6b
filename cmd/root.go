package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "brachi",
	Short: "Constant-thrust travel calculators",
	Long:  "Brachi computes brachistochrone transfers, relativistic rocket trips, and torch-drive journeys between planets and nearby stars.",
	RunE:  runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .brachi.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".brachi")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("BRACHI")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault launches the TUI when stderr is a terminal, so a bare
// `brachi` lands in the interactive forms. Piped invocations get help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if !isStderrTTY() {
		return cmd.Help()
	}
	// Delegate to the tui subcommand.
	return runTUI(tuiCmd, nil)
}
