package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"chyp8vm/emu/clock"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [path/ROM]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Start,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	flags.Int("ips", clock.DefaultIPS, "instructions executed per second")
	flags.Int("timer-hz", clock.DefaultTimerHz, "delay and sound timer rate in Hz")
	flags.Bool("legacy", false, "use the COSMAC VIP behaviour for shifts, BNNN and FX55/FX65")
	flags.String("display", displayWindow, "display backend: window, terminal or none")
	flags.Float64("scale", 10, "side length of a pixel in the window")
	flags.Bool("debug", false, "log every executed instruction")
	flags.BoolP("quiet", "q", false, "only log errors")

	for _, key := range []string{"ips", "timer-hz", "legacy", "display", "scale", "debug", "quiet"} {
		cobra.CheckErr(viper.BindPFlag(strings.ReplaceAll(key, "-", "_"), flags.Lookup(key)))
	}

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(dumpCmd)
}

func Execute() {
	logger := log.NewWithConfig(log.DefaultConfig())
	os.Exit(execute(context.Background(), logger))
}

// execute runs the command line and returns the process exit status.
func execute(ctx context.Context, logger *log.Logger) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", log.Err(err))
		return 1
	}
	return 0
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("chyp8")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
