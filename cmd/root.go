package cmd

import (
	"fmt"
	"os"

	"github.com/quarrylane/pastime/cmd/anagrams"
	"github.com/quarrylane/pastime/cmd/benford"
	"github.com/quarrylane/pastime/cmd/bisect"
	"github.com/quarrylane/pastime/cmd/boxtext"
	"github.com/quarrylane/pastime/cmd/easter"
	"github.com/quarrylane/pastime/cmd/fsquad"
	"github.com/quarrylane/pastime/cmd/gcd"
	"github.com/quarrylane/pastime/cmd/happy"
	"github.com/quarrylane/pastime/cmd/hyper"
	"github.com/quarrylane/pastime/cmd/leapyear"
	"github.com/quarrylane/pastime/cmd/lisper"
	"github.com/quarrylane/pastime/cmd/match"
	"github.com/quarrylane/pastime/cmd/miles"
	"github.com/quarrylane/pastime/cmd/ordinal"
	"github.com/quarrylane/pastime/cmd/pack"
	"github.com/quarrylane/pastime/cmd/perms"
	"github.com/quarrylane/pastime/cmd/roman"
	"github.com/quarrylane/pastime/cmd/tutney"
	"github.com/quarrylane/pastime/cmd/weekday"
	"github.com/quarrylane/pastime/cmd/worksheet"
	"github.com/quarrylane/pastime/internal/pkg/logger"
	"github.com/quarrylane/pastime/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "pastime",
	Short:   "pastime passes the time for you",
	Long:    fmt.Sprintf("pastime %s - A drawer full of recreational mathematics\n\nString matching, calendrical reckoning, number games and other\nsmall diversions, one subcommand each.", version.GetVersion()),
	Version: version.GetFullVersion(),
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommandPalattes() {
	rootCmd.AddCommand(match.MatchCmd)
	rootCmd.AddCommand(easter.EasterCmd)
	rootCmd.AddCommand(leapyear.LeapyearCmd)
	rootCmd.AddCommand(weekday.WeekdayCmd)
	rootCmd.AddCommand(gcd.GcdCmd)
	rootCmd.AddCommand(happy.HappyCmd)
	rootCmd.AddCommand(pack.PackCmd)
	rootCmd.AddCommand(benford.BenfordCmd)
	rootCmd.AddCommand(bisect.BisectCmd)
	rootCmd.AddCommand(hyper.HyperCmd)
	rootCmd.AddCommand(perms.PermsCmd)
	rootCmd.AddCommand(anagrams.AnagramsCmd)
	rootCmd.AddCommand(roman.RomanCmd)
	rootCmd.AddCommand(tutney.TutneyCmd)
	rootCmd.AddCommand(ordinal.OrdinalCmd)
	rootCmd.AddCommand(boxtext.BoxtextCmd)
	rootCmd.AddCommand(miles.MilesCmd)
	rootCmd.AddCommand(fsquad.FsquadCmd)
	rootCmd.AddCommand(worksheet.WorksheetCmd)
	rootCmd.AddCommand(lisper.LisperCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()

	addSubCommandPalattes()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pastime/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Priority order for config files:
		// 1. ~/.config/pastime/config.yaml (preferred, with directory for other files)
		// 2. ~/.config/pastime.yaml (XDG standard)
		// 3. ~/.pastime.yaml (legacy)
		viper.AddConfigPath(home + "/.config/pastime")
		viper.AddConfigPath(home + "/.config")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")

		// Try "config" name first (in ~/.config/pastime/config.yaml)
		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			// Fall back to "pastime" name
			viper.SetConfigName("pastime")
		}
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
