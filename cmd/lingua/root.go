package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/oukeidos/lingua/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := translateOptions{}

	cmd := &cobra.Command{
		Use:   "lingua",
		Short: "Translate text between languages with persisted history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if hasAnyFlagSet(cmd) {
					_ = cmd.Usage()
					return fmt.Errorf("text to translate is required")
				}
				return cmd.Help()
			}
			if isSubcommand(cmd, args[0]) {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return runTranslate(cmd, args, &opts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.lingua.yaml)")

	addTranslateFlags(cmd, &opts)

	viper.BindPFlag("translate.from", cmd.Flags().Lookup("from"))
	viper.BindPFlag("translate.to", cmd.Flags().Lookup("to"))
	viper.BindPFlag("model", cmd.Flags().Lookup("model"))

	cmd.AddCommand(
		newHistoryCmd(),
		newLanguagesCmd(),
		newKeysCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

var cfgFile string

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lingua")
	}

	viper.SetEnvPrefix("LINGUA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
