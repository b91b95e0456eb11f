package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables read by the CLI
	EnvPrefix = "POLYTONE"

	flagConfig = "config"
	flagOutput = "output"

	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the polytone command. Every command works offline.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "polytone",
		Short:        "Offline tooling for polytone notes and voices",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "path to a config file, flags and POLYTONE_ environment variables take precedence")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputYAML, "output format (yaml|json)")

	rootCmd.AddCommand(
		newDeriveProxyCmd(v),
		newDecodeAckCmd(v),
		newEncodeExecuteCmd(),
		newEncodeQueryCmd(),
		newGenesisCmd(v),
		newVersionCmd(v),
	)

	return rootCmd
}

// initConfig binds the flags of cmd to v, which also reads the environment and the optional config file.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	return nil
}
