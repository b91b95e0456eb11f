package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"

	"github.com/polytone/polytone-go/modules/apps/polytone/config"
	proxytypes "github.com/polytone/polytone-go/modules/apps/polytone/proxy/types"
)

var _ servertypes.AppOptions = appOptions{}

// appOptions serves the namespaced node configuration keys from flags, environment and the
// config file, where they are used without the namespace.
type appOptions struct {
	v *viper.Viper
}

// Get implements servertypes.AppOptions.
func (o appOptions) Get(key string) any {
	return o.v.Get(strings.TrimPrefix(key, config.Namespace+"."))
}

func newGenesisCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Print the polytone genesis state with the node configuration applied",
		Long: `Print the default genesis state of the note, voice and proxy submodules with the node
configuration applied. Every option can also be set with a POLYTONE_ prefixed environment variable,
for example POLYTONE_CALLBACK_GAS_LIMIT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromAppOptions(appOptions{v: v})
			if err != nil {
				return err
			}

			gs := cfg.DefaultGenesisState()
			if err := gs.Validate(); err != nil {
				return err
			}

			return printOutput(cmd, v, gs)
		},
	}

	flags := cmd.Flags()
	flags.Uint64(option(config.FlagCallbackGasLimit), 0, "gas limit of a callback delivered by the note")
	flags.String(option(config.FlagController), "", "account allowed to send requests on behalf of others")
	flags.String(option(config.FlagPairConnection), "", "connection the note is paired with")
	flags.String(option(config.FlagPairPort), "", "voice port the note is paired with")
	flags.String(option(config.FlagProxyCodeHash), "", "hex encoded proxy code hash")
	flags.Uint64(option(config.FlagBlockMaxGas), 0, "block gas limit the voice execution budget is computed from")
	flags.StringSlice(option(config.FlagAllowQueries), nil, "query paths a voice serves")
	flags.String(option(config.FlagBatchPolicy), "", "proxy batch policy ("+string(proxytypes.BatchPolicyFailFast)+"|"+string(proxytypes.BatchPolicyCollectAll)+")")

	return cmd
}

// option returns the name of a node configuration key without the namespace.
func option(key string) string {
	return strings.TrimPrefix(key, config.Namespace+".")
}
