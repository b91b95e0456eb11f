package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
	voicetypes "github.com/polytone/polytone-go/modules/apps/polytone/voice/types"
)

const (
	flagCodeHash = "code-hash"
	flagCreator  = "creator"
)

// ProxyAddress is the output of the derive-proxy command.
type ProxyAddress struct {
	Address  string `json:"address"`
	Creator  string `json:"creator"`
	CodeHash string `json:"code_hash"`
	Salt     string `json:"salt"`
}

func newDeriveProxyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive-proxy [connection-id] [counterparty-port] [sender]",
		Short: "Compute the proxy address a voice assigns to a remote sender",
		Long: `Compute the proxy address a voice assigns to a remote sender. The address depends on the
connection the voice channel runs over, the port of the note and the sender on the note chain.`,
		Example: "polytone derive-proxy connection-0 polytonenote cosmos1...",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			codeHash, err := hex.DecodeString(v.GetString(flagCodeHash))
			if err != nil {
				return fmt.Errorf("invalid %s: %w", flagCodeHash, err)
			}

			creator := authtypes.NewModuleAddress(voicetypes.ModuleName)
			if bech32 := v.GetString(flagCreator); bech32 != "" {
				if creator, err = sdk.AccAddressFromBech32(bech32); err != nil {
					return fmt.Errorf("invalid %s: %w", flagCreator, err)
				}
			}

			salt := polytonetypes.ProxySalt(args[0], args[1], args[2])
			proxy, err := polytonetypes.PredictableAddressDeriver{}.DeriveAddress(codeHash, creator, salt)
			if err != nil {
				return err
			}

			return printOutput(cmd, v, ProxyAddress{
				Address:  proxy.String(),
				Creator:  creator.String(),
				CodeHash: hex.EncodeToString(codeHash),
				Salt:     hex.EncodeToString(salt),
			})
		},
	}

	cmd.Flags().String(flagCodeHash, hex.EncodeToString(voicetypes.DefaultProxyCodeHash[:]), "hex encoded proxy code hash")
	cmd.Flags().String(flagCreator, "", "account creating the proxies, defaults to the voice module account")

	return cmd
}
