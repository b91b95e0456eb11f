package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

func newEncodeExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode-execute [sender] [actions]",
		Short:   "Encode the packet a note sends for an execute request",
		Long:    "Encode the packet a note sends for an execute request. Actions are a JSON array and are carried verbatim.",
		Example: `polytone encode-execute cosmos1... '[{"send":{"to":"cosmos1..."}}]'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var actions []json.RawMessage
			if err := json.Unmarshal([]byte(args[1]), &actions); err != nil {
				return fmt.Errorf("actions must be a JSON array: %w", err)
			}

			return printPacket(cmd, polytonetypes.NewExecutePacketData(args[0], actions))
		},
	}
}

func newEncodeQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode-query [sender] [queries]",
		Short:   "Encode the packet a note sends for a query request",
		Long:    "Encode the packet a note sends for a query request. Queries are a JSON array of objects with a path and base64 data.",
		Example: `polytone encode-query cosmos1... '[{"path":"/cosmos.bank.v1beta1.Query/Balance","data":"Cg=="}]'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var queries []polytonetypes.QueryRequest
			if err := json.Unmarshal([]byte(args[1]), &queries); err != nil {
				return fmt.Errorf("queries must be a JSON array: %w", err)
			}

			return printPacket(cmd, polytonetypes.NewQueryPacketData(args[0], queries))
		},
	}
}

// printPacket validates data and writes its wire encoding. Packets are always printed as JSON
// since that is what travels over the channel.
func printPacket(cmd *cobra.Command, data polytonetypes.PacketData) error {
	if err := data.ValidateBasic(); err != nil {
		return err
	}

	cmd.Println(string(data.GetBytes()))
	return nil
}
