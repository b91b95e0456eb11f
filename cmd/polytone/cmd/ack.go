package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	polytonetypes "github.com/polytone/polytone-go/modules/apps/polytone/types"
)

const flagBase64 = "base64"

// DecodedAck is the output of the decode-ack command.
type DecodedAck struct {
	Kind     string                 `json:"kind"`
	Success  bool                   `json:"success"`
	Callback polytonetypes.Callback `json:"callback"`
}

func newDecodeAckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode-ack [execute|query] [acknowledgement]",
		Short: "Decode the acknowledgement a voice wrote for a request",
		Long: `Decode the acknowledgement a voice wrote for a request of the given kind. Acknowledgements
which cannot be decoded are reported as a fatal error carrying their base64 encoding.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			bz := []byte(args[1])
			if v.GetBool(flagBase64) {
				if bz, err = base64.StdEncoding.DecodeString(args[1]); err != nil {
					return fmt.Errorf("invalid base64 acknowledgement: %w", err)
				}
			}

			cb := polytonetypes.DecodeAck(bz, kind)
			return printOutput(cmd, v, DecodedAck{
				Kind:     kind.String(),
				Success:  cb.Success(),
				Callback: cb,
			})
		},
	}

	cmd.Flags().Bool(flagBase64, false, "the acknowledgement is base64 encoded")

	return cmd
}

func parseKind(name string) (polytonetypes.RequestKind, error) {
	var kind polytonetypes.RequestKind
	if err := json.Unmarshal([]byte(strconv.Quote(name)), &kind); err != nil {
		return 0, err
	}
	return kind, nil
}
