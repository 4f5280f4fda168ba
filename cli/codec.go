package cli

import (
	"fmt"

	"github.com/nyaruka/smscodec"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/gsm7"
	"github.com/spf13/cobra"
)

// hex formats which can be encoded to and decoded from
const (
	formatGSM7       = "gsm7"
	formatGSM7Packed = "gsm7-packed"
	formatUTF16      = "utf16"
)

type unpackedResult struct {
	Hex  string `json:"hex,omitempty"`
	Text string `json:"text,omitempty"`
}

// NewEncodeCmd returns encode command.
func NewEncodeCmd() *cobra.Command {
	format := formatGSM7Packed

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text to hex",
		Long: "Encodes text to hex in the given format\n" +
			"usage:\n" +
			"\tsmstool encode --format gsm7-packed <text>",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(cmd, cmd.Use)
				return
			}

			switch format {
			case formatGSM7:
				hex := gsm7.EncodeUnpacked(args[0])
				logResultCmd(cmd, hex, &unpackedResult{Hex: hex})
			case formatGSM7Packed, formatUTF16:
				result, err := smscodec.EncodeText(args[0], formatEncoding(format))
				if err != nil {
					logErrorCmd(cmd, err)
					return
				}
				logResultCmd(cmd, result.Hex, result)
			default:
				logErrorCmd(cmd, fmt.Errorf("unknown format '%s'", format))
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "hex format: gsm7, gsm7-packed or utf16")
	return cmd
}

// NewDecodeCmd returns decode command.
func NewDecodeCmd() *cobra.Command {
	format := formatGSM7Packed

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hex to text",
		Long: "Decodes hex in the given format to text\n" +
			"usage:\n" +
			"\tsmstool decode --format gsm7-packed <hex>",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(cmd, cmd.Use)
				return
			}

			switch format {
			case formatGSM7:
				text, err := gsm7.DecodeUnpacked(args[0])
				if err != nil {
					logErrorCmd(cmd, err)
					return
				}
				logResultCmd(cmd, text, &unpackedResult{Text: text})
			case formatGSM7Packed, formatUTF16:
				result, err := smscodec.DecodeHex(args[0], formatEncoding(format))
				if err != nil {
					logErrorCmd(cmd, err)
					return
				}
				logResultCmd(cmd, result.Text, result)
			default:
				logErrorCmd(cmd, fmt.Errorf("unknown format '%s'", format))
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "hex format: gsm7, gsm7-packed or utf16")
	return cmd
}

func formatEncoding(format string) models.Encoding {
	if format == formatUTF16 {
		return models.EncodingUTF16
	}
	return models.EncodingGSM7
}
