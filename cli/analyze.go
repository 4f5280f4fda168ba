package cli

import (
	"fmt"

	"github.com/nyaruka/smscodec/advisor"
	"github.com/nyaruka/smscodec/core/models"
	"github.com/nyaruka/smscodec/segments"
	"github.com/spf13/cobra"
)

type analyzeResult struct {
	Analysis    *advisor.Analysis         `json:"analysis"`
	Unsupported []advisor.UnsupportedChar `json:"unsupported"`
}

type segmentsResult struct {
	Info     models.SegmentInfo `json:"info"`
	Segments []models.Segment   `json:"segments"`
}

// NewAnalyzeCmd returns analyze command.
func NewAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text>",
		Short: "Recommend an encoding",
		Long: "Recommends an encoding for text and lists characters GSM-7 can't encode\n" +
			"usage:\n" +
			"\tsmstool analyze <text>",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(cmd, cmd.Use)
				return
			}

			analysis := advisor.Analyze(args[0])
			logResultCmd(cmd, analysis.RecommendedEncoding.String(), &analyzeResult{
				Analysis:    analysis,
				Unsupported: advisor.FindUnsupported(args[0]),
			})
		},
	}
}

// NewSegmentsCmd returns segments command.
func NewSegmentsCmd() *cobra.Command {
	encoding := models.EncodingGSM7.String()

	cmd := &cobra.Command{
		Use:   "segments <text>",
		Short: "Split text into segments",
		Long: "Plans and splits text into the segments it would be sent as\n" +
			"usage:\n" +
			"\tsmstool segments --encoding gsm7 <text>",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(cmd, cmd.Use)
				return
			}

			enc, err := models.ParseEncoding(encoding)
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}

			info := segments.Plan(args[0], enc)
			segs := segments.Split(args[0], enc)

			if RawOutput {
				for _, s := range segs {
					fmt.Fprintln(cmd.OutOrStdout(), s.Text)
				}
				return
			}
			logJSONCmd(cmd, &segmentsResult{Info: info, Segments: segs})
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", encoding, "encoding: gsm7 or utf16")
	return cmd
}
