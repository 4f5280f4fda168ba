package cli

import "github.com/spf13/cobra"

// NewRootCmd returns the root smstool command with all subcommands added
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smstool",
		Short: "Encode, decode and segment SMS text",
	}

	rootCmd.AddCommand(NewEncodeCmd())
	rootCmd.AddCommand(NewDecodeCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewSegmentsCmd())

	rootCmd.PersistentFlags().BoolVarP(
		&RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	return rootCmd
}
