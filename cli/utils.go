package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/nyaruka/gocommon/jsonx"
	"github.com/spf13/cobra"
)

// RawOutput raw output mode.
var RawOutput = false

func logJSONCmd(cmd *cobra.Command, iList ...any) {
	for _, i := range iList {
		m, err := jsonx.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

// logResultCmd writes the bare value in raw mode and the full result as JSON otherwise
func logResultCmd(cmd *cobra.Command, raw string, result any) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), raw)
	} else {
		logJSONCmd(cmd, result)
	}
}

func logUsageCmd(cmd *cobra.Command, u string) {
	fmt.Fprint(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n", u))
}

func logErrorCmd(cmd *cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}
