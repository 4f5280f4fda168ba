package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nyaruka/smscodec/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
