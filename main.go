package main

import (
	"fmt"
	"os"

	"fjacquet/nubank-analyzer/cmd/analyze"
	"fjacquet/nubank-analyzer/cmd/categorize"
	"fjacquet/nubank-analyzer/cmd/export"
	"fjacquet/nubank-analyzer/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
