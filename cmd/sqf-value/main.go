package main

import (
	"github.com/acorn-io/cmd"
	"github.com/spf13/cobra"
)

func main() {
	cmd.Main(cmd.Command(&SQFValue{}, cobra.Command{
		Use:   "sqf-value",
		Short: "Parse and format SQF value strings",
	}))
}
