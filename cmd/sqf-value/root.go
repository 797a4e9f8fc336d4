package main

import (
	"github.com/spf13/cobra"
)

type SQFValue struct {
}

func (s *SQFValue) Customize(cmd *cobra.Command) {
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceUsage = true
	cmd.AddCommand(NewParse(s), NewFmt(s))
}

func (s *SQFValue) Run(cmd *cobra.Command, args []string) error {
	return cmd.Usage()
}
