package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Leopard20/sqf-value/value"
	"github.com/acorn-io/cmd"
	"github.com/spf13/cobra"
)

type Parse struct {
	root *SQFValue

	Raw bool `usage:"Print strings unquoted and unescaped" short:"r"`
}

func NewParse(root *SQFValue) *cobra.Command {
	return cmd.Command(&Parse{root: root}, cobra.Command{
		Use:   "parse [flags] [FILE]",
		Short: "Parse an SQF value string and print its canonical form",
		Args:  cobra.MaximumNArgs(1),
	})
}

func (p *Parse) Run(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value.Parse(string(data)).ToString(!p.Raw))
	return nil
}
