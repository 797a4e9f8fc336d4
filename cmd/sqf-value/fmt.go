package main

import (
	"bytes"
	"fmt"
	"os"

	sqfvalue "github.com/Leopard20/sqf-value"
	"github.com/acorn-io/cmd"
	"github.com/spf13/cobra"
)

type Fmt struct {
	root *SQFValue
}

func NewFmt(root *SQFValue) *cobra.Command {
	return cmd.Command(&Fmt{root: root}, cobra.Command{
		Use:   "fmt [flags] FILE...",
		Short: "Canonicalize files in place, writing back only when changed",
		Args:  cobra.MinimumNArgs(1),
	})
}

func (f *Fmt) Run(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", arg, err)
		}

		newData := sqfvalue.Format(data)
		if !bytes.Equal(data, newData) {
			if err := os.WriteFile(arg, newData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
