package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/vbsix/vb6/parser"
)

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <file>...",
		Short: "Verify that parsing and reserializing reproduces each file exactly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatches := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read %s: %w", filename, err)
				}
				src := string(data)
				tree := parser.Parse(filename, src).MustValue()
				if tree.Text() == src {
					fmt.Printf("%s %s\n", color.GreenString("ok"), filename)
				} else {
					mismatches++
					fmt.Printf("%s %s\n", color.RedString("MISMATCH"), filename)
				}
			}
			if mismatches > 0 {
				return fmt.Errorf("%d of %d files did not survive the roundtrip", mismatches, len(args))
			}
			return nil
		},
	}
}
