package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/vbsix/format"
	"github.com/dhamidi/vbsix/vb6/parser"
)

func newTokenizeCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Lex a VB6 source file and dump its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			result := parser.Tokenize(filename, string(data))
			tokens := result.MustValue()

			var encoder format.TokenEncoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.EncodeTokens(tokens); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()

			printFailures(filename, result.Failures())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format: line or json")

	return cmd
}

// printFailures writes every failure to stderr, one line each.
func printFailures(filename string, failures []parser.Failure) {
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "%s: %s\n", color.CyanString(filename), color.YellowString(f.String()))
	}
}
