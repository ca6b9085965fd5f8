package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/vbsix/vb6"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show what a VB6 source file declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}
			src := string(data)

			heading := color.New(color.Bold).SprintFunc()
			switch strings.ToLower(filepath.Ext(filename)) {
			case ".cls":
				result := vb6.ParseClassFile(filename, src)
				class := result.MustValue()
				fmt.Printf("%s %s (version %s)\n", heading("Class"), class.Name, class.Version)
				for _, key := range sortedKeys(class.Properties) {
					fmt.Printf("  %s = %s\n", key, class.Properties[key])
				}
				printFailures(filename, result.Failures())
			case ".frm", ".ctl":
				result := vb6.ParseFormFile(filename, src)
				form := result.MustValue()
				fmt.Printf("%s %s (version %s)\n", heading("Form"), form.Name, form.Version)
				if form.Form != nil {
					printControl(form.Form, 1)
				}
				printFailures(filename, result.Failures())
			default:
				result := vb6.ParseModuleFile(filename, src)
				mod := result.MustValue()
				fmt.Printf("%s %s\n", heading("Module"), mod.Name)
				printFailures(filename, result.Failures())
			}
			return nil
		},
	}
}

func printControl(ctrl *vb6.Control, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s %s\n", indent, color.GreenString(ctrl.Type), ctrl.Name)
	for _, child := range ctrl.Children {
		printControl(child, depth+1)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
