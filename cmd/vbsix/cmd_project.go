package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/vbsix/project"
)

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project [dir]",
		Short: "Show the contents of the .vbp project in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			proj, err := project.LoadFrom(dir)
			if err != nil {
				return err
			}

			heading := color.New(color.Bold).SprintFunc()
			fmt.Printf("%s %s\n", heading("Project"), proj.Name)
			if proj.Title != "" {
				fmt.Printf("  Title:   %s\n", proj.Title)
			}
			if proj.Startup != "" {
				fmt.Printf("  Startup: %s\n", proj.Startup)
			}
			for _, src := range proj.Sources {
				if src.Name != "" {
					fmt.Printf("  %s\t%s\t%s\n", color.GreenString(src.Kind.String()), src.Name, src.Path)
				} else {
					fmt.Printf("  %s\t%s\n", color.GreenString(src.Kind.String()), src.Path)
				}
			}
			for _, ref := range proj.References {
				fmt.Printf("  %s\t%s\n", color.CyanString("Reference"), ref)
			}
			return nil
		},
	}
}
