package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/vbsix/project"
	"github.com/dhamidi/vbsix/vb6/parser"
)

// checkConfig is read from .vbsix.yaml in the checked directory.
type checkConfig struct {
	Ignore      []string `yaml:"ignore"`
	MaxFailures int      `yaml:"max_failures"`
}

const configName = ".vbsix.yaml"

func loadCheckConfig(dir string) (*checkConfig, error) {
	cfg := &checkConfig{}
	data, err := os.ReadFile(filepath.Join(dir, configName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", configName, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configName, err)
	}
	return cfg, nil
}

func (cfg *checkConfig) ignores(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range cfg.Ignore {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Parse every VB6 source file under a directory and report defects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := loadCheckConfig(dir)
			if err != nil {
				return err
			}

			paths, err := project.Scan(dir)
			if err != nil {
				return err
			}
			var files []string
			for _, path := range paths {
				if strings.EqualFold(filepath.Ext(path), ".vbp") || cfg.ignores(path) {
					continue
				}
				files = append(files, path)
			}

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetDescription("checking"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			total := 0
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				failures := parser.Parse(path, string(data)).Failures()
				bar.Add(1)
				if len(failures) > 0 {
					total += len(failures)
					fmt.Println(color.RedString(path))
					for _, f := range failures {
						fmt.Printf("  %s\n", color.YellowString(f.String()))
					}
				}
			}
			bar.Finish()

			if total > cfg.MaxFailures {
				return fmt.Errorf("%d failures in %d files (allowed: %d)", total, len(files), cfg.MaxFailures)
			}
			fmt.Printf("%s %d files, %d failures\n", color.GreenString("ok"), len(files), total)
			return nil
		},
	}
}
