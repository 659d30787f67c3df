/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/dynamics/annotation"
	"github.com/suparena/dynamics/catalog"
)

// typeReport summarizes one manifest type that compiled.
type typeReport struct {
	Name      string
	Fields    int
	Accessors int
	Warnings  []string
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Validate annotation manifests",
		Long: `Validate annotation manifests with the rules the catalog applies at runtime:
alias lists, duplicate annotations, required flags, formats and method
signatures. Without arguments the configured manifest is checked.

Examples:
  dynlint check                         # Check the configured manifest
  dynlint check annotations.yaml        # Check a specific file
  dynlint check manifests/*.yaml        # Check several files`,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		if a.cfg == nil || a.cfg.Manifest == "" {
			return fmt.Errorf("no manifest given and none configured")
		}
		paths = []string{a.cfg.Manifest}
	}

	out := cmd.OutOrStdout()
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen)
	warnColor := color.New(color.FgYellow)
	errorColor := color.New(color.FgRed, color.Bold)

	total, failed := 0, 0
	for _, path := range paths {
		m, err := annotation.LoadManifest(path)
		if err != nil {
			total++
			errorColor.Fprintf(out, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		titleColor.Fprintln(out, path)

		for _, name := range m.Names() {
			total++
			report, err := checkType(m, name)
			if err != nil {
				errorColor.Fprintf(out, "  ✗ %s: %v\n", name, err)
				a.logger.Debug("type failed", zap.String("manifest", path), zap.String("type", name), zap.Error(err))
				failed++
				continue
			}
			successColor.Fprintf(out, "  ✓ %s: %d fields, %d accessors\n", report.Name, report.Fields, report.Accessors)
			for _, w := range report.Warnings {
				warnColor.Fprintf(out, "    ! %s\n", w)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, total)
	}
	return nil
}

func checkType(m *annotation.Manifest, name string) (typeReport, error) {
	decls, err := m.Declarations(name)
	if err != nil {
		return typeReport{}, err
	}
	entry, err := catalog.FromDeclarations(name, decls)
	if err != nil {
		return typeReport{}, err
	}

	report := typeReport{Name: name, Fields: len(entry.Fields())}
	for _, acc := range entry.Accessors() {
		report.Accessors++
		if acc.Verb == catalog.VerbUnknown {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s is not a get or set accessor and will always be rejected", acc.Method))
		}
	}
	return report, nil
}
