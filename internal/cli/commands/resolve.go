/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/dynamics/annotation"
	"github.com/suparena/dynamics/catalog"
	"github.com/suparena/dynamics/ddb"
	"github.com/suparena/dynamics/hydrate"
)

type resolveOptions struct {
	manifest   string
	typeName   string
	input      string
	table      string
	key        []string
	consistent bool
}

func (a *app) resolveCommand() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which input key each declared field resolves to",
		Long: `Resolve the fields a manifest declares for one type against an input
document or a DynamoDB item, reporting the key each field is read from and
any required field or format that would fail hydration.

Examples:
  dynlint resolve --type testmodels.Country --input country.json
  dynlint resolve --type Country --table countries --key PK=COUNTRY#US --key SK=META
  dynlint resolve --type Country --table countries --key id:N=249`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "Annotation manifest (default: configured manifest)")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Type name as declared in the manifest")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "JSON or YAML input document, - for stdin")
	cmd.Flags().StringVar(&opts.table, "table", "", "DynamoDB table to read the item from (default: configured table)")
	cmd.Flags().StringArrayVarP(&opts.key, "key", "k", nil, "Key attribute as name=value or name:N=value, repeatable")
	cmd.Flags().BoolVar(&opts.consistent, "consistent", false, "Use a strongly consistent read")
	_ = cmd.MarkFlagRequired("type")
	cmd.MarkFlagsMutuallyExclusive("input", "key")

	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	path := opts.manifest
	if path == "" && a.cfg != nil {
		path = a.cfg.Manifest
	}
	if path == "" {
		return fmt.Errorf("no manifest given and none configured")
	}

	m, err := annotation.LoadManifest(path)
	if err != nil {
		return err
	}
	decls, err := m.Declarations(opts.typeName)
	if err != nil {
		return err
	}
	entry, err := catalog.FromDeclarations(opts.typeName, decls)
	if err != nil {
		return err
	}

	input, err := a.loadInput(cmd, opts)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), entry, input)
}

func (a *app) loadInput(cmd *cobra.Command, opts *resolveOptions) (map[string]any, error) {
	switch {
	case opts.input != "":
		return readDocument(cmd.InOrStdin(), opts.input)

	case len(opts.key) > 0:
		table := opts.table
		if table == "" && a.cfg != nil {
			table = a.cfg.AWS.Table
		}
		if table == "" {
			return nil, fmt.Errorf("no table given and none configured")
		}
		key, err := ddb.ParseKey(opts.key)
		if err != nil {
			return nil, err
		}

		if a.cfg == nil {
			return nil, fmt.Errorf("configuration not loaded")
		}
		client, err := a.newClient(cmd.Context(), a.cfg.AWS)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("reading item", zap.String("table", table), zap.String("key", ddb.FormatKey(key)))
		return ddb.GetItem(cmd.Context(), client, table, key, opts.consistent)

	default:
		return nil, fmt.Errorf("either --input or --key is required")
	}
}

// readDocument decodes a JSON or YAML mapping from a file, or from stdin for "-".
func readDocument(stdin io.Reader, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var doc map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func report(out io.Writer, entry *catalog.Entry, input map[string]any) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen)
	dimColor := color.New(color.FgHiBlack)
	errorColor := color.New(color.FgRed, color.Bold)

	titleColor.Fprintln(out, entry.Name)

	failed := 0
	for _, f := range entry.Fields() {
		key, value, ok := hydrate.Resolve(f, input)
		if !ok {
			if f.Required {
				errorColor.Fprintf(out, "  ✗ %s: required, none of [%s] present\n", f.Name, strings.Join(f.Keys(), ", "))
				failed++
				continue
			}
			dimColor.Fprintf(out, "  - %s: unresolved\n", f.Name)
			continue
		}
		if err := hydrate.CheckFormat(f, value); err != nil {
			errorColor.Fprintf(out, "  ✗ %s <- %s: %v\n", f.Name, key, err)
			failed++
			continue
		}
		via := ""
		if key != f.Name {
			via = " (alias)"
		}
		successColor.Fprintf(out, "  ✓ %s <- %s%s = %v\n", f.Name, key, via, value)
	}

	if failed > 0 {
		return fmt.Errorf("%d fields of %s would fail hydration", failed, entry.Name)
	}
	return nil
}
