package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/charlotte/pkg/table"
	"gitlab.com/tinyland/lab/charlotte/pkg/theme"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Resolve declarative table definitions",
	}
	cmd.AddCommand(newTableBuildCmd(a))
	return cmd
}

type buildOptions struct {
	format string
	output string
}

func newTableBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Broadcast a YAML table definition into resolved rows ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableBuild(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or text (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runTableBuild(cmd *cobra.Command, a *app, path string, opts *buildOptions) error {
	format := opts.format
	if format == "" {
		format = a.cfg.Output.Format
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return newCommandError("build table", "opening "+path, err, "Check the path to the table definition.")
		}
		defer f.Close()
		r = f
	}

	def, err := table.ParseDefinition(r)
	if err != nil {
		return newCommandError("build table", "parsing "+path, err, "See the reported field; columns need a header and ids or a shared row_ids list.")
	}
	tbl, err := def.Build()
	if err != nil {
		return newCommandError("build table", "resolving "+path, err, "Per-row attribute lists must have one entry per row id.")
	}
	a.log.WithFields(map[string]any{"file": path, "columns": len(tbl.Columns()), "rows": tbl.Len()}).Debug("table built")

	var data []byte
	switch format {
	case "json":
		data, err = json.MarshalIndent(tbl, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(tbl.Document())
	case "text":
		data = []byte(renderTable(tbl, theme.Current(), a.profile) + "\n")
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return newCommandError("build table", "encoding "+format, err, "Use --format json, yaml or text.")
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
		return newCommandError("build table", "writing "+opts.output, err, "Check that the directory exists and is writable.")
	}
	return nil
}
