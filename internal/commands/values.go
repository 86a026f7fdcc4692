package commands

import (
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/batch"
)

// valueOptions are the flags that describe one raw value.
type valueOptions struct {
	raw     string
	literal bool
	null    bool
}

func (o *valueOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.raw, "value", "", "Value as typed in the form")
	cmd.Flags().BoolVar(&o.literal, "literal", false, "Decode --value as a JSON scalar (12, true, null, \"x\")")
	cmd.Flags().BoolVar(&o.null, "null", false, "Use no value at all")
	cmd.MarkFlagsMutuallyExclusive("null", "value")
}

func (o *valueOptions) value() (any, error) {
	switch {
	case o.null:
		return nil, nil
	case o.literal:
		return batch.ParseLiteral(o.raw)
	}
	return o.raw, nil
}

func parseTypeFlag(name, value string) (procvar.Type, error) {
	if value == "" {
		return 0, fmt.Errorf("--%s is required", name)
	}
	t, err := procvar.ParseType(value)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}

// issueView is the report shape of one procvar.Issue.
type issueView struct {
	Path    string `json:"path" yaml:"path"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

func viewIssues(iss procvar.Issues) []issueView {
	out := make([]issueView, 0, len(iss))
	for _, it := range iss {
		out = append(out, issueView{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint})
	}
	return out
}

func outputFormat(cmd *cobra.Command, flagValue, configured string) (string, error) {
	format := configured
	if cmd.Flags().Changed("output") || format == "" {
		format = flagValue
	}
	switch format {
	case "text", "json", "yaml":
		return format, nil
	}
	return "", errors.New("unsupported output format " + format + " (text, json, yaml)")
}
