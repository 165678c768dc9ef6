package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/batch"
	"github.com/skelly-dev/javadoclink/internal/logging"
	"github.com/skelly-dev/javadoclink/internal/output"
)

// LinkResult is the output of the single-link commands.
type LinkResult struct {
	Kind    string `json:"kind" yaml:"kind"`
	Version string `json:"version" yaml:"version"`
	Target  string `json:"target" yaml:"target"`
	URL     string `json:"url" yaml:"url"`
}

func (r LinkResult) TextLines() []string {
	return []string{r.URL}
}

func (r LinkResult) TableData() output.Data {
	return output.Data{
		Headers: []string{"kind", "version", "target", "url"},
		Rows:    [][]string{{r.Kind, r.Version, r.Target, r.URL}},
	}
}

func RunModule(cmd *cobra.Command, args []string) error {
	return runLink(cmd, batch.Request{Kind: "module", Module: args[0]}, args[0])
}

func RunPackage(cmd *cobra.Command, args []string) error {
	return runLink(cmd, batch.Request{Kind: "package", Module: args[0], Package: args[1]}, args[1])
}

func RunClass(cmd *cobra.Command, args []string) error {
	return runLink(cmd, batch.Request{Kind: "class", Module: args[0], Class: args[1]}, args[1])
}

func RunMethod(cmd *cobra.Command, args []string) error {
	varargs, err := cmd.Flags().GetBool("varargs")
	if err != nil {
		return fmt.Errorf("failed to read --varargs flag: %w", err)
	}
	req := batch.Request{
		Kind:       "method",
		Module:     args[0],
		Class:      args[1],
		Name:       args[2],
		Descriptor: args[3],
		Varargs:    varargs,
	}
	return runLink(cmd, req, args[1]+"#"+args[2]+args[3])
}

func RunConstructor(cmd *cobra.Command, args []string) error {
	varargs, err := cmd.Flags().GetBool("varargs")
	if err != nil {
		return fmt.Errorf("failed to read --varargs flag: %w", err)
	}
	req := batch.Request{
		Kind:       "constructor",
		Module:     args[0],
		Class:      args[1],
		Descriptor: args[2],
		Varargs:    varargs,
	}
	return runLink(cmd, req, args[1]+"#<init>"+args[2])
}

func RunField(cmd *cobra.Command, args []string) error {
	return runLink(cmd, batch.Request{Kind: "field", Module: args[0], Class: args[1], Name: args[2]}, args[1]+"#"+args[2])
}

func runLink(cmd *cobra.Command, req batch.Request, target string) error {
	a := appFrom(cmd)
	url, err := a.evaluator().Evaluate(req)
	if err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug().
		Str("kind", req.Kind).
		Str("version", a.cfg.Version).
		Str("url", url).
		Msg("resolved link")

	return a.write(cmd.OutOrStdout(), LinkResult{
		Kind:    req.Kind,
		Version: a.cfg.Version,
		Target:  target,
		URL:     url,
	})
}
