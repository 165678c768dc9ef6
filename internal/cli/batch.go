package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/batch"
	"github.com/skelly-dev/javadoclink/internal/errors"
	"github.com/skelly-dev/javadoclink/internal/fileutil"
	"github.com/skelly-dev/javadoclink/internal/logging"
)

func RunBatch(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)
	out, err := OptionalStringFlag(cmd, "out")
	if err != nil {
		return err
	}

	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	reqs, err := batch.Decode(data)
	if err != nil {
		return err
	}

	results, err := a.evaluator().Run(cmd.Context(), reqs)
	if err != nil {
		return err
	}
	if err := a.writeTo(cmd, out, results); err != nil {
		return err
	}

	if failed := results.Failed(); failed > 0 {
		first := results.FirstError()
		return errors.Wrap(first, errors.Classify(first), fmt.Sprintf("%d of %d requests failed", failed, len(results)))
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryFileSystem, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, "failed to read "+path)
	}
	return data, nil
}

// writeTo prints data, or writes it to path when one is given.
func (a *app) writeTo(cmd *cobra.Command, path string, data any) error {
	if path == "" {
		return a.write(cmd.OutOrStdout(), data)
	}

	var buf bytes.Buffer
	if err := a.write(&buf, data); err != nil {
		return err
	}
	changed, err := fileutil.WriteIfChangedTracked(path, buf.Bytes())
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "failed to write "+path)
	}
	logging.FromContext(cmd.Context()).Info().Str("file", path).Bool("changed", changed).Msg("wrote results")
	return nil
}
