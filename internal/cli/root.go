package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/errors"
	"github.com/skelly-dev/javadoclink/internal/state"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "javadoclink",
		Short: "Generate deep links into Javadoc API documentation",
		Long: `javadoclink builds URLs to modules, packages, classes, methods,
constructors and fields in the Javadoc HTML of any JDK release from 1.1 to 18.

Each release lays out its pages and member anchors differently; the --version
flag picks the layout. Links are relative unless a base URL is configured.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadApp,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.CategoryValidation, "usage: "+cmd.UseLine())
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: .javadoclink.yaml in the working or home directory)")
	flags.StringP("version", "V", "", "Javadoc version to link against (default 17)")
	flags.String("base-url", "", "Documentation root prepended to every link")
	flags.Bool("public", false, "Use the public JDK documentation root for the selected version")
	flags.String("module", "", "Default module for links that take one (default java.base)")
	flags.String("log-level", "", "Log level: trace|debug|info|warn|error|off")
	flags.String("log-format", "", "Log format: auto|console|json")
	flags.StringP("output", "o", "", "Output format: text|table|json|jsonl|yaml (default: text on terminals, jsonl otherwise)")

	// Link Commands
	moduleCmd := &cobra.Command{
		Use:   "module <name>",
		Short: "Link to a module summary page",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE:  RunModule,
	}

	packageCmd := &cobra.Command{
		Use:   "package <module> <package>",
		Short: "Link to a package summary page",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE:  RunPackage,
	}

	classCmd := &cobra.Command{
		Use:   "class <module> <class>",
		Short: "Link to a class page (nested classes use $, e.g. java.util.Map$Entry)",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE:  RunClass,
	}

	methodCmd := &cobra.Command{
		Use:   "method <module> <class> <name> <descriptor>",
		Short: "Link to a method from its JVM descriptor, e.g. (Ljava/lang/String;I)V",
		Args:  usageArgs(cobra.ExactArgs(4)),
		RunE:  RunMethod,
	}
	methodCmd.Flags().Bool("varargs", false, "Render the last array parameter as variable arity")

	constructorCmd := &cobra.Command{
		Use:   "constructor <module> <class> <descriptor>",
		Short: "Link to a constructor from its JVM descriptor",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE:  RunConstructor,
	}
	constructorCmd.Flags().Bool("varargs", false, "Render the last array parameter as variable arity")

	fieldCmd := &cobra.Command{
		Use:   "field <module> <class> <name>",
		Short: "Link to a field",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE:  RunField,
	}

	// Bulk Commands
	batchCmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Resolve a YAML or JSON list of link requests",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE:  RunBatch,
	}
	batchCmd.Flags().String("out", "", "Write results to a file instead of stdout")

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Link every documented member declared in a Java source tree",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE:  RunScan,
	}
	scanCmd.Flags().Bool("include-private", false, "Also link private members")
	scanCmd.Flags().String("out", "", "Write results to a file instead of stdout")
	scanCmd.Flags().Bool("summary", false, "Print a run summary to stderr")
	scanCmd.Flags().String("state", "", "Reuse parse results of unchanged files from this state file (e.g. "+state.DefaultStateFile+")")

	// Additional Commands
	versionsCmd := &cobra.Command{
		Use:   "versions",
		Short: "List supported Javadoc versions and their link layouts",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  RunVersions,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "javadoclink %s\n", version)
		},
	}

	rootCmd.AddCommand(
		moduleCmd,
		packageCmd,
		classCmd,
		methodCmd,
		constructorCmd,
		fieldCmd,
		batchCmd,
		scanCmd,
		versionsCmd,
		versionCmd,
	)

	return rootCmd
}
