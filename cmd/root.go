package cmd

import (
	"codeflat/pkg/flatten"
	"codeflat/pkg/logging"
	"codeflat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codeflat <path>",
	Short: "Codeflat flattens a source tree into a single Markdown document",
	Long: `Codeflat walks a file or directory, skips binaries, lockfiles and
build artifacts, and concatenates the remaining text files into one Markdown
document with a fenced code block per file, for documentation or LLM-context
pipelines.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No path given: a deliberate silent no-op, not a usage error.
		if len(args) == 0 {
			return nil
		}

		inside, err := cmd.Flags().GetBool("inside")
		if err != nil {
			return err
		}
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}

		logger := rootLogger
		if verbose {
			if dbg, err := logging.Setup(true, "codeflat", version.Get().Version); err == nil {
				logger = dbg
				defer logger.Sync()
			}
		}
		if logger == nil {
			logger = zap.NewNop()
		}

		return flatten.Execute(&flatten.Arguments{
			Path:       args[0],
			SaveInside: inside,
		}, logger)
	},
}

// rootLogger is the logger handed in by main; subcommands share it.
var rootLogger *zap.Logger

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().BoolP("inside", "i", false, "place the output file inside the target directory")
	RootCmd.Flags().BoolP("verbose", "v", false, "log skip decisions and traversal progress")
}
