// Package root assembles the markhor CLI's command tree: a thin cobra
// wrapper over pkg/workspace, pkg/job, pkg/recipe, and pkg/extension. The
// core library never imports this package; it only talks back through
// the interfaces in pkg/provider and pkg/extension.
package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it against args, wiring
// stdin/stdout/stderr the way a test harness or a real terminal would.
func Execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}

// NewRootCmd builds the markhor command tree.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "markhor",
		Short: "markhor manages a local, file-backed document workspace",
		Long: "markhor stores documents on disk as content-addressed files, " +
			"indexes them for semantic search, and runs chat jobs over them " +
			"through pluggable chat/embedding/chunking extensions.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			flags.closeLogFile()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&flags.workspacePath, "workspace", "", "path to the workspace (default: config default_workspace, then the current directory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "debug logging (overrides -v/-q)")
	cmd.PersistentFlags().StringVar(&flags.logFilePath, "log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newWorkspaceCmd(&flags))
	cmd.AddCommand(newImportCmd(&flags))
	cmd.AddCommand(newChatCmd(&flags))
	cmd.AddCommand(newSearchCmd(&flags))
	cmd.AddCommand(newShowCmd(&flags))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// errPluginsNotSupported is returned by --plugins when a command is asked
// to load extensions this binary doesn't know how to host. Concrete
// extension hosting (e.g. spawning a plugin subprocess) is an external
// collaborator the core only defines the registry interface for; no such
// host ships in this binary.
var errPluginsNotSupported = errors.New("plugin loading is not implemented in this build; register extensions programmatically instead")
