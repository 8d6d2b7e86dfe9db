package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dtrlanz/markhor-sub000/pkg/config"
	"github.com/dtrlanz/markhor-sub000/pkg/workspace"
)

// resolveWorkspacePath picks the workspace directory: --workspace wins,
// then the user config's default_workspace, then the current directory.
func resolveWorkspacePath(f *rootFlags) (string, error) {
	if f.workspacePath != "" {
		return f.workspacePath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DefaultWorkspace != "" {
		return cfg.DefaultWorkspace, nil
	}
	return os.Getwd()
}

func openWorkspace(f *rootFlags) (*workspace.Workspace, error) {
	path, err := resolveWorkspacePath(f)
	if err != nil {
		return nil, err
	}
	return workspace.Open(path)
}

func newWorkspaceCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "create, inspect, and remove workspaces",
	}

	cmd.AddCommand(newWorkspaceCreateCmd(flags))
	cmd.AddCommand(newWorkspaceListCmd(flags))
	cmd.AddCommand(newWorkspaceDeleteCmd(flags))
	cmd.AddCommand(newWorkspaceInfoCmd(flags))
	return cmd
}

func newWorkspaceCreateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "create <path>",
		Short: "initialize a new workspace at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspace.Create(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created workspace %s at %s\n", ws.ID(), ws.Root())
			return nil
		},
	}
}

func newWorkspaceListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list folders and documents in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			folders, err := ws.ListFolders()
			if err != nil {
				return err
			}
			for _, folder := range folders {
				fmt.Fprintf(out, "%s/\n", folder.Name())
			}

			docs, err := ws.ListDocuments()
			if err != nil {
				return err
			}
			for _, doc := range docs {
				fmt.Fprintf(out, "%s\n", doc.Base())
			}
			return nil
		},
	}
}

func newWorkspaceDeleteCmd(flags *rootFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "delete the workspace's entire directory tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("refusing to delete %s without --force", ws.Root())
			}
			return os.RemoveAll(ws.Root())
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "actually delete the workspace directory")
	return cmd
}

func newWorkspaceInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "print the workspace id and root path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id:   %s\nroot: %s\n", ws.ID(), ws.Root())
			return nil
		},
	}
}
