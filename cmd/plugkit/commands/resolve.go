package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the resolved plugin installation root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.app.Root()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func (c *CLI) newDepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dep <name>",
		Short: "Print the resolved install path of a sibling package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Dependency(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) newRelativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative <path>",
		Short: "Resolve a root-relative path, rejecting traversal outside the root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Relative(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
