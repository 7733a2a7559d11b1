package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEscapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape <file>",
		Short: "Emit a style sheet as literal-safe generated module text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := cmd.Flags().GetBool("raw")
			if err != nil {
				return err
			}
			text, err := c.app.EscapeFile(args[0], raw)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().Bool("raw", false, "Print the escaped content without the module wrapper")

	return cmd
}
