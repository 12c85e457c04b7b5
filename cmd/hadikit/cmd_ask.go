package main

import (
	"fmt"
	"strings"

	"github.com/ilkoid/hadikit/internal/views"
	"github.com/spf13/cobra"
)

// newAskCmd - один вопрос стилисту без TUI.
func newAskCmd(c *cli) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the AI stylist a single question",
		Long: `Sends one question to the AI stylist together with the catalog
and prints the advice. If the stylist is unavailable the fallback
reply is printed instead.

Example:
  hadikit ask "I need a retro kit for a weekend match"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := c.components.Ask(cmdContext(cmd), strings.Join(args, " "))
			md := views.NewMarkdown(c.components.Config.UI.MarkdownStyle)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), md.Render(reply, width))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap width for the answer")
	return cmd
}
