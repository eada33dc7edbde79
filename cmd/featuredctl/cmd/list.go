package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List featured content",
		Long:  "List featured content in insertion order, optionally only the first --limit items.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(v)
			if err != nil {
				return err
			}

			items, err := c.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v.GetBool(keyJSON) {
				return printJSON(out, items)
			}

			if len(items) == 0 {
				fmt.Fprintln(out, "(no content)")
				return nil
			}
			for _, item := range items {
				printItem(out, item)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "return only the first n items (0 = all)")

	return cmd
}
