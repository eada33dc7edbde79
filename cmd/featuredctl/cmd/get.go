package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one featured content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := newClient(v)
			if err != nil {
				return err
			}

			item, err := c.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if v.GetBool(keyJSON) {
				return printJSON(cmd.OutOrStdout(), item)
			}
			printItemDetail(cmd.OutOrStdout(), *item)
			return nil
		},
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	return id, nil
}
