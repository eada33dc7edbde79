package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vyrodovalexey/featured-content/internal/model"
)

func newCreateCmd(v *viper.Viper) *cobra.Command {
	var input model.NewContentItem

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a featured content item",
		Long:  "Create a featured content item. The server assigns the id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient(v)
			if err != nil {
				return err
			}

			item, err := c.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			if v.GetBool(keyJSON) {
				return printJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created content %d\n", item.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Title, "title", "", "card title")
	flags.StringVar(&input.Description, "description", "", "card description")
	flags.StringVar(&input.ImageURL, "image-url", "", "card image URL")
	flags.StringVar(&input.LinkURL, "link-url", "", "card link URL")

	for _, name := range []string{"title", "description", "image-url", "link-url"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
