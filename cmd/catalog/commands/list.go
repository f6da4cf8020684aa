package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/catalog"
	"github.com/mytheresa/product-categories/tui"
)

func newListCmd(e *env) *cobra.Command {
	var (
		owner      string
		query      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered product table",
		Example: `  catalog list
  catalog list --owner Anna
  catalog list --query " bread " --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			res := c.Browse(catalog.Criteria{Owner: owner, Query: query})

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res.Products)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(res.Products))
			return err
		},
	}

	cmd.Flags().StringVar(&owner, "owner", catalog.AllOwners, "Show only products of this owner")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive product name search")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
