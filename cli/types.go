/* types.go
 * Contains the `types` command, listing the registered cup formats
 */

package cli

import (
	"fmt"

	"knockout-cups/cup/api"

	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available cup types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range api.NewAPI(nil, nil).CupTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
