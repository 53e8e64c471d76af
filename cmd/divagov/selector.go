package divagov

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/divadao/divagov/types"
)

func buildSelectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "selector <signature>...",
		Short:   "Print the 4-byte selector of each function signature",
		Example: `  divagov selector "cancel(bytes32)" "updateQuorum(uint256)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, signature := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", types.SelectorFromSignature(signature), signature)
			}

			return nil
		},
	}
}
