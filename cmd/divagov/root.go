// Package divagov holds the command line tooling around the governance engine: selector lookup,
// claim tree generation and proposal classification.
package divagov

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/divadao/divagov/sdk"
)

// EnvGovernorConfig names the variable holding the default governor config path.
const EnvGovernorConfig = "DIVAGOV_GOVERNOR_CONFIG"

func BuildDivaGovCmd() *cobra.Command {
	var envFile string

	cmd := cobra.Command{
		Use:           "divagov",
		Short:         "Tooling for Diva governance proposals and claims",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			cmd.SetContext(sdk.WithLogger(cmd.Context(), logger.Sugar()))

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env", ".env", "File with environment defaults")

	cmd.AddCommand(buildSelectorCmd())
	cmd.AddCommand(buildMerkleCmd())
	cmd.AddCommand(buildClassifyCmd())
	cmd.AddCommand(buildProposalCmd())

	return &cmd
}
