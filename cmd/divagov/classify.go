package divagov

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	divagovroot "github.com/divadao/divagov"
	"github.com/divadao/divagov/internal/core"
	"github.com/divadao/divagov/internal/core/classifier"
	"github.com/divadao/divagov/types"
)

func buildClassifyCmd() *cobra.Command {
	var configPath, proposalPath, timelock string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the delay and threshold tiers a proposal would be given",
		Long: `Classifies the calls of a proposal request against the selector table of a governor config.
The config path defaults to $` + EnvGovernorConfig + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(EnvGovernorConfig)
			}
			if configPath == "" {
				return errors.New("no governor config: pass --config or set " + EnvGovernorConfig)
			}
			if !common.IsHexAddress(timelock) {
				return fmt.Errorf("invalid timelock address %q", timelock)
			}

			cfg, err := loadGovernorConfig(configPath)
			if err != nil {
				return err
			}
			req, err := loadProposalRequest(proposalPath)
			if err != nil {
				return err
			}

			cls, err := classifier.New(common.HexToAddress(timelock), cfg.Selectors)
			if err != nil {
				return err
			}
			delay, threshold, err := cls.Classify(req.Calls())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "delay:     %s (%s)\n", delay, cfg.Delays.For(delay))
			fmt.Fprintf(out, "threshold: %s (%d%%)\n", threshold, threshold.RequiredPercent())

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Governor config JSON")
	cmd.Flags().StringVar(&proposalPath, "proposal", "", "Proposal request JSON")
	cmd.Flags().StringVar(&timelock, "timelock", "", "Address of the timelock bound to the governor")
	_ = cmd.MarkFlagRequired("proposal")
	_ = cmd.MarkFlagRequired("timelock")

	return cmd
}

func buildProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Inspect proposal requests",
	}

	cmd.AddCommand(buildProposalIDCmd())

	return cmd
}

func buildProposalIDCmd() *cobra.Command {
	var proposalPath, governor string

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print the proposal id, description hash and timelock salt of a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadProposalRequest(proposalPath)
			if err != nil {
				return err
			}
			id, err := req.ID()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:              %s\n", id.Hex())
			fmt.Fprintf(out, "descriptionHash: %s\n", req.DescriptionHash().Hex())
			if governor != "" {
				if !common.IsHexAddress(governor) {
					return fmt.Errorf("invalid governor address %q", governor)
				}
				salt := divagovroot.TimelockSalt(common.HexToAddress(governor), req.DescriptionHash())
				fmt.Fprintf(out, "salt:            %s\n", salt.Hex())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&proposalPath, "proposal", "", "Proposal request JSON")
	cmd.Flags().StringVar(&governor, "governor", "", "Governor address, to derive the timelock salt")
	_ = cmd.MarkFlagRequired("proposal")

	return cmd
}

func loadGovernorConfig(path string) (*types.GovernorConfig, error) {
	var cfg types.GovernorConfig
	if err := core.FromFile(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Selectors.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadProposalRequest(path string) (*divagovroot.ProposalRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return divagovroot.NewProposalRequest(f)
}
