package divagov

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/divadao/divagov/distributor"
	"github.com/divadao/divagov/internal/core"
	"github.com/divadao/divagov/sdk"
)

func buildMerkleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merkle",
		Short: "Build and verify claim trees",
	}

	cmd.AddCommand(buildMerkleBuildCmd())
	cmd.AddCommand(buildMerkleVerifyCmd())

	return cmd
}

func buildMerkleBuildCmd() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the claims file of an allocation map",
		Long:  `Reads a JSON object of account addresses to decimal or hex amounts and writes the merkle root with a proof per account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			allocations, err := loadAllocations(inputPath)
			if err != nil {
				return err
			}

			tree, err := distributor.NewBalanceTree(allocations)
			if err != nil {
				return err
			}
			claims, err := tree.ClaimsFile()
			if err != nil {
				return err
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputPath, err)
			}
			defer out.Close()

			if err := distributor.WriteClaimsFile(out, claims); err != nil {
				return err
			}

			sdk.LoggerFrom(cmd.Context()).Infow("Claims file written",
				"path", outputPath, "root", tree.Root().Hex(), "accounts", tree.Len(), "total", tree.Total().String())
			fmt.Fprintln(cmd.OutOrStdout(), tree.Root().Hex())

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file mapping account addresses to amounts")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the claims file to write")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func buildMerkleVerifyCmd() *cobra.Command {
	var claimsPath, account string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the claim of an account against the root of a claims file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(account) {
				return fmt.Errorf("invalid account %q", account)
			}

			f, err := os.Open(claimsPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", claimsPath, err)
			}
			defer f.Close()

			claims, err := distributor.ReadClaimsFile(f)
			if err != nil {
				return err
			}

			claim, ok := claims.Verify(common.HexToAddress(account))
			if !ok {
				return fmt.Errorf("no valid claim for %s under root %s", account, claims.MerkleRoot.Hex())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "index %d amount %s\n", claim.Index, (*big.Int)(claim.Amount).String())

			return nil
		},
	}

	cmd.Flags().StringVar(&claimsPath, "claims", "", "Claims file produced by merkle build")
	cmd.Flags().StringVar(&account, "account", "", "Account to verify")
	_ = cmd.MarkFlagRequired("claims")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func loadAllocations(path string) (map[common.Address]*uint256.Int, error) {
	var raw map[string]*math.HexOrDecimal256
	if err := core.FromFile(path, &raw); err != nil {
		return nil, err
	}

	allocations := make(map[common.Address]*uint256.Int, len(raw))
	for account, amount := range raw {
		if !common.IsHexAddress(account) {
			return nil, fmt.Errorf("invalid account %q", account)
		}
		if amount == nil {
			return nil, fmt.Errorf("missing amount for %s", account)
		}
		v, overflow := uint256.FromBig((*big.Int)(amount))
		if overflow || (*big.Int)(amount).Sign() < 0 {
			return nil, fmt.Errorf("amount of %s out of range", account)
		}
		addr := common.HexToAddress(account)
		if _, dup := allocations[addr]; dup {
			return nil, errors.New("duplicate account " + addr.Hex())
		}
		allocations[addr] = v
	}

	return allocations, nil
}
