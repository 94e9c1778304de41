package cli

import (
	"context"
	"fmt"
	"os"

	"bill_ledger/internal/usecase"
	"bill_ledger/internal/usecase/interfaces"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document accepted by `billctl seed`.
type SeedFile struct {
	Bills []SeedBill `yaml:"bills"`
}

type SeedBill struct {
	ID              string `yaml:"id"`
	Website         string `yaml:"website"`
	Domain          string `yaml:"domain"`
	TransactionAmnt string `yaml:"transaction_amnt"`
	Paid            bool   `yaml:"paid"`
}

// LoadSeedFile reads and parses a seed file.
func LoadSeedFile(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, err
	}
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return SeedFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, b := range f.Bills {
		if b.ID == "" {
			return SeedFile{}, fmt.Errorf("invalid %s: bill #%d has no id", path, i+1)
		}
	}
	return f, nil
}

// Apply issues every bill of f, paying the ones marked paid, in a single
// invocation: either all of them are written or none is.
func (f SeedFile) Apply(ctx context.Context, provider interfaces.IWorldStateProvider, ledger *usecase.BillLedger) error {
	return provider.Execute(ctx, func(stub interfaces.IWorldState) error {
		for _, b := range f.Bills {
			if _, err := ledger.IssueBill(ctx, stub, b.ID, b.Website, b.Domain, b.TransactionAmnt); err != nil {
				return err
			}
			if b.Paid {
				if err := ledger.PayBill(ctx, stub, b.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func newSeedCmd(opts *globalOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Issue the bills listed in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := LoadSeedFile(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			provider, err := opts.openProvider(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer provider.Close()

			if err := seed.Apply(ctx, provider, usecase.NewBillLedger()); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d bills\n", len(seed.Bills))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "bills.yaml", "YAML file listing the bills to issue")
	return cmd
}
