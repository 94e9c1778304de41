// Package cli implements billctl, a command-line client that runs ledger
// functions directly against a configured world-state backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"bill_ledger/internal/adapter/contract"
	"bill_ledger/internal/adapter/persistence/worldstate"
	"bill_ledger/internal/config"
	"bill_ledger/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

var version = "dev"

// defaultBackend applies when neither --backend nor WORLD_STATE_BACKEND is
// set. Every billctl command is its own process, so state must outlive it.
const defaultBackend = config.BackendSQLite

type globalOptions struct {
	backend    string
	sqlitePath string
}

// worldStateConfig starts from the environment and applies the flags on top.
func (o *globalOptions) worldStateConfig() (config.WorldStateConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.WorldStateConfig{}, err
	}
	ws := cfg.WorldState
	switch {
	case o.backend != "":
		ws.Backend = o.backend
	case os.Getenv("WORLD_STATE_BACKEND") == "":
		ws.Backend = defaultBackend
	}
	if o.sqlitePath != "" {
		ws.SQLitePath = o.sqlitePath
	}
	if err := config.ValidateBackend(ws.Backend); err != nil {
		return config.WorldStateConfig{}, err
	}
	return ws, nil
}

func (o *globalOptions) openProvider(ctx context.Context, stderr io.Writer) (interfaces.IWorldStateProvider, error) {
	cfg, err := o.worldStateConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Backend == config.BackendMemory {
		fmt.Fprintln(stderr, "warning: memory backend keeps no state after this command exits")
	}
	return worldstate.NewFromConfig(ctx, cfg)
}

// invoke opens the backend, runs one contract function and closes the backend.
func (o *globalOptions) invoke(cmd *cobra.Command, fn string, args ...string) ([]byte, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := o.openProvider(ctx, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	defer provider.Close()

	return contract.NewContract(provider, nil).Invoke(ctx, fn, args)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "billctl",
		Short:         "Issue, pay and query ledger bills",
		Long:          "billctl runs bill ledger functions against the world-state backend selected by --backend or WORLD_STATE_BACKEND. Without either it uses sqlite.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "World-state backend: memory, sqlite, dynamodb or mongo (default sqlite)")
	cmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite-path", "", "SQLite database file (sqlite backend)")

	cmd.AddCommand(newExistsCmd(opts))
	cmd.AddCommand(newIssueCmd(opts))
	cmd.AddCommand(newReadCmd(opts))
	cmd.AddCommand(newPayCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newInvokeCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
