package cli

import (
	"fmt"
	"strconv"

	"bill_ledger/internal/adapter/contract"

	"github.com/spf13/cobra"
)

func printPayload(cmd *cobra.Command, payload []byte) {
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
}

func newExistsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <id>",
		Short: "Report whether a bill exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.invoke(cmd, contract.FnAssetExists, args[0])
			if err != nil {
				return err
			}
			printPayload(cmd, out)
			return nil
		},
	}
}

func newIssueCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "issue <id> <website> <domain> <amount>",
		Short: "Issue a new unpaid bill",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.invoke(cmd, contract.FnIssueBill, args...)
			if err != nil {
				return err
			}
			printPayload(cmd, out)
			return nil
		},
	}
}

func newReadCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Print the stored bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.invoke(cmd, contract.FnReadBill, args[0])
			if err != nil {
				return err
			}
			printPayload(cmd, out)
			return nil
		},
	}
}

func newPayCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.invoke(cmd, contract.FnPayBill, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bill %s paid\n", args[0])
			return nil
		},
	}
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := opts.invoke(cmd, contract.FnDeleteBill, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bill %s deleted\n", args[0])
			return nil
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		website string
		paid    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the paid or unpaid bills of a website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.invoke(cmd, contract.FnListBillsByWebsite, website, strconv.FormatBool(paid))
			if err != nil {
				return err
			}
			printPayload(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&website, "website", "", "Website whose bills are listed")
	cmd.Flags().BoolVar(&paid, "paid", false, "List paid bills instead of unpaid ones")
	_ = cmd.MarkFlagRequired("website")
	return cmd
}

func newInvokeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <function> [args...]",
		Short: "Invoke a ledger function by name",
		Long:  "Invoke runs one ledger function with positional string arguments and prints its JSON payload.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.invoke(cmd, args[0], args[1:]...)
			if err != nil {
				return err
			}
			if len(out) > 0 {
				printPayload(cmd, out)
			}
			return nil
		},
	}
}
