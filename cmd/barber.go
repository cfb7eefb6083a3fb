// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var barberCmd = &cobra.Command{
	Use:   "barber",
	Short: "Manage barbers and their partnership terms",
}

var sendTermCmd = &cobra.Command{
	Use:   "send-term [barber-id]",
	Short: "Email the partnership term to a barber",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		termID, _ := cmd.Flags().GetString("term-id")

		msg, err := getClient().SendTerm(cmd.Context(), args[0], termID)
		if err != nil {
			return fmt.Errorf("failed to send term: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var termStatusCmd = &cobra.Command{
	Use:   "term-status [barber-id]",
	Short: "Show whether a barber accepted the active term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := getClient().TermStatus(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get term status: %w", err)
		}

		acceptedAt := "-"
		if status.AcceptedAt != nil {
			acceptedAt = status.AcceptedAt.Format(time.RFC3339)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ACTIVE TERM\tVERSION\tACCEPTED\tACCEPTED AT")
		fmt.Fprintf(w, "%v\t%s\t%v\t%s\n", status.HasActiveTerm, status.TermVersion, status.Accepted, acceptedAt)
		return w.Flush()
	},
}

func setActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [barber-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := getClient().SetBarberActive(cmd.Context(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to %s barber: %w", use, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func init() {
	sendTermCmd.Flags().String("term-id", "", "Send this term instead of the company's active one")

	barberCmd.AddCommand(sendTermCmd)
	barberCmd.AddCommand(termStatusCmd)
	barberCmd.AddCommand(setActiveCmd("activate", "Open the barber's schedule, requires the active term to be accepted", true))
	barberCmd.AddCommand(setActiveCmd("deactivate", "Close the barber's schedule", false))

	rootCmd.AddCommand(barberCmd)
}
