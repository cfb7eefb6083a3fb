// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Administer companies, super admin only",
}

var deleteCompanyCmd = &cobra.Command{
	Use:   "delete [company-id]",
	Short: "Delete a cancelled company with all of its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := getClient().DeleteCompany(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the account of the authenticated user",
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete",
	Short: "Cancel the subscription and delete the caller's company",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("account deletion is irreversible, pass --yes to confirm")
		}

		msg, err := getClient().DeleteMyAccount(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var billingPortalCmd = &cobra.Command{
	Use:   "billing-portal",
	Short: "Print a billing portal link for the caller's company",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := getClient().BillingPortal(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to open billing portal: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	deleteAccountCmd.Flags().Bool("yes", false, "Confirm the deletion")

	companyCmd.AddCommand(deleteCompanyCmd)
	accountCmd.AddCommand(deleteAccountCmd)
	accountCmd.AddCommand(billingPortalCmd)

	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(accountCmd)
}
