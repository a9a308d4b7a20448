package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replace the saved resume with the demo resume",
	Long:  "Loads the sample resume. The current resume is overwritten, so --yes is required.",
	RunE:  runDemo,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the saved resume",
	Long:  "Replaces the resume with an empty one and deletes the saved snapshot. Requires --yes.",
	RunE:  runReset,
}

var (
	demoConfirm  bool
	resetConfirm bool
)

func init() {
	demoCmd.Flags().BoolVarP(&demoConfirm, "yes", "y", false, "Confirm overwriting the current resume")
	resetCmd.Flags().BoolVarP(&resetConfirm, "yes", "y", false, "Confirm erasing the current resume")
	rootCmd.AddCommand(demoCmd, resetCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if !demoConfirm {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "This overwrites the current resume. Re-run with --yes to load the demo.")
		return nil
	}
	return runEdit(cmd, document.ReplaceWith(types.Demo()))
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	reset, err := a.store.Reset(cmd.Context(), resetConfirm)
	if !reset {
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "This erases the current resume. Re-run with --yes to reset.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("resume was reset but the snapshot could not be deleted: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Resume reset")
	return nil
}
