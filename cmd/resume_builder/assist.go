package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Improve the saved resume with AI",
	Long:  "Generates a profile summary, rewrites an experience description or suggests skills using the Gemini API, then saves the result.",
}

var assistSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate a professional summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAssist(cmd, func(ctx context.Context, a *app, editor *assist.Editor, p *observability.Printer) (bool, error) {
			summary, applied, err := editor.GenerateSummaryInto(ctx)
			if applied {
				p.PrintText("SUMMARY", summary)
			}
			return applied, err
		})
	},
}

var assistEnhanceCmd = &cobra.Command{
	Use:   "enhance <index>",
	Short: "Rewrite an experience description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: must be an integer", args[0])
		}
		return runAssist(cmd, func(ctx context.Context, a *app, editor *assist.Editor, p *observability.Printer) (bool, error) {
			id, err := document.EntryIDAt(a.store.Current(), document.ListExperience, index)
			if err != nil {
				return false, err
			}
			text, applied, err := editor.EnhanceExperience(ctx, id)
			if applied {
				p.PrintText("DESCRIPTION", text)
			}
			return applied, err
		})
	},
}

var assistSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Suggest skills for the target job title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAssist(cmd, func(ctx context.Context, a *app, editor *assist.Editor, p *observability.Printer) (bool, error) {
			added, err := editor.SuggestSkillsInto(ctx)
			p.PrintSuggestions("ADDED SKILLS", added)
			return len(added) > 0, err
		})
	},
}

func init() {
	assistCmd.AddCommand(assistSummaryCmd, assistEnhanceCmd, assistSkillsCmd)
	rootCmd.AddCommand(assistCmd)
}

type assistAction func(ctx context.Context, a *app, editor *assist.Editor, p *observability.Printer) (applied bool, err error)

// runAssist runs action against the saved resume and saves it when the
// action changed something.
func runAssist(cmd *cobra.Command, action assistAction) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	editor, err := a.editor(ctx)
	if err != nil {
		return err
	}
	if !editor.Available() {
		return errNoAPIKey
	}

	applied, err := action(ctx, a, editor, observability.NewPrinter(cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("assist failed: %w", err)
	}
	if !applied {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes")
		return nil
	}
	return a.save(ctx)
}
