package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the saved resume",
	Long:  "Applies a single edit to the saved resume and saves the result. Entries are addressed by their position in the list, starting at 0.",
}

var editPersonalCmd = &cobra.Command{
	Use:   "personal <field> <value>",
	Short: "Set a personal info field",
	Long:  "Sets one of fullName, email, phone, city, link, jobTitle or summary.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, document.SetPersonalField(args[0], args[1]))
	},
}

var editAddSet []string

var editAddCmd = &cobra.Command{
	Use:   "add <experience|education|skills>",
	Short: "Append an entry to a list",
	Long:  "Appends a blank entry and fills the fields given with --set field=value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := document.ParseList(args[0])
		if err != nil {
			return err
		}
		fields, err := parseAssignments(editAddSet)
		if err != nil {
			return err
		}
		return runEdit(cmd, addWithFields(list, fields))
	},
}

var editSetCmd = &cobra.Command{
	Use:   "set <list> <index> <field> <value>",
	Short: "Set a field of a list entry",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, index, err := parseAddress(args[0], args[1])
		if err != nil {
			return err
		}
		return runEdit(cmd, atIndex(list, index, func(id string) document.Edit {
			return document.UpdateEntry(list, id, args[2], args[3])
		}))
	},
}

var editRemoveCmd = &cobra.Command{
	Use:   "remove <list> <index>",
	Short: "Remove a list entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, index, err := parseAddress(args[0], args[1])
		if err != nil {
			return err
		}
		return runEdit(cmd, atIndex(list, index, func(id string) document.Edit {
			return document.RemoveEntry(list, id)
		}))
	},
}

var editThemeCmd = &cobra.Command{
	Use:   "theme <color>",
	Short: "Set the theme color",
	Long:  "Sets the accent color. Allowed: " + strings.Join(types.Palette, ", "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, document.SetThemeColor(args[0]))
	},
}

var editDensityCmd = &cobra.Command{
	Use:   "density [compact|comfortable]",
	Short: "Set or toggle the layout density",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runEdit(cmd, document.ToggleDensity())
		}
		return runEdit(cmd, document.SetDensity(types.Density(args[0])))
	},
}

func init() {
	editAddCmd.Flags().StringArrayVar(&editAddSet, "set", nil, "Field assignment field=value (repeatable)")

	editCmd.AddCommand(editPersonalCmd, editAddCmd, editSetCmd, editRemoveCmd, editThemeCmd, editDensityCmd)
	rootCmd.AddCommand(editCmd)
}

// runEdit applies edit to the saved document and saves the result.
func runEdit(cmd *cobra.Command, edit document.Edit) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.store.Update(edit); err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}
	if err := a.save(cmd.Context()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved (%s)\n", a.snaps.Backend().Name())
	return nil
}

func parseAddress(listArg, indexArg string) (document.List, int, error) {
	list, err := document.ParseList(listArg)
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return "", 0, fmt.Errorf("invalid index %q: must be an integer", indexArg)
	}
	return list, index, nil
}

// parseAssignments splits field=value pairs.
func parseAssignments(pairs []string) ([][2]string, error) {
	out := make([][2]string, 0, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid assignment %q: want field=value", pair)
		}
		out = append(out, [2]string{field, value})
	}
	return out, nil
}

// atIndex resolves index to an entry id against the document being edited.
func atIndex(list document.List, index int, edit func(id string) document.Edit) document.Edit {
	return func(doc types.Document) (types.Document, error) {
		id, err := document.EntryIDAt(doc, list, index)
		if err != nil {
			return doc, err
		}
		return edit(id)(doc)
	}
}

// addWithFields appends a blank entry and then sets fields on it.
func addWithFields(list document.List, fields [][2]string) document.Edit {
	return func(doc types.Document) (types.Document, error) {
		next, err := document.AddEntry(list)(doc)
		if err != nil {
			return doc, err
		}
		last := listLen(next, list) - 1
		for _, f := range fields {
			next, err = atIndex(list, last, func(id string) document.Edit {
				return document.UpdateEntry(list, id, f[0], f[1])
			})(next)
			if err != nil {
				return doc, err
			}
		}
		return next, nil
	}
}

func listLen(doc types.Document, list document.List) int {
	switch list {
	case document.ListExperience:
		return len(doc.Experience)
	case document.ListEducation:
		return len(doc.Education)
	case document.ListSkills:
		return len(doc.Skills)
	}
	return 0
}
