package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/charlotte/pkg/drawer"
)

func newDrawerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drawer",
		Short: "Compute drawer and sub-menu class transitions",
	}
	cmd.AddCommand(newDrawerToggleCmd(a))
	cmd.AddCommand(newDrawerMenuCmd(a))
	cmd.AddCommand(newDrawerIDsCmd())
	return cmd
}

func newDrawerToggleCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "toggle [current-class]",
		Short: "Print the drawer class after one toggle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current := drawer.New(base).Class()
			if len(args) == 1 {
				current = args[0]
			}
			next := drawer.ToggleClass(base, current)
			a.log.WithFields(map[string]any{"from": current, "to": next}).Debug("drawer toggled")
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base class list of an open drawer")
	return cmd
}

func newDrawerMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <current-class>",
		Short: "Print the sub-menu class after one toggle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current := strings.TrimSpace(args[0])
			if current != drawer.ShowMenu && current != drawer.HideMenu {
				return newCommandError("toggle menu", current, fmt.Errorf("unknown menu class %q", current),
					fmt.Sprintf("Use %q or %q.", drawer.ShowMenu, drawer.HideMenu))
			}
			next := drawer.ToggleMenu(current)
			a.log.WithFields(map[string]any{"from": current, "to": next}).Debug("menu toggled")
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}

func newDrawerIDsCmd() *cobra.Command {
	var instance string
	cmd := &cobra.Command{
		Use:   "ids <name> [submenu...]",
		Short: "Print the component ids of a multi item as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := drawer.NewMultiItem(args[0], "", args[1:], instance)
			out := map[string]any{
				"name":    item.Name,
				"submenu": item.Submenu,
				"item":    item.ItemID(),
				"arrow":   item.ArrowID(),
				"class":   item.Class(),
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return newCommandError("encode ids", item.Name, err, "")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&instance, "instance", "", "Instance id (generated when empty)")
	return cmd
}
