package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/charlotte/pkg/color"
	"gitlab.com/tinyland/lab/charlotte/pkg/theme"
)

func newColorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Inspect colours and derive lightness variants",
	}
	cmd.AddCommand(newColorInfoCmd())
	cmd.AddCommand(newColorLightnessCmd(a))
	return cmd
}

func newColorInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <hex>...",
		Short: "Print RGB channels, HSL and the nearest 256-colour index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "HEX\tRGB\tHSL\tANSI256")
			for _, arg := range args {
				c, err := color.Parse(arg)
				if err != nil {
					return newCommandError("inspect color", arg, err, "Colours are six hex digits, with or without a leading '#'.")
				}
				h, s, l := c.HSL()
				fmt.Fprintf(tw, "%s\t%d,%d,%d\t%.0f,%.2f,%.2f\t%d\n",
					c, c.Red(), c.Green(), c.Blue(), h, s, l, theme.Ansi256(c))
			}
			return tw.Flush()
		},
	}
}

func newColorLightnessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lightness <hex> <l>...",
		Short: "Print the colour at each lightness in [0, 1]",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return newCommandError("derive lightness", args[0], err, "Colours are six hex digits, with or without a leading '#'.")
			}
			ls := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				l, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return newCommandError("derive lightness", arg, err, "Lightness is a number between 0 and 1.")
				}
				ls = append(ls, l)
			}
			shades, err := c.Shades(ls...)
			if err != nil {
				return newCommandError("derive lightness", c.String(), err, "Lightness is a number between 0 and 1.")
			}
			for i, shade := range shades {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strconv.FormatFloat(ls[i], 'f', -1, 64), shade)
			}
			a.log.With("color", c.String()).Debug(fmt.Sprintf("derived %d shades", len(shades)))
			return nil
		},
	}
}
