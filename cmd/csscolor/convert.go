package main

import (
	"fmt"

	"github.com/npillmayer/csscolor/csscolor"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another unit",
	Long: `Convert a CSS color value to another unit.

Without --to the color is printed in its own unit, normalized. Colors with an
alpha channel are promoted to rgba or hsla unless --strict is given, which
refuses any conversion that would lose the alpha channel.

Examples:
  csscolor convert "#6495ed" --to nickname
  csscolor convert "rgba(10, 20, 30, 0.5)" --to hsl
  csscolor convert "rgba(10, 20, 30, 0.5)" --to hex --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var (
	convertTo     string
	convertStrict bool
)

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target unit (hex, shortHex, nickname, rgb, rgba, hsl, hsla)")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail instead of promoting colors with alpha")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	var c csscolor.Color
	switch m := csscolor.Parse(args[0]).Match(); m {
	case m.Nothing():
		return fmt.Errorf("%q: %w", args[0], csscolor.ErrInvalidColor)
	case m.Just(&c):
	}
	u := c.Unit()
	if convertTo != "" {
		var err error
		if u, err = unitFlag(convertTo); err != nil {
			return err
		}
	}
	if !convertStrict {
		fmt.Fprintln(cmd.OutOrStdout(), c.ConvertTo(u))
		return nil
	}
	out, err := c.Strict(u).Unwrap()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// unitFlag parses the value of a --to flag.
func unitFlag(name string) (csscolor.Unit, error) {
	u, ok := csscolor.ParseUnit(name)
	if !ok {
		return csscolor.UnitInvalid, fmt.Errorf("%w: %q", csscolor.ErrUnknownUnit, name)
	}
	return u, nil
}
