package main

import (
	"fmt"

	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/csscolor/maybe"
	"github.com/spf13/cobra"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <color>",
	Short: "Find the CSS keyword closest to a color",
	Long: `Find the CSS color keyword perceptually closest to a color.

The distance is the CIEDE2000 color difference; 0 means the color has a
keyword of its own.`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

func init() {
	rootCmd.AddCommand(nearestCmd)
}

// match is a keyword found for a color.
type match struct {
	name     string
	distance float64
}

func nearestKeyword(c csscolor.Color) maybe.Maybe[match] {
	name, dist := c.Nearest()
	return maybe.Of(match{name, dist}, name != "")
}

func runNearest(cmd *cobra.Command, args []string) error {
	var m match
	switch mm := maybe.AndThen(csscolor.Parse(args[0]), nearestKeyword).Match(); mm {
	case mm.Nothing():
		return fmt.Errorf("%q has no nearest keyword", args[0])
	case mm.Just(&m):
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.4f\n", m.name, m.distance)
	return nil
}
