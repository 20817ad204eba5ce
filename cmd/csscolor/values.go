package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/npillmayer/csscolor/picker"
	"github.com/spf13/cobra"
)

var valuesCmd = &cobra.Command{
	Use:   "values <color>",
	Short: "Show a color in the units of the picker preferences",
	Long: `Show a color the way the color picker does: one line per unit of the
preferences, the preferred unit marked with '*'.

Preferences are read from a YAML file:

  format: hsl
  formats: [rgb, hsl, hex, nickname]`,
	Args: cobra.ExactArgs(1),
	RunE: runValues,
}

var valuesPrefs string

func init() {
	valuesCmd.Flags().StringVar(&valuesPrefs, "prefs", "", "YAML file with picker preferences")

	rootCmd.AddCommand(valuesCmd)
}

func runValues(cmd *cobra.Command, args []string) error {
	prefs := picker.DefaultPreferences()
	if valuesPrefs != "" {
		f, err := os.Open(valuesPrefs)
		if err != nil {
			return err
		}
		defer f.Close()
		if prefs, err = picker.LoadPreferences(f); err != nil {
			return err
		}
	}
	p := picker.New(prefs)
	v := p.SampleString(args[0])
	if !v.Color.IsValid() {
		return fmt.Errorf("%q is not a color", args[0])
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, e := range v.Entries {
		mark := " "
		if e.Unit == p.Format() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%v\t%s\n", mark, e.Unit, e.Text)
	}
	return w.Flush()
}
