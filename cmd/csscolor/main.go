/*
Command csscolor converts, inspects and rewrites CSS colors.

	csscolor convert "hsl(120, 100%, 25%)" --to hex
	csscolor values cornflowerblue --prefs picker.yaml
	csscolor nearest "#6495EE"
	csscolor scan site.css --to rgb --rewrite

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csscolor",
	Short: "Convert and inspect CSS colors",
	Long: `csscolor converts CSS color values between units (hex, shortHex, nickname,
rgb, rgba, hsl, hsla), finds the nearest CSS keyword for a color and reports or
rewrites the colors used in stylesheets and HTML documents.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
}

var traceLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "Trace level (error, info, debug)")
}

// setupTracing routes tracing to stderr if a level has been requested. All
// keys ("csscolor", "csscolor.scan", ...) select the same tracer, so the
// level applies to every package.
func setupTracing(cmd *cobra.Command, args []string) error {
	if traceLevel == "" {
		return nil
	}
	switch strings.ToLower(traceLevel) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q", traceLevel)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("csscolor").SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
