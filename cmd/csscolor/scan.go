package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/csscolor/csscolor"
	"github.com/npillmayer/csscolor/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/csscolor/recolor"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file.css|file.html>",
	Short: "Report the colors used in a stylesheet or HTML document",
	Long: `Report the colors used in a stylesheet or HTML document, grouped by
selector and declaration.

With --rewrite the colors are converted to the unit given by --to and the
rewritten stylesheet (or document) is written to stdout instead. Colors with
an alpha channel stay rgba or hsla.

Examples:
  csscolor scan site.css
  csscolor scan index.html --to hex --rewrite > index.hex.html`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanTo      string
	scanRewrite bool
)

func init() {
	scanCmd.Flags().StringVar(&scanTo, "to", "rgb", "Target unit for --rewrite")
	scanCmd.Flags().BoolVar(&scanRewrite, "rewrite", false, "Write the document with converted colors")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	u, err := unitFlag(scanTo)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".html", ".htm", ".xhtml":
		return scanHTML(out, src, u)
	}
	return scanCSS(out, src, u)
}

func scanCSS(out io.Writer, src []byte, u csscolor.Unit) error {
	sheet, err := douceuradapter.Parse(string(src))
	if err != nil {
		return err
	}
	if !scanRewrite {
		fmt.Fprint(out, recolor.Report(recolor.Collect(sheet)))
		return nil
	}
	if _, err := recolor.Rewrite(sheet, u); err != nil {
		return err
	}
	fmt.Fprintln(out, sheet.String())
	return nil
}

func scanHTML(out io.Writer, src []byte, u csscolor.Unit) error {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return err
	}
	if !scanRewrite {
		usages, err := recolor.CollectHTML(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(out, recolor.Report(usages))
		return nil
	}
	if _, err := recolor.RewriteHTML(doc, u); err != nil {
		return err
	}
	return html.Render(out, doc)
}
