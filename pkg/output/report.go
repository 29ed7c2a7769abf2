// Package output renders reconciliation results and resolution summaries to
// the terminal with pterm. It consumes the stable result shapes only and
// carries no resolution or classification logic of its own.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pterm/pterm"

	"github.com/EnvForge/envforge/pkg/reconcile"
	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/secrets"
)

// Reporter writes reports to a writer. Values of secret-bearing variables are
// masked before they reach it.
type Reporter struct {
	writer   io.Writer
	detector *secrets.Detector

	section *pterm.SectionPrinter
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

// NewReporter creates a Reporter. A nil writer defaults to stdout.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		writer:   w,
		detector: secrets.NewDetector(),
		section:  pterm.DefaultSection.WithWriter(w),
		success:  pterm.Success.WithWriter(w),
		warning:  pterm.Warning.WithWriter(w),
		info:     pterm.Info.WithWriter(w),
		failure:  pterm.Error.WithWriter(w),
	}
}

// Reconciliation prints the classification of one app's env file.
func (r *Reporter) Reconciliation(result *reconcile.Result) {
	r.section.Printfln("Environment status: %s", result.App.Name)

	r.success.Printfln("%d variable(s) set", len(result.Valid))

	for _, def := range result.Missing {
		if def.Required() {
			r.failure.Printfln("missing required: %s", def.Name)
		} else {
			r.warning.Printfln("missing optional: %s", def.Name)
		}
	}

	for _, name := range result.Extra {
		r.info.Printfln("extra: %s (not declared in any example file)", name)
	}

	for _, name := range result.Deprecated {
		r.warning.Printfln("deprecated: %s (configured as retired, still present)", name)
	}

	if len(result.Overrides) > 0 {
		names := make([]string, 0, len(result.Overrides))
		for name := range result.Overrides {
			names = append(names, name)
		}
		sort.Strings(names)

		r.info.Println("shared variables overridden locally:")
		for _, name := range names {
			o := result.Overrides[name]
			r.info.Printfln("  %s: %q (shared: %q)",
				name, r.detector.Mask(name, o.AppValue), r.detector.Mask(name, o.SharedValue))
		}
	}
}

// ResolutionSummary prints what one resolution pass did, in pass order.
func (r *Reporter) ResolutionSummary(resolutions []resolve.Resolution) {
	for _, res := range resolutions {
		name := res.Definition.Name
		switch {
		case res.Result.Skipped:
			r.info.Printfln("skipped %s", name)
		case res.Result.Source == resolve.SourcePlaceholder:
			r.warning.Printfln("placeholder %s=%s", name, res.Result.Value)
		default:
			r.success.Printfln("resolved %s (%s)", name, res.Result.Source)
		}
	}

	warnings := resolve.Warnings(resolutions)
	if len(warnings) == 0 {
		return
	}
	pterm.Fprintln(r.writer)
	for _, warning := range warnings {
		r.warning.Println(warning)
	}
	pterm.Fprintln(r.writer, pterm.Gray(fmt.Sprintf("%d warning(s)", len(warnings))))
}
