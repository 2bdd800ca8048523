package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adobe-type-tools/orc"
	"github.com/adobe-type-tools/orc/demangle"
	"github.com/adobe-type-tools/orc/logger"
	"github.com/adobe-type-tools/orc/odrv"
)

// jsonReport is the output shape for --output-file-mode=json: spec.md
// section 6's report record (symbol, category, conflicting definitions)
// rendered as data rather than through odrv.Report.String()'s text layout.
type jsonReport struct {
	Symbol     string   `json:"symbol"`
	Category   string   `json:"category"`
	Definition []string `json:"definitions"`
}

func runScan(cmd *cobra.Command, args []string) error {
	settings := settingsFromViper()

	summary, err := orc.Run(args, settings)
	if err != nil {
		return err
	}

	for _, recovered := range summary.RecoveredErrors {
		logger.Log("cmd/orc", "%v", recovered)
	}
	if len(summary.RecoveredErrors) > 0 && settings.LogLevel >= orc.LogWarning {
		printRecoveredSummary(len(summary.RecoveredErrors))
	}
	if settings.LogLevel >= orc.LogVerbose {
		logger.Write(os.Stderr)
	}

	odrvCfg := settings.ODRVConfig()

	var emitErr error
	switch settings.OutputFileMode {
	case orc.OutputJSON:
		emitErr = printJSON(cmd, summary.Reports)
	default:
		emitErr = printText(cmd, summary.Reports, odrvCfg)
	}

	if settings.LogLevel >= orc.LogInfo {
		fmt.Fprintf(os.Stderr, "orc: %d object file(s), %d die(s) processed, %d die(s) registered, %d report(s)\n",
			summary.ObjectFileCount, summary.DieProcessedCount, summary.DieRegisteredCount, len(summary.Reports))
	}

	if settings.GracefulExit {
		return nil
	}
	if len(summary.Reports) > 0 || emitErr != nil {
		os.Exit(1)
	}
	return nil
}

// printText demangles each report's symbol for presentation only (the
// core's own Report.String()/Emit stay on the mangled name) and writes the
// configured filter policy's rendering, colorized on a terminal.
func printText(cmd *cobra.Command, reports []odrv.Report, cfg odrv.Config) error {
	rendered := make([]odrv.Report, len(reports))
	copy(rendered, reports)
	for i := range rendered {
		rendered[i].Symbol = demangledSymbol(rendered[i].Symbol)
	}

	text, emitErr := cfg.Emit(rendered)
	writeColorized(cmd, text)
	return emitErr
}

func printJSON(cmd *cobra.Command, reports []odrv.Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, jsonReport{
			Symbol:     demangledSymbol(r.Symbol),
			Category:   r.Category(),
			Definition: chainStrings(r),
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func chainStrings(r odrv.Report) []string {
	var out []string
	for d := r.Head; d != nil; d = d.Next {
		out = append(out, d.Tag.String()+" "+d.Path.String())
	}
	return out
}

func demangledSymbol(mangled string) string {
	if name, ok := demangle.Demangle(mangled); ok {
		return name
	}
	return mangled
}

// writeColorized highlights each report's "ODRV (...)" header line in red;
// the rest of the block (the definition listing) is left uncolored. Skipped
// entirely when --no-color is set or stdout isn't a terminal, per
// cucaracha/cmd/cpu/exec.go's terminal-gated coloring.
func writeColorized(cmd *cobra.Command, text string) {
	w := cmd.OutOrStdout()
	if flagNoColor || !isTerminal() {
		fmt.Fprint(w, text)
		return
	}

	header := color.New(color.FgRed, color.Bold)
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.HasPrefix(line, "ODRV (") {
			header.Fprint(w, line)
			continue
		}
		fmt.Fprint(w, line)
	}
}

// printRecoveredSummary reports how many inputs were skipped after a
// recoverable parsing error, per SPEC_FULL.md's "recovered errors are
// counted and summarized at exit" — the detail lives in logger's ring
// buffer (dumped at --log-level verbose), this is just the headline count.
func printRecoveredSummary(count int) {
	msg := fmt.Sprintf("orc: %d input(s) skipped after a recoverable parsing error\n", count)
	if flagNoColor || !isTerminal() {
		fmt.Fprint(os.Stderr, msg)
		return
	}
	color.New(color.FgYellow).Fprint(os.Stderr, msg)
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// settingsFromViper builds an orc.Settings from whatever combination of
// flags, config file and environment viper has resolved — BindPFlag in
// root.go's init already gave every flag its config/env fallback.
func settingsFromViper() orc.Settings {
	s := orc.DefaultSettings()

	s.GracefulExit = viper.GetBool("graceful-exit")
	s.MaxViolationCount = viper.GetInt("max-violation-count")
	s.LogLevel = parseLogLevel(viper.GetString("log-level"))
	s.ParallelProcessing = viper.GetBool("parallel-processing")
	s.SymbolIgnore = viper.GetStringSlice("symbol-ignore")
	s.ViolationReport = viper.GetStringSlice("violation-report")
	s.ViolationIgnore = viper.GetStringSlice("violation-ignore")
	s.FilterRedundant = viper.GetBool("filter-redundant")
	s.OutputFileMode = parseOutputFileMode(viper.GetString("output-file-mode"))

	return s
}

func parseLogLevel(s string) orc.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return orc.LogSilent
	case "info":
		return orc.LogInfo
	case "verbose":
		return orc.LogVerbose
	default:
		return orc.LogWarning
	}
}

func parseOutputFileMode(s string) orc.OutputFileMode {
	if strings.ToLower(s) == "json" {
		return orc.OutputJSON
	}
	return orc.OutputText
}
