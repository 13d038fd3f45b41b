package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/govlint/internal/audit"
	"github.com/dshills/govlint/internal/diffview"
	"github.com/dshills/govlint/internal/document"
	"github.com/dshills/govlint/internal/llm"
	"github.com/dshills/govlint/internal/profile"
	"github.com/dshills/govlint/internal/render"
	"github.com/dshills/govlint/internal/report"
	"github.com/dshills/govlint/internal/schema"
	"github.com/dshills/govlint/internal/styleguide"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// auditFlags holds the parsed flags for the audit command.
type auditFlags struct {
	profileName       string
	profileFile       string
	styleGuide        string
	format            string
	out               string
	truncateAt        int
	failOn            string
	severityThreshold string
	suggest           bool
	verbose           bool
}

func main() {
	// Provider API keys may live in a local .env during development.
	_ = godotenv.Load()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "govlint",
		Short: "Audit code and docs against ecosystem governance profiles",
		Long:  "GovLint applies deterministic governance rules to a document, producing findings, an auto-corrected copy, a diff, and a report.",
	}

	var flags auditFlags
	auditCmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Audit a document against a profile and emit a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(args[0], flags)
		},
	}

	f := auditCmd.Flags()
	f.StringVar(&flags.profileName, "profile", "docs-style", "Governance profile name")
	f.StringVar(&flags.profileFile, "profile-file", "", "Load an additional profile from a YAML file and audit against it")
	f.StringVar(&flags.styleGuide, "style-guide", "", "Style-rules text file; absent means style rules are skipped")
	f.StringVar(&flags.format, "format", "json", "Output format: json, md, or ansi")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.IntVar(&flags.truncateAt, "truncate", 800, "Corrected-text preview length in the text report (0 = no limit)")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if any finding is at or above this severity (LOW, MEDIUM, HIGH, CRITICAL)")
	f.StringVar(&flags.severityThreshold, "severity-threshold", "low", "Minimum severity to emit: low, medium, high, or critical")
	f.BoolVar(&flags.suggest, "suggest", false, "Also request a generative refactor suggestion (requires GOVLINT_MODEL)")
	f.BoolVar(&flags.verbose, "verbose", false, "Log processing steps to stderr")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List registered profile names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range profile.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	root.AddCommand(auditCmd, profilesCmd)
	return root
}

func runAudit(docPath string, flags auditFlags) error {
	// --- Step 1: Validate flags ---
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	log := newLogger(flags.verbose)
	defer func() { _ = log.Sync() }()

	// --- Step 2: Register a user-supplied profile, if any ---
	profileName := flags.profileName
	if flags.profileFile != "" {
		rs, err := profile.LoadFile(flags.profileFile)
		if err != nil {
			return codeError(3, "loading profile file: %s", err)
		}
		if err := profile.Register(rs); err != nil {
			return codeError(3, "registering profile: %s", err)
		}
		profileName = rs.Name
		log.Info("registered profile from file", zap.String("profile", rs.Name))
	}

	// --- Step 3: Load the document ---
	log.Info("loading document", zap.String("path", docPath))
	doc, err := document.Load(docPath)
	if err != nil {
		return codeError(3, "loading document: %s", err)
	}

	// --- Step 4: Load style context (degrades to empty on failure) ---
	styleRules := styleguide.Load(flags.styleGuide, log)

	// --- Step 5: Audit ---
	log.Info("auditing", zap.String("profile", profileName), zap.Int("lines", doc.LineCount))
	result, err := audit.AuditProfile(doc.Raw, profileName, audit.WithStyleRules(styleRules))
	if err != nil {
		return codeError(3, "%s", err)
	}

	// --- Step 6: Diff and summary are independent views over the result ---
	diff := diffview.Render(result.OriginalText, result.CorrectedText)
	low, medium, high, critical := report.Counts(result.Findings)

	// --- Step 7: Optional generative suggestion ---
	var suggestion string
	if flags.suggest {
		suggestion, err = runSuggest(profileName, styleRules, doc.Raw, log)
		if err != nil {
			return codeError(5, "%s", err)
		}
	}

	// --- Step 8: Assemble the report ---
	// Summary counts always reflect all findings; --severity-threshold only
	// filters the emitted findings list.
	rep := &schema.Report{
		Tool:    "govlint",
		Version: version,
		Input: schema.Input{
			File:       doc.Path,
			Hash:       doc.Hash,
			Profile:    profileName,
			StyleGuide: flags.styleGuide,
			RunID:      uuid.NewString(),
		},
		Summary: schema.Summary{
			Status:            report.StatusOf(result.Findings),
			LowCount:          low,
			MediumCount:       medium,
			HighCount:         high,
			CriticalCount:     critical,
			WarningCount:      len(result.Warnings),
			SkippedStyleRules: result.SkippedStyleRules,
		},
		Findings:      report.FilterBySeverity(result.Findings, parseSeverity(flags.severityThreshold)),
		Warnings:      result.Warnings,
		CorrectedText: report.Truncate(result.CorrectedText, flags.truncateAt),
		Diff:          diff,
		Suggestion:    suggestion,
	}

	// --- Step 9: Render and write ---
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	outputBytes, err := renderer.Render(rep)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	if err := writeOutput(flags.out, outputBytes); err != nil {
		return codeError(3, "%s", err)
	}
	if flags.out != "" {
		// The structured report went to a file; give the terminal the
		// human-readable summary.
		fmt.Print(report.Format(rep.Findings, result.CorrectedText, flags.truncateAt))
	}

	// --- Step 10: Evaluate --fail-on against ALL findings (pre-filter) ---
	if flags.failOn != "" {
		threshold := schema.Severity(strings.ToUpper(flags.failOn))
		worst := report.WorstSeverity(result.Findings)
		if worst != "" && report.MeetsSeverity(worst, threshold) {
			return codeError(2, "finding severity %s meets or exceeds --fail-on threshold %s", worst, threshold)
		}
	}

	return nil
}

// runSuggest performs the optional LLM call. The caller asked for a
// suggestion explicitly, so a provider that cannot even be constructed is a
// hard error; a provider that fails at request time degrades to "".
func runSuggest(profileName, styleRules, docText string, log *zap.Logger) (string, error) {
	model := os.Getenv("GOVLINT_MODEL")
	if model == "" {
		return "", errors.New("--suggest requires GOVLINT_MODEL (provider:model, e.g. anthropic:claude-sonnet-4)")
	}
	provider, err := llm.NewProvider(model)
	if err != nil {
		return "", fmt.Errorf("constructing suggestion provider: %w", err)
	}
	return llm.Suggest(context.Background(), provider, profileName, styleRules, docText, log), nil
}

func writeOutput(outPath string, data []byte) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// newLogger returns a development logger in verbose mode, otherwise a nop.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags auditFlags) error {
	switch flags.format {
	case "json", "md", "ansi":
	default:
		return fmt.Errorf("--format must be json, md, or ansi, got %q", flags.format)
	}

	if flags.failOn != "" {
		if !schema.IsValidSeverity(schema.Severity(strings.ToUpper(flags.failOn))) {
			return fmt.Errorf("--fail-on must be LOW, MEDIUM, HIGH, or CRITICAL, got %q", flags.failOn)
		}
	}

	switch flags.severityThreshold {
	case "low", "medium", "high", "critical":
	default:
		return fmt.Errorf("--severity-threshold must be low, medium, high, or critical, got %q", flags.severityThreshold)
	}

	if flags.truncateAt < 0 {
		return fmt.Errorf("--truncate must be >= 0, got %d", flags.truncateAt)
	}

	return nil
}

// parseSeverity converts a lowercase threshold flag to a schema.Severity.
func parseSeverity(s string) schema.Severity {
	switch s {
	case "medium":
		return schema.SeverityMedium
	case "high":
		return schema.SeverityHigh
	case "critical":
		return schema.SeverityCritical
	default:
		return schema.SeverityLow
	}
}
