package schema

// Category classifies the kind of governance issue a rule detects.
type Category string

const (
	CategoryLogic    Category = "LOGIC"
	CategorySecurity Category = "SECURITY"
	CategoryStyle    Category = "STYLE"
)

// IsValidCategory reports whether c is one of the defined categories.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryLogic, CategorySecurity, CategoryStyle:
		return true
	}
	return false
}

// Severity levels for findings, ordered Low < Medium < High < Critical.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// SeverityOrdinal returns the numeric ordering for a severity, used by
// --fail-on comparison. LOW(0) < MEDIUM(1) < HIGH(2) < CRITICAL(3).
// Returns -1 for an unrecognised severity.
func SeverityOrdinal(s Severity) int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// IsValidSeverity reports whether s is one of the four defined levels.
func IsValidSeverity(s Severity) bool {
	return SeverityOrdinal(s) >= 0
}

// Finding is one detected issue surfaced from a fired rule. Immutable once
// created; it lives only for the duration of one audit result.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// WarningKind labels non-fatal diagnostics attached to an audit result.
type WarningKind string

const (
	// WarningCorrectionMismatch: a rule fired but none of its correction
	// targets occur in the document, so its corrections were a no-op.
	WarningCorrectionMismatch WarningKind = "CORRECTION_MISMATCH"
	// WarningRuleFault: a rule's predicate faulted during evaluation and
	// contributed no findings.
	WarningRuleFault WarningKind = "RULE_FAULT"
)

// Warning is a non-fatal diagnostic recorded during an audit run.
type Warning struct {
	RuleID string      `json:"rule_id"`
	Kind   WarningKind `json:"kind"`
	Detail string      `json:"detail"`
}

// AuditResult holds the complete outcome of one audit run. The engine
// retains no reference to it; each call produces a fresh value owned by
// the caller.
type AuditResult struct {
	OriginalText  string    `json:"original_text"`
	CorrectedText string    `json:"corrected_text"`
	Findings      []Finding `json:"findings"`
	Warnings      []Warning `json:"warnings,omitempty"`
	// SkippedStyleRules counts style-gated rules that did not run because
	// no style-rules text was supplied.
	SkippedStyleRules int `json:"skipped_style_rules,omitempty"`
}

// DiffKind tags a rendered diff line.
type DiffKind string

const (
	DiffAdded     DiffKind = "ADDED"
	DiffRemoved   DiffKind = "REMOVED"
	DiffUnchanged DiffKind = "UNCHANGED"
)

// DiffLine is one line of a rendered original/corrected diff.
type DiffLine struct {
	Kind    DiffKind `json:"kind"`
	Content string   `json:"content"`
}

// Status is the overall verdict for a report.
type Status string

const (
	StatusPass          Status = "PASS"
	StatusFailAutoFixed Status = "FAIL_AUTO_FIXED"
)

// Report is the top-level CLI output structure.
type Report struct {
	Tool          string     `json:"tool"`
	Version       string     `json:"version"`
	Input         Input      `json:"input"`
	Summary       Summary    `json:"summary"`
	Findings      []Finding  `json:"findings"`
	Warnings      []Warning  `json:"warnings,omitempty"`
	CorrectedText string     `json:"corrected_text"`
	Diff          []DiffLine `json:"diff"`
	Suggestion    string     `json:"suggestion,omitempty"`
}

// Input captures the parameters used for this run.
type Input struct {
	File       string `json:"file"`
	Hash       string `json:"hash"` // "sha256:<hex>" of the original document
	Profile    string `json:"profile"`
	StyleGuide string `json:"style_guide,omitempty"`
	RunID      string `json:"run_id"`
}

// Summary holds the computed status and finding counts.
type Summary struct {
	Status            Status `json:"status"`
	LowCount          int    `json:"low_count"`
	MediumCount       int    `json:"medium_count"`
	HighCount         int    `json:"high_count"`
	CriticalCount     int    `json:"critical_count"`
	WarningCount      int    `json:"warning_count"`
	SkippedStyleRules int    `json:"skipped_style_rules"`
}
