package profile

import (
	"github.com/dshills/govlint/internal/rule"
	"github.com/dshills/govlint/internal/schema"
)

func init() {
	mustRegister(omniverse())
}

// omniverse targets NVIDIA Omniverse Kit extension code.
func omniverse() *RuleSet {
	return &RuleSet{
		Name: "omniverse",
		Rules: []rule.Rule{
			{
				ID:       "omni-manual-stage-open",
				Category: schema.CategoryLogic,
				Severity: schema.SeverityHigh,
				Message:  "Stage opened manually; Kit extensions must use the shared USD context.",
				Match:    rule.Contains("Usd.Stage.Open("),
				Corrections: []rule.Correction{
					{Find: "Usd.Stage.Open(", Replace: "omni.usd.get_context().get_stage("},
				},
			},
			{
				ID:       "omni-blocking-sleep",
				Category: schema.CategoryLogic,
				Severity: schema.SeverityMedium,
				Message:  "time.sleep blocks the Kit UI thread; use an async coroutine with omni.kit.app await points.",
				Match:    rule.Contains("time.sleep("),
			},
			{
				ID:       "omni-print-logging",
				Category: schema.CategoryStyle,
				Severity: schema.SeverityLow,
				Message:  "print() output is lost in Kit sessions; route messages through carb logging.",
				Match:    rule.Contains("print("),
				Corrections: []rule.Correction{
					{Find: "print(", Replace: "carb.log_info("},
				},
			},
		},
	}
}
