package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/govlint/internal/redact"
)

// suggestion prompts per profile. The deterministic rules stay the source
// of truth for findings; the suggestion is advisory free-form text.
const splunkInstruction = `You are the chief architect for the Splunk SDK.
Refactor the user's code to satisfy:
1. Google Python style: add type hints and semantic variable names.
2. Splunk content style: enforce active voice and present tense.
Return only the refactored code, no commentary.`

const omniverseInstruction = `You are a senior developer relations engineer for NVIDIA Omniverse.
Refactor the code to follow Kit extension standards:
1. Use omni.usd.get_context() instead of opening stages manually.
2. Use async def for UI safety.
3. Use pxr.Usd and pxr.Sdf types.
Return only the refactored code, no commentary.`

const defaultInstruction = `Refactor this text to meet the named governance profile's standards.
Return only the refactored text, no commentary.`

// BuildSystemPrompt selects the per-profile instruction and appends the
// style-rules text, when present, as grounding context.
func BuildSystemPrompt(profileName, styleRules string) string {
	var sb strings.Builder
	switch profileName {
	case "splunk":
		sb.WriteString(splunkInstruction)
	case "omniverse":
		sb.WriteString(omniverseInstruction)
	default:
		sb.WriteString(fmt.Sprintf("Profile: %s\n", profileName))
		sb.WriteString(defaultInstruction)
	}
	if styleRules != "" {
		sb.WriteString("\n\nOFFICIAL STYLE GUIDE:\n")
		sb.WriteString(styleRules)
	}
	return sb.String()
}

// BuildUserPrompt wraps the document for the completion call. The document
// is redacted first so secret material never leaves the process.
func BuildUserPrompt(doc string) string {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(redact.Redact(doc))
	if !strings.HasSuffix(doc, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("</document>\n")
	return sb.String()
}

// Suggest asks the provider for a free-form refactor of doc under the given
// profile. A provider failure degrades to an empty suggestion with a logged
// warning; the caller's rule-based findings are unaffected.
func Suggest(ctx context.Context, p Provider, profileName, styleRules, doc string, log *zap.Logger) string {
	req := &Request{
		SystemPrompt: BuildSystemPrompt(profileName, styleRules),
		UserPrompt:   BuildUserPrompt(doc),
		Temperature:  0.2,
	}
	resp, err := p.Complete(ctx, req)
	if err != nil {
		log.Warn("generative suggestion unavailable",
			zap.String("profile", profileName),
			zap.Error(err))
		return ""
	}
	return resp.Content
}
