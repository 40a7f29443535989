package services

import (
	"encoding/json"
	"regexp"
	"strings"

	"gorm.io/datatypes"
)

// LLM replies rarely arrive as bare JSON: models wrap the payload in markdown
// fences, lead with "Here is the analysis:" prose, or append trailing notes.
// The normalizer recovers whatever structure it can and never fails: worst
// case the caller gets the original text back under "raw_output".
var (
	jsonFenceRe = regexp.MustCompile("(?i)```json")
	preambleRe  = regexp.MustCompile(`(?is)^\s*here\s+is.*?:`)
	noteRe      = regexp.MustCompile(`(?is)note:.*$`)
)

// NormalizeLLMOutput turns an arbitrary model reply into a structured value.
// It is total: any input that defies parsing comes back as
// map[string]any{"raw_output": raw}.
func NormalizeLLMOutput(raw string) any {
	clean := raw
	if loc := jsonFenceRe.FindStringIndex(clean); loc != nil {
		clean = clean[:loc[0]] + clean[loc[1]:]
	}
	clean = strings.ReplaceAll(clean, "```", "")
	clean = preambleRe.ReplaceAllString(clean, "")
	if loc := noteRe.FindStringIndex(clean); loc != nil {
		clean = clean[:loc[0]]
	}
	clean = strings.TrimSpace(clean)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err == nil {
		return parsed
	}

	// The reply may bury the object in prose; take the widest {...} span.
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(clean[start:end+1]), &parsed); err == nil {
			return parsed
		}
	}

	return map[string]any{"raw_output": raw}
}

// NormalizeStoredAnalysis is the read-time variant. Historically stored
// values may be a plain string, a {"raw_output": ...} wrapper from an earlier
// failed parse, or an already-structured object; the first two are re-run
// through NormalizeLLMOutput.
func NormalizeStoredAnalysis(stored datatypes.JSON) any {
	if len(stored) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(stored, &value); err != nil {
		return NormalizeLLMOutput(string(stored))
	}

	switch v := value.(type) {
	case string:
		return NormalizeLLMOutput(v)
	case map[string]any:
		if raw, ok := v["raw_output"].(string); ok {
			return NormalizeLLMOutput(raw)
		}
		return v
	default:
		return value
	}
}
