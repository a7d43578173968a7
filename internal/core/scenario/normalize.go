package scenario

import (
	"encoding/json"
	"strings"

	"github.com/example/tatlam/internal/ports/secondary"
)

// Placeholder defaults for descriptive fields that arrive blank.
// The record corpus is Hebrew-language, so the placeholders are too.
const (
	DefaultTitle       = "ללא כותרת"
	DefaultCategory    = "לא מסווג"
	DefaultRating      = "לא צוין"
	DefaultOperational = "אין תיעוד רלוונטי"
	DefaultOwner       = "web"
	DefaultStatus      = "pending"
)

// Coerce normalizes a raw store record into a Scenario. It is total:
// any record shape produces a usable Scenario, malformed list fields
// are recovered by wrapping, never dropped.
func Coerce(raw *secondary.ScenarioRecord) Scenario {
	return Scenario{
		ID:         raw.ID,
		BundleID:   raw.BundleID,
		ExternalID: raw.ExternalID,

		Title:    textOr(raw.Title, DefaultTitle),
		Category: textOr(raw.Category, DefaultCategory),

		ThreatLevel: textOr(raw.ThreatLevel, DefaultRating),
		Likelihood:  textOr(raw.Likelihood, DefaultRating),
		Complexity:  textOr(raw.Complexity, DefaultRating),

		Location:              raw.Location,
		Background:            raw.Background,
		OperationalBackground: textOr(raw.OperationalBackground, DefaultOperational),

		Steps:                ToList(raw.Steps),
		RequiredResponse:     ToList(raw.RequiredResponse),
		DebriefPoints:        ToList(raw.DebriefPoints),
		Comms:                ToList(raw.Comms),
		DecisionPoints:       ToList(raw.DecisionPoints),
		EscalationConditions: ToList(raw.EscalationConditions),
		LessonsLearned:       ToList(raw.LessonsLearned),
		Variations:           ToList(raw.Variations),
		Validation:           ToList(raw.Validation),

		MediaLink:      noneIfBlank(raw.MediaLink),
		MaskUsage:      NormalizeMask(raw.MaskUsage),
		CCTVUsage:      raw.CCTVUsage,
		AuthorityNotes: raw.AuthorityNotes,

		EndStateSuccess: raw.EndStateSuccess,
		EndStateFailure: raw.EndStateFailure,

		Owner:           textOr(raw.Owner, DefaultOwner),
		ApprovedBy:      raw.ApprovedBy,
		Status:          textOr(raw.Status, DefaultStatus),
		RejectionReason: raw.RejectionReason,
		CreatedAt:       raw.CreatedAt,
	}
}

// ToList converts a stored list-field value to a slice.
//   - already a []any: returned as-is
//   - nil, blank, or a "null"/"none"/"[]" literal: empty slice
//   - text parsing as a JSON array: the parsed array
//   - text parsing as any other JSON value: wrapped as a single element
//   - unparseable text: the raw text wrapped as a single element
//
// The single-element wrap applies to both pipelines; the value is never
// dropped.
func ToList(v any) []any {
	switch val := v.(type) {
	case nil:
		return []any{}
	case []any:
		return val
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return []any{}
		}
		switch strings.ToLower(s) {
		case "null", "none", "[]":
			return []any{}
		}
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return []any{val}
		}
		if list, ok := parsed.([]any); ok {
			return list
		}
		return []any{parsed}
	default:
		return []any{val}
	}
}

// NormalizeMask maps free-text mask_usage values onto the canonical
// tri-state. Matching is trimmed and case-insensitive; the Hebrew
// affirmative and negative are part of the recognized sets.
func NormalizeMask(v string) MaskUsage {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "y", "כן":
		return MaskYes
	case "no", "false", "n", "לא":
		return MaskNo
	default:
		return MaskUnknown
	}
}

func textOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func noneIfBlank(v string) *string {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	return &s
}
