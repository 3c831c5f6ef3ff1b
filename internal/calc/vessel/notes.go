package vessel

import (
	"fmt"
	"sort"
	"strings"
)

// Notes are machine-checkable warning/assumption records. Code plus params is
// the contract; the prose string exists only for presentation and may change
// without an engine version bump.

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type NoteCode string

const (
	NoteStressOverride           NoteCode = "stress_override"
	NoteStressLookup             NoteCode = "stress_lookup"
	NoteDefaultedCrownRadius     NoteCode = "defaulted_crown_radius"
	NoteDefaultedKnuckleRadius   NoteCode = "defaulted_knuckle_radius"
	NoteDefaultedHeadType        NoteCode = "defaulted_head_type"
	NoteAssumedVertical          NoteCode = "assumed_vertical_orientation"
	NoteStaticHeadApplied        NoteCode = "static_head_applied"
	NoteStaticHeadZeroHorizontal NoteCode = "static_head_zero_horizontal"
	NoteHorizontalHeadConvention NoteCode = "horizontal_head_convention"
	NoteMAWPBelowDesign          NoteCode = "mawp_below_design"
	NoteNegativeRateClamped      NoteCode = "negative_corrosion_clamped"
	NoteRemainingLifeCritical    NoteCode = "remaining_life_below_2y"
	NoteRemainingLifeCaution     NoteCode = "remaining_life_below_4y"
	NoteImmediateInspection      NoteCode = "immediate_inspection_required"
	NoteDerivedCorrosionAllow    NoteCode = "derived_corrosion_allowance"
	NoteProjectedDepleted        NoteCode = "projected_thickness_depleted"
	NoteNoCorrosionMeasured      NoteCode = "no_measurable_corrosion"
	NoteStaticHeadDeducted       NoteCode = "static_head_deducted"
)

type Note struct {
	Code     NoteCode           `json:"code"`
	Severity Severity           `json:"severity"`
	Params   map[string]float64 `json:"params,omitempty"`
	Detail   string             `json:"detail,omitempty"` // non-numeric context, e.g. a material spec
}

func Info(code NoteCode) Note    { return Note{Code: code, Severity: SeverityInfo} }
func Warning(code NoteCode) Note { return Note{Code: code, Severity: SeverityWarning} }

// With attaches a named numeric parameter.
func (n Note) With(key string, v float64) Note {
	p := make(map[string]float64, len(n.Params)+1)
	for k, old := range n.Params {
		p[k] = old
	}
	p[key] = v
	n.Params = p
	return n
}

// WithDetail attaches free-text context.
func (n Note) WithDetail(d string) Note {
	n.Detail = d
	return n
}

var noteText = map[NoteCode]string{
	NoteStressOverride:           "allowable stress supplied directly; versioned material database bypassed",
	NoteStressLookup:             "allowable stress resolved from material database",
	NoteDefaultedCrownRadius:     "crown radius not supplied; defaulted L = D",
	NoteDefaultedKnuckleRadius:   "knuckle radius not supplied; defaulted r = 0.06*D",
	NoteDefaultedHeadType:        "head type not supplied; assumed 2:1 ellipsoidal",
	NoteAssumedVertical:          "orientation not supplied with liquid data present; assumed vertical",
	NoteStaticHeadApplied:        "static head added to design pressure",
	NoteStaticHeadZeroHorizontal: "horizontal vessel; static head taken as zero",
	NoteHorizontalHeadConvention: "horizontal static-head convention is configuration-dependent; verify with inspection engineer",
	NoteMAWPBelowDesign:          "computed MAWP is below design pressure; vessel may require de-rate or repair",
	NoteNegativeRateClamped:      "apparent thickness growth; corrosion rate clamped to zero",
	NoteRemainingLifeCritical:    "remaining life below 2 years",
	NoteRemainingLifeCaution:     "remaining life below 4 years",
	NoteImmediateInspection:      "remaining life exhausted; immediate inspection required",
	NoteDerivedCorrosionAllow:    "corrosion allowance not supplied; derived as max(0, t_current - t_required)",
	NoteProjectedDepleted:        "projected thickness at next inspection is fully depleted",
	NoteNoCorrosionMeasured:      "no measurable corrosion; remaining life is not limited by thinning",
	NoteStaticHeadDeducted:       "static-head deduction applied to projected MAWP",
}

// Message renders the note as prose for reports and UI. Tests and downstream
// logic must match on Code, never on this string.
func (n Note) Message() string {
	text, ok := noteText[n.Code]
	if !ok {
		text = string(n.Code)
	}
	var b strings.Builder
	b.WriteString(text)
	if len(n.Params) > 0 {
		keys := make([]string, 0, len(n.Params))
		for k := range n.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%.6g", k, n.Params[k]))
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	if n.Detail != "" {
		b.WriteString(": ")
		b.WriteString(n.Detail)
	}
	return b.String()
}

// HasNote reports whether any note in the list carries the given code.
func HasNote(notes []Note, code NoteCode) bool {
	for _, n := range notes {
		if n.Code == code {
			return true
		}
	}
	return false
}
