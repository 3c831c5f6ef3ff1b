package vessel

import "time"

type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Calculation type tags carried by every Result.
const (
	CalcRequiredThickness = "required_thickness"
	CalcMAWP              = "mawp"
	CalcCorrosionRateLT   = "corrosion_rate_lt"
	CalcCorrosionRateST   = "corrosion_rate_st"
	CalcRemainingLife     = "remaining_life"
	CalcNextInspection    = "next_inspection_interval"
	CalcProjectedMAWP     = "projected_mawp"
)

// Result is one computed quantity with everything an auditor needs to replay
// it: code reference, formula, every named intermediate, assumptions and
// warnings, and the engine/database versions that produced it. Immutable once
// returned.
type Result struct {
	Success          bool               `json:"success"`
	Type             string             `json:"calculation_type"`
	Value            *float64           `json:"value"`
	Unit             string             `json:"unit,omitempty"`
	CodeReference    string             `json:"code_reference,omitempty"`
	Formula          string             `json:"formula,omitempty"`
	Intermediates    map[string]float64 `json:"intermediates,omitempty"`
	Assumptions      []Note             `json:"assumptions,omitempty"`
	Warnings         []Note             `json:"warnings,omitempty"`
	EngineVersion    string             `json:"engine_version"`
	DatabaseVersion  string             `json:"database_version,omitempty"`
	ComputedAt       time.Time          `json:"computed_at"`
	ValidationStatus Status             `json:"validation_status"`
	Error            string             `json:"error,omitempty"`
}

// NewResult starts a successful result of the given type; callers fill in the
// value, intermediates and notes as the calculation proceeds.
func NewResult(calcType string) Result {
	return Result{
		Success:          true,
		Type:             calcType,
		Intermediates:    map[string]float64{},
		EngineVersion:    EngineVersion,
		ComputedAt:       time.Now().UTC(),
		ValidationStatus: StatusValid,
	}
}

// SetValue records the final value and its unit.
func (r *Result) SetValue(v float64, unit string) {
	r.Value = &v
	r.Unit = unit
}

// Fail marks the result as a hard error. The value is cleared; a failed
// calculation never carries a number a caller could mistake for a result.
func (r *Result) Fail(msg string) {
	r.Success = false
	r.Value = nil
	r.ValidationStatus = StatusError
	r.Error = msg
}

// Warn records a warning note and lifts the status to warning unless it is
// already an error.
func (r *Result) Warn(n Note) {
	n.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, n)
	if r.ValidationStatus == StatusValid {
		r.ValidationStatus = StatusWarning
	}
}

// Assume records an informational assumption; it does not affect status.
func (r *Result) Assume(n Note) {
	n.Severity = SeverityInfo
	r.Assumptions = append(r.Assumptions, n)
}

// Set records a named intermediate for audit replay.
func (r *Result) Set(name string, v float64) {
	if r.Intermediates == nil {
		r.Intermediates = map[string]float64{}
	}
	r.Intermediates[name] = v
}

type OverallStatus string

const (
	StatusAcceptable   OverallStatus = "acceptable"
	StatusMarginal     OverallStatus = "marginal"
	StatusUnacceptable OverallStatus = "unacceptable"
)

// Summary is the condensed verdict derived from the sub-results.
type Summary struct {
	TRequiredIn          *float64       `json:"t_required_in,omitempty"`
	MAWPPSI              *float64       `json:"mawp_psi,omitempty"`
	GoverningRateInPerYr *float64       `json:"governing_rate_in_per_yr,omitempty"`
	GoverningRateSource  string         `json:"governing_rate_source,omitempty"` // LT or ST
	RemainingLife        *RemainingLife `json:"remaining_life,omitempty"`
	NextInspectionYears  *float64       `json:"next_inspection_years,omitempty"`
	Status               OverallStatus  `json:"status"`
	Reason               string         `json:"reason"`
}

// FullResult bundles every sub-calculation for one component. Required
// thickness and MAWP are load-bearing; the corrosion/life chain is best-effort
// and nil when inputs are missing. Partial success is preserved: one failed
// sub-calculation never erases another's valid result.
type FullResult struct {
	Success        bool    `json:"success"`
	ComponentID    string  `json:"component_id,omitempty"`
	TRequired      Result  `json:"t_required"`
	MAWP           Result  `json:"mawp"`
	CorrosionLT    *Result `json:"corrosion_rate_lt,omitempty"`
	CorrosionST    *Result `json:"corrosion_rate_st,omitempty"`
	RemainingLife  *Result `json:"remaining_life,omitempty"`
	NextInspection *Result `json:"next_inspection_interval,omitempty"`
	ProjectedMAWP  *Result `json:"projected_mawp,omitempty"`
	Summary        Summary `json:"summary"`
	Warnings       []Note  `json:"warnings,omitempty"`
}
