package vessel

// Units are fixed across the whole engine: psi, degrees Fahrenheit, inches,
// years. Callers convert before they get here, never inside.

type Component string

const (
	ComponentShell Component = "shell"
	ComponentHead  Component = "head"
)

type HeadType string

const (
	HeadEllipsoidal   HeadType = "ellipsoidal" // 2:1 semi-elliptical
	HeadTorispherical HeadType = "torispherical"
	HeadHemispherical HeadType = "hemispherical"
)

type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// HorizontalHeadRule selects how static head is charged to a horizontal
// vessel. Field practice diverges: some inspectors take it as zero (liquid
// column acts along the axis), others charge the full bore diameter. Both are
// implemented; the choice is configuration, not a formula change.
type HorizontalHeadRule string

const (
	HorizontalHeadZero     HorizontalHeadRule = "zero"
	HorizontalHeadFullBore HorizontalHeadRule = "full-bore"
)

// Options is engine-level configuration fixed at startup, not per request.
type Options struct {
	HorizontalHead HorizontalHeadRule `json:"horizontal_head,omitempty"`
}

// HorizontalHeadRule returns the configured convention, defaulting to zero.
func (o Options) HorizontalHeadConvention() HorizontalHeadRule {
	if o.HorizontalHead == HorizontalHeadFullBore {
		return HorizontalHeadFullBore
	}
	return HorizontalHeadZero
}

// Input carries one vessel component's engineering parameters. Zero means
// "not supplied" for the optional fields; mandatory fields are checked by the
// formula functions, which return an error-status Result rather than failing
// the request.
type Input struct {
	ComponentID string    `json:"component_id,omitempty"`
	Component   Component `json:"component"`
	HeadType    HeadType  `json:"head_type,omitempty"`

	InsideDiameterIn  float64 `json:"inside_diameter_in,omitempty"`
	InsideRadiusIn    float64 `json:"inside_radius_in,omitempty"`
	DesignPressurePSI float64 `json:"design_pressure_psi"`
	DesignTempF       float64 `json:"design_temp_f"`

	MaterialSpec       string  `json:"material_spec,omitempty"`
	AllowableStressPSI float64 `json:"allowable_stress_psi,omitempty"` // direct override, bypasses the database
	JointEfficiency    float64 `json:"joint_efficiency"`

	NominalThicknessIn   float64 `json:"nominal_thickness_in,omitempty"`
	CurrentThicknessIn   float64 `json:"current_thickness_in,omitempty"`
	PreviousThicknessIn  float64 `json:"previous_thickness_in,omitempty"`
	CorrosionAllowanceIn float64 `json:"corrosion_allowance_in,omitempty"`

	CrownRadiusIn   float64 `json:"crown_radius_in,omitempty"`   // torispherical L
	KnuckleRadiusIn float64 `json:"knuckle_radius_in,omitempty"` // torispherical r

	YearBuilt          int    `json:"year_built,omitempty"`
	CurrentInspection  string `json:"current_inspection,omitempty"`  // YYYY-MM-DD
	PreviousInspection string `json:"previous_inspection,omitempty"` // YYYY-MM-DD

	Orientation     Orientation `json:"orientation,omitempty"`
	SpecificGravity float64     `json:"specific_gravity,omitempty"`
	LiquidHeightIn  float64     `json:"liquid_height_in,omitempty"`
}

// DiameterIn returns the inside diameter, deriving it from the radius when
// only the radius was supplied.
func (in Input) DiameterIn() float64 {
	if in.InsideDiameterIn > 0 {
		return in.InsideDiameterIn
	}
	return 2 * in.InsideRadiusIn
}

// RadiusIn returns the inside radius, deriving it from the diameter when only
// the diameter was supplied.
func (in Input) RadiusIn() float64 {
	if in.InsideRadiusIn > 0 {
		return in.InsideRadiusIn
	}
	return in.InsideDiameterIn / 2
}

// RemainingLife is the tagged remaining-life value. Infinite means no
// measurable corrosion; there is no magic sentinel.
type RemainingLife struct {
	Infinite bool    `json:"infinite"`
	Years    float64 `json:"years,omitempty"`
}

func InfiniteLife() RemainingLife { return RemainingLife{Infinite: true} }

func LifeYears(y float64) RemainingLife { return RemainingLife{Years: y} }
