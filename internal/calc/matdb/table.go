package matdb

// Version identifies the allowable-stress table revision. The table is a
// compile-time constant; editing any value or adding a material requires a
// version bump so downstream audit records stay traceable.
const Version = "ASME-IID-2023.1"

type stressPoint struct {
	TempF     float64
	StressPSI float64
}

// Allowable stress vs. metal temperature per material specification,
// ASME Section II Part D Table 1A values for common vessel steels.
// Points are ascending in temperature; lookups never extrapolate past the
// ends of a curve.
var table = map[string][]stressPoint{
	"SA-516-70": {
		{-20, 20000}, {100, 20000}, {200, 20000}, {300, 20000}, {400, 20000},
		{500, 20000}, {600, 20000}, {650, 20000}, {700, 19400}, {750, 18800},
		{800, 18100}, {850, 14800}, {900, 12000},
	},
	"SA-516-60": {
		{-20, 17100}, {100, 17100}, {200, 17100}, {300, 17100}, {400, 17100},
		{500, 17100}, {600, 17100}, {650, 17100}, {700, 16700}, {750, 16100},
		{800, 15200},
	},
	"SA-285-C": {
		{-20, 15700}, {100, 15700}, {200, 15700}, {300, 15700}, {400, 15700},
		{500, 15700}, {600, 15700}, {650, 15700}, {700, 15200}, {750, 14300},
		{800, 12000},
	},
	"SA-283-C": {
		{-20, 13800}, {100, 13800}, {200, 13800}, {300, 13800}, {400, 13800},
		{500, 13800}, {600, 13800}, {650, 13800},
	},
	"SA-106-B": {
		{-20, 17100}, {100, 17100}, {200, 17100}, {300, 17100}, {400, 17100},
		{500, 17100}, {600, 17100}, {650, 17100}, {700, 16600}, {750, 15600},
		{800, 13400}, {850, 11000}, {900, 9000},
	},
	"SA-612": {
		{-20, 22900}, {100, 22900}, {200, 22900}, {300, 22900}, {400, 22900},
		{500, 22900}, {600, 22900}, {650, 22900}, {700, 21600},
	},
	"SA-240-304": {
		{-20, 20000}, {100, 20000}, {200, 20000}, {300, 18900}, {400, 18300},
		{500, 17500}, {600, 16600}, {650, 16200}, {700, 15800}, {750, 15500},
		{800, 15200},
	},
	"SA-240-316": {
		{-20, 20000}, {100, 20000}, {200, 20000}, {300, 19400}, {400, 18600},
		{500, 17900}, {600, 17000}, {650, 16700}, {700, 16300}, {750, 16100},
		{800, 15900},
	},
}
