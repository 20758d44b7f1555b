package estimate

// LengthUnit identifies a supported length unit. The string value is
// the tag used in stored records.
type LengthUnit string

const (
	UnitInches LengthUnit = "inches"
	UnitFeet   LengthUnit = "feet"
	UnitYards  LengthUnit = "yards"
	UnitMeters LengthUnit = "meters"
)

// Conversion factors relative to feet as the base unit. The two tables
// are maintained independently: 3.28084 and 0.3048 are the published
// factors, not exact reciprocals of each other.
var unitToFeet = map[LengthUnit]float64{
	UnitInches: 1.0 / 12.0,
	UnitFeet:   1,
	UnitYards:  3,
	UnitMeters: 3.28084,
}

var feetToUnit = map[LengthUnit]float64{
	UnitInches: 12,
	UnitFeet:   1,
	UnitYards:  1.0 / 3.0,
	UnitMeters: 0.3048,
}

// ToFeet converts a value in the given unit to feet. Values pass
// through unscaled for an unknown unit; use ParseLengthUnit to vet
// tags coming from outside the process.
func ToFeet(value float64, unit LengthUnit) float64 {
	if factor, ok := unitToFeet[unit]; ok {
		return value * factor
	}
	return value
}

// FromFeet converts a value in feet to the given unit.
func FromFeet(value float64, unit LengthUnit) float64 {
	if factor, ok := feetToUnit[unit]; ok {
		return value * factor
	}
	return value
}

// ConvertLength converts a value between any two length units, going
// through feet.
func ConvertLength(value float64, from, to LengthUnit) float64 {
	return FromFeet(ToFeet(value, from), to)
}

var lengthUnitLabels = map[LengthUnit]string{
	UnitInches: "Inches",
	UnitFeet:   "Feet",
	UnitYards:  "Yards",
	UnitMeters: "Meters",
}

// Label returns the display name for the unit, or the raw tag if the
// unit is unknown.
func (u LengthUnit) Label() string {
	if label, ok := lengthUnitLabels[u]; ok {
		return label
	}
	return string(u)
}

// Unit sets offered by the input surface. Order matters: pickers list
// them as given, with the first entry as the default.
var (
	RollWidthUnits     = []LengthUnit{UnitInches, UnitFeet, UnitYards, UnitMeters}
	WallDimensionUnits = []LengthUnit{UnitFeet, UnitInches, UnitMeters, UnitYards}
	OutputUnits        = []LengthUnit{UnitYards, UnitFeet, UnitMeters}
)

// ParseLengthUnit maps a stored tag back to a LengthUnit.
func ParseLengthUnit(tag string) (LengthUnit, bool) {
	switch LengthUnit(tag) {
	case UnitInches, UnitFeet, UnitYards, UnitMeters:
		return LengthUnit(tag), true
	}
	return "", false
}
