package estimate

import "errors"

var (
	ErrNonPositiveDimension = errors.New("all dimensions must be greater than zero")
	ErrNegativeWastage      = errors.New("wastage percentage cannot be negative")
)

// WallCoveringInputs carries one calculation request. Each dimension
// pairs a value with the unit it was entered in.
type WallCoveringInputs struct {
	RollWidth      float64
	RollWidthUnit  LengthUnit
	WallLength     float64
	WallLengthUnit LengthUnit
	WallHeight     float64
	WallHeightUnit LengthUnit
	WastagePercent float64
}

// WallCoveringResult is the outcome of a coverage calculation. Area
// figures are always in square feet regardless of the output unit.
type WallCoveringResult struct {
	LinearLength         float64
	Unit                 LengthUnit
	WallArea             float64
	TotalAreaWithWastage float64
}

// ComputeCoverage calculates the linear length of material needed to
// cover a wall:
//
//  1. Convert all inputs to feet.
//  2. Wall area = length x height.
//  3. Add wastage: total area = area x (1 + wastage/100).
//  4. Linear length = total area / roll width.
//  5. Convert the length to outputUnit.
func ComputeCoverage(inputs WallCoveringInputs, outputUnit LengthUnit) (WallCoveringResult, error) {
	rollWidthFeet := ToFeet(inputs.RollWidth, inputs.RollWidthUnit)
	wallLengthFeet := ToFeet(inputs.WallLength, inputs.WallLengthUnit)
	wallHeightFeet := ToFeet(inputs.WallHeight, inputs.WallHeightUnit)

	if rollWidthFeet <= 0 || wallLengthFeet <= 0 || wallHeightFeet <= 0 {
		return WallCoveringResult{}, ErrNonPositiveDimension
	}
	if inputs.WastagePercent < 0 {
		return WallCoveringResult{}, ErrNegativeWastage
	}

	wallArea := wallLengthFeet * wallHeightFeet
	totalAreaWithWastage := wallArea * (1 + inputs.WastagePercent/100)

	linearLengthFeet := totalAreaWithWastage / rollWidthFeet

	return WallCoveringResult{
		LinearLength:         FromFeet(linearLengthFeet, outputUnit),
		Unit:                 outputUnit,
		WallArea:             wallArea,
		TotalAreaWithWastage: totalAreaWithWastage,
	}, nil
}

// ConvertTo re-expresses the linear length in another unit, for the
// post-hoc unit switch on the detail display. Area figures stay in
// square feet.
func (r WallCoveringResult) ConvertTo(unit LengthUnit) WallCoveringResult {
	r.LinearLength = ConvertLength(r.LinearLength, r.Unit, unit)
	r.Unit = unit
	return r
}

// AreaUnit identifies a supported area unit for display conversion.
type AreaUnit string

const (
	AreaSqYards  AreaUnit = "sq-yard"
	AreaSqFeet   AreaUnit = "sq-foot"
	AreaSqMeters AreaUnit = "sq-meter"
)

var sqFeetToAreaUnit = map[AreaUnit]float64{
	AreaSqYards:  1.0 / 9.0,
	AreaSqFeet:   1,
	AreaSqMeters: 0.092903, // 1 sq ft = 0.092903 sq meters
}

// AreaFromSqFeet converts an area in square feet to the given unit.
func AreaFromSqFeet(value float64, unit AreaUnit) float64 {
	if factor, ok := sqFeetToAreaUnit[unit]; ok {
		return value * factor
	}
	return value
}
