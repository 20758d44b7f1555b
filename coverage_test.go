package estimate

import (
	"errors"
	"math"
	"testing"
)

func TestComputeCoverageBasic(t *testing.T) {
	// 12ft x 8ft wall, 2ft roll, 10% wastage.
	inputs := WallCoveringInputs{
		RollWidth: 2, RollWidthUnit: UnitFeet,
		WallLength: 12, WallLengthUnit: UnitFeet,
		WallHeight: 8, WallHeightUnit: UnitFeet,
		WastagePercent: 10,
	}
	result, err := ComputeCoverage(inputs, UnitYards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.WallArea-96) > 1e-9 {
		t.Errorf("wall area = %v, want 96", result.WallArea)
	}
	if math.Abs(result.TotalAreaWithWastage-105.6) > 1e-9 {
		t.Errorf("total area = %v, want 105.6", result.TotalAreaWithWastage)
	}
	// 105.6 / 2 = 52.8 ft = 17.6 yards.
	if math.Abs(result.LinearLength-17.6) > 0.01 {
		t.Errorf("linear length = %v yards, want 17.6", result.LinearLength)
	}
	if result.Unit != UnitYards {
		t.Errorf("unit = %s, want yards", result.Unit)
	}
}

func TestComputeCoverageInchRollWidth(t *testing.T) {
	inputs := WallCoveringInputs{
		RollWidth: 24, RollWidthUnit: UnitInches,
		WallLength: 10, WallLengthUnit: UnitFeet,
		WallHeight: 10, WallHeightUnit: UnitFeet,
	}
	result, err := ComputeCoverage(inputs, UnitFeet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(result.LinearLength-50) > 0.01 {
		t.Errorf("linear length = %v feet, want 50", result.LinearLength)
	}
}

func TestComputeCoverageMetric(t *testing.T) {
	inputs := WallCoveringInputs{
		RollWidth: 0.5, RollWidthUnit: UnitMeters,
		WallLength: 4, WallLengthUnit: UnitMeters,
		WallHeight: 3, WallHeightUnit: UnitMeters,
		WastagePercent: 15,
	}
	result, err := ComputeCoverage(inputs, UnitMeters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4x3 m = 12 sq m, +15% = 13.8 sq m, / 0.5 m = 27.6 m.
	if math.Abs(result.LinearLength-27.6) > 0.01 {
		t.Errorf("linear length = %v meters, want 27.6", result.LinearLength)
	}
}

func TestComputeCoverageFormula(t *testing.T) {
	inputs := WallCoveringInputs{
		RollWidth: 1.5, RollWidthUnit: UnitFeet,
		WallLength: 9.25, WallLengthUnit: UnitFeet,
		WallHeight: 7.5, WallHeightUnit: UnitFeet,
		WastagePercent: 12.5,
	}
	result, err := ComputeCoverage(inputs, UnitFeet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 9.25 * 7.5 * (1 + 12.5/100) / 1.5
	if math.Abs(result.LinearLength-want) > 1e-9 {
		t.Errorf("linear length = %v, want %v", result.LinearLength, want)
	}
}

func TestComputeCoverageValidation(t *testing.T) {
	valid := WallCoveringInputs{
		RollWidth: 2, RollWidthUnit: UnitFeet,
		WallLength: 12, WallLengthUnit: UnitFeet,
		WallHeight: 8, WallHeightUnit: UnitFeet,
	}

	zeroWidth := valid
	zeroWidth.RollWidth = 0
	if _, err := ComputeCoverage(zeroWidth, UnitYards); !errors.Is(err, ErrNonPositiveDimension) {
		t.Errorf("zero roll width: err = %v", err)
	}

	negativeHeight := valid
	negativeHeight.WallHeight = -8
	if _, err := ComputeCoverage(negativeHeight, UnitYards); !errors.Is(err, ErrNonPositiveDimension) {
		t.Errorf("negative height: err = %v", err)
	}

	negativeWastage := valid
	negativeWastage.WastagePercent = -1
	if _, err := ComputeCoverage(negativeWastage, UnitYards); !errors.Is(err, ErrNegativeWastage) {
		t.Errorf("negative wastage: err = %v", err)
	}
}

func TestResultConvertTo(t *testing.T) {
	inputs := WallCoveringInputs{
		RollWidth: 2, RollWidthUnit: UnitFeet,
		WallLength: 12, WallLengthUnit: UnitFeet,
		WallHeight: 8, WallHeightUnit: UnitFeet,
		WastagePercent: 10,
	}
	result, err := ComputeCoverage(inputs, UnitYards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inFeet := result.ConvertTo(UnitFeet)
	if math.Abs(inFeet.LinearLength-52.8) > 0.01 {
		t.Errorf("converted length = %v feet, want 52.8", inFeet.LinearLength)
	}
	if inFeet.Unit != UnitFeet {
		t.Errorf("converted unit = %s, want feet", inFeet.Unit)
	}
	// Area figures stay in square feet.
	if inFeet.WallArea != result.WallArea {
		t.Errorf("wall area changed on conversion: %v vs %v", inFeet.WallArea, result.WallArea)
	}
}

func TestAreaFromSqFeet(t *testing.T) {
	if got := AreaFromSqFeet(9, AreaSqYards); math.Abs(got-1) > 1e-9 {
		t.Errorf("9 sq ft = %v sq yd, want 1", got)
	}
	if got := AreaFromSqFeet(10, AreaSqMeters); math.Abs(got-0.92903) > 1e-6 {
		t.Errorf("10 sq ft = %v sq m, want 0.92903", got)
	}
}
