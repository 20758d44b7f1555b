package estimate

// PricingUnit identifies the dimension a vendor quotes price in. The
// string value is the tag used in stored records.
type PricingUnit string

const (
	PerRoll    PricingUnit = "per-roll"
	PerYard    PricingUnit = "per-yard"
	PerFoot    PricingUnit = "per-foot"
	PerMeter   PricingUnit = "per-meter"
	PerSqYard  PricingUnit = "per-sq-yard"
	PerSqFoot  PricingUnit = "per-sq-foot"
	PerSqMeter PricingUnit = "per-sq-meter"
)

// PricingFamily groups pricing units by the dimension of the quote.
type PricingFamily int

const (
	RollPricing PricingFamily = iota
	LinearPricing
	AreaPricing
)

// Family classifies a pricing unit. The second return is false for a
// tag that is not one of the defined units.
func (u PricingUnit) Family() (PricingFamily, bool) {
	switch u {
	case PerRoll:
		return RollPricing, true
	case PerYard, PerFoot, PerMeter:
		return LinearPricing, true
	case PerSqYard, PerSqFoot, PerSqMeter:
		return AreaPricing, true
	}
	return 0, false
}

// Factors normalizing a linear quote to price per yard.
var linearToPerYard = map[PricingUnit]float64{
	PerYard:  1,
	PerFoot:  3,
	PerMeter: 1.09361, // 1 meter = 1.09361 yards
}

// Factors normalizing an area quote to price per square yard.
var areaToSqYard = map[PricingUnit]float64{
	PerSqYard:  1,
	PerSqFoot:  9,
	PerSqMeter: 1.19599, // 1 sq meter = 1.19599 sq yards
}

var pricingUnitLabels = map[PricingUnit]string{
	PerRoll:    "Per Roll",
	PerYard:    "Per Yard",
	PerFoot:    "Per Foot",
	PerMeter:   "Per Meter",
	PerSqYard:  "Per Sq Yard",
	PerSqFoot:  "Per Sq Foot",
	PerSqMeter: "Per Sq Meter",
}

var pricingUnitShortLabels = map[PricingUnit]string{
	PerRoll:    "/roll",
	PerYard:    "/yd",
	PerFoot:    "/ft",
	PerMeter:   "/m",
	PerSqYard:  "/sq yd",
	PerSqFoot:  "/sq ft",
	PerSqMeter: "/sq m",
}

// Label returns the display name for the pricing unit.
func (u PricingUnit) Label() string {
	if label, ok := pricingUnitLabels[u]; ok {
		return label
	}
	return string(u)
}

// ShortLabel returns the compact suffix form, e.g. "/sq yd".
func (u PricingUnit) ShortLabel() string {
	if label, ok := pricingUnitShortLabels[u]; ok {
		return label
	}
	return string(u)
}

// PricingUnits lists every defined pricing unit in picker order.
var PricingUnits = []PricingUnit{
	PerRoll,
	PerYard,
	PerFoot,
	PerMeter,
	PerSqYard,
	PerSqFoot,
	PerSqMeter,
}

const DefaultPricingUnit = PerRoll

// ParsePricingUnit maps a stored tag back to a PricingUnit.
func ParsePricingUnit(tag string) (PricingUnit, bool) {
	if _, ok := PricingUnit(tag).Family(); ok {
		return PricingUnit(tag), true
	}
	return "", false
}
