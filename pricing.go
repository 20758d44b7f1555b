package estimate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrRollWidthRequired     = errors.New("roll width is required for area-based pricing")
	ErrNonPositiveRollLength = errors.New("vendor roll length must be greater than zero")
)

// VendorPricing is the purchase breakdown for one vendor at a given
// required length. Lengths are in yards.
type VendorPricing struct {
	Vendor       Vendor
	RollsNeeded  float64 // exact quotient, kept for wastage math
	RollsToBuy   int     // rounded up
	TotalLength  float64 // rolls bought x roll length
	Wastage      float64 // total length minus required length
	TotalCost    float64
	PricePerRoll float64
}

// SortMode selects the ranking criterion for a vendor comparison.
type SortMode string

const (
	SortBestPrice  SortMode = "best-price"
	SortMinWastage SortMode = "min-wastage"
)

// VendorError flags a vendor whose pricing could not be computed, so
// one misconfigured vendor never hides the rest of the comparison.
type VendorError struct {
	Vendor Vendor
	Err    error
}

func (e VendorError) Error() string {
	return fmt.Sprintf("vendor %q: %v", e.Vendor.Name, e.Err)
}

func (e VendorError) Unwrap() error { return e.Err }

// PricePerRoll normalizes a vendor quote to a price per roll.
//
// Per-roll quotes pass through. Linear quotes are normalized to per
// yard and multiplied by the roll length. Area quotes are normalized
// to per square yard and multiplied by the roll area, which needs a
// positive roll width.
func PricePerRoll(price float64, unit PricingUnit, rollLengthYards, rollWidthYards float64) (float64, error) {
	family, ok := unit.Family()
	if !ok {
		return 0, fmt.Errorf("unknown pricing unit: %q", unit)
	}
	switch family {
	case RollPricing:
		return price, nil
	case LinearPricing:
		return price * linearToPerYard[unit] * rollLengthYards, nil
	default: // AreaPricing
		if rollWidthYards <= 0 {
			return 0, ErrRollWidthRequired
		}
		return price * areaToSqYard[unit] * rollLengthYards * rollWidthYards, nil
	}
}

// PriceVendor computes the purchase breakdown for one vendor.
// requiredLinearYards comes from ComputeCoverage with a yards output
// unit; rollWidthYards is only consulted for area-based quotes.
func PriceVendor(vendor Vendor, requiredLinearYards, rollWidthYards float64) (VendorPricing, error) {
	rollLengthYards := FromFeet(ToFeet(vendor.RollLength, vendor.RollLengthUnit), UnitYards)
	if rollLengthYards <= 0 {
		return VendorPricing{}, ErrNonPositiveRollLength
	}

	rollsNeeded := requiredLinearYards / rollLengthYards
	rollsToBuy := int(math.Ceil(rollsNeeded))

	totalLength := float64(rollsToBuy) * rollLengthYards
	wastage := totalLength - requiredLinearYards

	pricePerRoll, err := PricePerRoll(vendor.Price, vendor.PriceUnit, rollLengthYards, rollWidthYards)
	if err != nil {
		return VendorPricing{}, err
	}

	return VendorPricing{
		Vendor:       vendor,
		RollsNeeded:  rollsNeeded,
		RollsToBuy:   rollsToBuy,
		TotalLength:  totalLength,
		Wastage:      wastage,
		TotalCost:    float64(rollsToBuy) * pricePerRoll,
		PricePerRoll: pricePerRoll,
	}, nil
}

// PriceAllVendors prices every vendor and ranks the results ascending
// by total cost (best-price) or wastage (min-wastage). Ties keep the
// original vendor order. Vendors whose pricing fails are skipped and
// returned in the error slice instead of aborting the batch.
func PriceAllVendors(vendors []Vendor, requiredLinearYards, rollWidthYards float64, mode SortMode) ([]VendorPricing, []VendorError) {
	pricings := make([]VendorPricing, 0, len(vendors))
	var failed []VendorError
	for _, vendor := range vendors {
		pricing, err := PriceVendor(vendor, requiredLinearYards, rollWidthYards)
		if err != nil {
			failed = append(failed, VendorError{Vendor: vendor, Err: err})
			continue
		}
		pricings = append(pricings, pricing)
	}

	switch mode {
	case SortBestPrice:
		sort.SliceStable(pricings, func(i, j int) bool {
			return pricings[i].TotalCost < pricings[j].TotalCost
		})
	case SortMinWastage:
		sort.SliceStable(pricings, func(i, j int) bool {
			return pricings[i].Wastage < pricings[j].Wastage
		})
	}
	return pricings, failed
}
