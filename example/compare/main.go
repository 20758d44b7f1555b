package main

import (
	"estimate"
	"fmt"
)

func main() {
	// Open the vendor database and seed it on first run.
	blob, err := estimate.OpenSQLiteBlob("file:vendors.db?cache=shared&mode=rwc")
	if err != nil {
		panic(err)
	}
	defer blob.Close()

	store := estimate.NewVendorStore(blob)
	if len(store.Vendors()) == 0 {
		seed(store)
	}

	// A 12ft x 8ft wall covered with a 24-inch roll, 10% wastage.
	inputs := estimate.WallCoveringInputs{
		RollWidth:      24,
		RollWidthUnit:  estimate.UnitInches,
		WallLength:     12,
		WallLengthUnit: estimate.UnitFeet,
		WallHeight:     8,
		WallHeightUnit: estimate.UnitFeet,
		WastagePercent: 10,
	}
	result, err := estimate.ComputeCoverage(inputs, estimate.UnitYards)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Wall area: %s sq ft (with wastage: %s sq ft)\n",
		estimate.FormatNumber(result.WallArea, 2),
		estimate.FormatNumber(result.TotalAreaWithWastage, 2))
	fmt.Printf("Material needed: %s %s\n\n",
		estimate.FormatNumber(result.LinearLength, 2), result.Unit.Label())

	rollWidthYards := estimate.ConvertLength(inputs.RollWidth, inputs.RollWidthUnit, estimate.UnitYards)
	ranked, failed := estimate.PriceAllVendors(store.Vendors(), result.LinearLength, rollWidthYards, estimate.SortBestPrice)

	fmt.Println("Vendors by total cost:")
	for i, pricing := range ranked {
		marker := "  "
		if i == 0 {
			marker = "* " // best under the active sort mode
		}
		fmt.Printf("%s%-14s %d rolls  %s  waste %s yd (%s)  quoted %s%s\n",
			marker,
			pricing.Vendor.Name,
			pricing.RollsToBuy,
			estimate.FormatCurrency(pricing.TotalCost),
			estimate.FormatNumber(pricing.Wastage, 2),
			estimate.FormatWastagePercent(pricing.Wastage, pricing.TotalLength),
			estimate.FormatCurrency(pricing.Vendor.Price),
			pricing.Vendor.PriceUnit.ShortLabel(),
		)
	}
	for _, f := range failed {
		fmt.Printf("  %-14s skipped: %v\n", f.Vendor.Name, f.Err)
	}
}

func seed(store *estimate.VendorStore) {
	vendors := []estimate.VendorFields{
		{Name: "Roll World", Price: 50, PriceUnit: estimate.PerRoll, RollLength: 5, RollLengthUnit: estimate.UnitYards},
		{Name: "Fabric Hut", Price: 4, PriceUnit: estimate.PerYard, RollLength: 30, RollLengthUnit: estimate.UnitFeet},
		{Name: "Metric Mills", Price: 12, PriceUnit: estimate.PerSqMeter, RollLength: 10, RollLengthUnit: estimate.UnitMeters},
	}
	for _, fields := range vendors {
		if _, err := store.Create(fields); err != nil {
			panic(err)
		}
	}
}
