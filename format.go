package estimate

import "github.com/shopspring/decimal"

// FormatNumber renders a value with a fixed number of decimal places.
func FormatNumber(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

// FormatCurrency renders a dollar amount rounded to cents.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatWastagePercent renders wastage as a percentage of the total
// length bought, e.g. "12.0%".
func FormatWastagePercent(wastage, totalLength float64) string {
	if totalLength == 0 {
		return "0%"
	}
	percent := decimal.NewFromFloat(wastage / totalLength * 100)
	return percent.StringFixed(1) + "%"
}
