package exporter

import (
	"fmt"
	"strconv"
)

// FormatFloat formats a value for CSV output with exactly 2 decimal
// places so values like 13.4 appear as 13.40.
func FormatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatFloat3 formats rates and ratios with 3 decimal places.
func FormatFloat3(f float64) string {
	return fmt.Sprintf("%.3f", f)
}

// FormatInt formats an integer for CSV output.
func FormatInt(i int) string {
	return strconv.Itoa(i)
}
