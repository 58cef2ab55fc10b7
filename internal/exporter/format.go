package exporter

import "strconv"

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// formatFloat formats a float64 for CSV output using the shortest exact
// decimal form, so whole-numbered temperatures appear without decimals
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatOptionalInt renders a nullable int; missing values become empty fields
func formatOptionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return formatInt(*i)
}

// formatOptionalFloat renders a nullable float; missing values become empty fields
func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
