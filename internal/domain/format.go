package domain

import "strconv"

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// OrNA renders an optional field for display.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
