package calendar

// Layout is the stored date format (YYYY-MM-DD).
const Layout = "2006-01-02"

// Accepted component ranges.
const (
	MinYear  = 1900
	MaxYear  = 2100
	MinMonth = 1
	MaxMonth = 12
	MinDay   = 1
	MaxDay   = 31
)

// IsValid reports whether date is acceptable for a new application.
// The empty string is valid and means "use today".
func IsValid(date string) bool {
	if date == "" {
		return true
	}

	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return false
	}

	year, ok := parseLeadingInt(date[0:4])
	if !ok {
		return false
	}
	month, ok := parseLeadingInt(date[5:7])
	if !ok {
		return false
	}
	day, ok := parseLeadingInt(date[8:10])
	if !ok {
		return false
	}

	if year < MinYear || year > MaxYear {
		return false
	}
	if month < MinMonth || month > MaxMonth {
		return false
	}
	if day < MinDay || day > MaxDay {
		return false
	}
	return true
}

// parseLeadingInt parses the integer prefix of s.
// Leading whitespace and one sign character are skipped; at least one digit
// must follow. Trailing bytes after the digits are ignored.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}

	if neg {
		n = -n
	}
	return n, true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
