// Package calendar holds the date helpers used when recording applications.
//
// Dates are stored as plain YYYY-MM-DD text. Validation is deliberately loose:
// the shape is fixed (ten bytes, dashes at offsets 4 and 7) and each
// component must fall in a flat range, but no day-of-month or leap-year
// check is made, so 2024-02-30 is accepted.
//
// Component parsing follows C stoi prefix rules: leading whitespace and a
// sign are allowed, at least one digit is required, and anything after the
// digits is ignored. "2024-1x-05" therefore parses as month 1.
package calendar
