// Package format holds the Indonesian-locale date and amount helpers used by
// the donation ledger. The ledger's canonical display representation is
// "<DayName>, DD/MM/YYYY HH:MM:SS" for dates and "Rp X.XXX.XXX" for amounts;
// this package provides both directions of that mapping.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dayNames maps time.Weekday (Sunday = 0) to Indonesian day names.
var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// rawDateLayouts are the timestamp shapes accepted from uploaded CSV files.
var rawDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// monthAbbrevs maps time.Month (January = 1) to Indonesian short month names.
var monthAbbrevs = [13]string{"", "Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agt", "Sep", "Okt", "Nov", "Des"}

// FormatDayMonth renders t as "19 Feb" for chart axis labels.
func FormatDayMonth(t time.Time) string {
	return t.Format("02") + " " + monthAbbrevs[int(t.Month())]
}

// FormatDateWithDay renders t as "Senin, 25/02/2026 10:30:45".
func FormatDateWithDay(t time.Time) string {
	var b strings.Builder
	b.WriteString(dayNames[int(t.Weekday())])
	b.WriteString(", ")
	b.WriteString(t.Format("02/01/2006 15:04:05"))
	return b.String()
}

// ParseRawDate parses a timestamp cell from an uploaded CSV file. It returns
// false when the value matches none of the accepted layouts, in which case
// the caller keeps the raw string unchanged.
func ParseRawDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range rawDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseFormattedDate is the inverse of FormatDateWithDay. It strips an
// optional leading "DayName, " prefix and parses "DD/MM/YYYY" with an
// optional "HH:MM:SS" part. Returns false when the value is not a ledger
// display date.
func ParseFormattedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ", "); idx >= 0 {
		s = s[idx+2:]
	}

	parts := strings.Fields(s)
	if len(parts) == 0 {
		return time.Time{}, false
	}

	dateParts := strings.Split(parts[0], "/")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(dateParts[0])
	month, err2 := strconv.Atoi(dateParts[1])
	year, err3 := strconv.Atoi(dateParts[2])
	if err1 != nil || err2 != nil || err3 != nil || day == 0 || month == 0 || year == 0 {
		return time.Time{}, false
	}

	var hour, minute, second int
	if len(parts) > 1 {
		timeParts := strings.Split(parts[1], ":")
		if len(timeParts) > 0 {
			hour, _ = strconv.Atoi(timeParts[0])
		}
		if len(timeParts) > 1 {
			minute, _ = strconv.Atoi(timeParts[1])
		}
		if len(timeParts) > 2 {
			second, _ = strconv.Atoi(timeParts[2])
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local), true
}

// FormatAmount renders a whole-rupiah amount as "Rp 1.000.000" with
// dot thousands separators.
func FormatAmount(amount int64) string {
	return "Rp " + GroupThousands(amount)
}

// GroupThousands renders n with Indonesian dot grouping ("1234567" -> "1.234.567").
func GroupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// ParseRawAmount parses an amount cell from an uploaded CSV file: comma
// separators are stripped, the value is parsed as a float and floored to
// whole rupiah. Returns false when the cell is empty or not numeric, in
// which case the caller keeps the raw string unchanged.
func ParseRawAmount(raw string) (int64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(math.Floor(f)), true
}

// ParseDisplayAmount is the inverse of FormatAmount: it strips the "Rp "
// prefix and the dot separators and parses the remainder as an integer.
// Returns false for empty or unparsable input.
func ParseDisplayAmount(s string) (int64, bool) {
	cleaned := strings.ReplaceAll(s, "Rp", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseAmount is ParseDisplayAmount with unparsable input flattened to 0,
// matching the lenient read path of the dashboard.
func ParseAmount(s string) int64 {
	n, _ := ParseDisplayAmount(s)
	return n
}

// ExtractDescAndDonor splits a bank-statement description on its last hyphen:
// "Sahur Ceria - Budi" -> ("Sahur Ceria", "Budi"). Without a hyphen the whole
// string is the description and the donor name is empty.
func ExtractDescAndDonor(description string) (keterangan, namaDonatur string) {
	if strings.TrimSpace(description) == "" {
		return "", ""
	}
	idx := strings.LastIndex(description, "-")
	if idx == -1 {
		return strings.TrimSpace(description), ""
	}
	return strings.TrimSpace(description[:idx]), strings.TrimSpace(description[idx+1:])
}
