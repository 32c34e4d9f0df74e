// internal/engine/numbers.go
package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var thousandsPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// parseIntToken parses a numeric token written with optional Italian thousands
// separators ("1.500" -> 1500).
func parseIntToken(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if thousandsPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseMoneyToken parses an amount plus an optional Italian scale word
// ("500" + "mila" -> 500000, "1,5" + "milioni" -> 1500000).
func parseMoneyToken(num, scale string) (float64, bool) {
	num = strings.TrimSpace(num)
	if num == "" {
		return 0, false
	}
	if thousandsPattern.MatchString(num) {
		num = strings.ReplaceAll(num, ".", "")
	}
	num = strings.ReplaceAll(num, ",", ".")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(strings.TrimSpace(scale)) {
	case "mila", "k":
		v *= 1_000
	case "mln", "milione", "milioni":
		v *= 1_000_000
	}
	return v, true
}

var timelinePattern = regexp.MustCompile(`(?i)(\d+)\s*(mesi|mese|anni|anno)`)

// parseTimelineMonths converts a timeline string ("12 mesi", "2 anni") into a
// month count.
func parseTimelineMonths(s string) (int, bool) {
	m := timelinePattern.FindStringSubmatch(s)
	if len(m) < 3 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	unit := strings.ToLower(m[2])
	if unit == "anni" || unit == "anno" {
		n *= 12
	}
	return n, true
}

// formatEuro renders an amount with Italian thousands grouping ("€500.000").
func formatEuro(v float64) string {
	return "€" + groupThousands(int64(v+0.5))
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// titleCase uppercases the first rune of every word; used when deriving
// project names from extracted values.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
