package common

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatKES renders an amount the way the dashboard shows it: "KES 45,000".
func FormatKES(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "KES " + sign + b.String()
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// phoneSuffixDigits is the length of a Kenyan subscriber number without the
// country or trunk prefix.
const phoneSuffixDigits = 9

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// SamePhone compares numbers on their subscriber digits so that
// "+254 712 345 678", "254712345678" and "0712345678" all match.
func SamePhone(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	if na == "" || nb == "" {
		return false
	}
	if len(na) > phoneSuffixDigits {
		na = na[len(na)-phoneSuffixDigits:]
	}
	if len(nb) > phoneSuffixDigits {
		nb = nb[len(nb)-phoneSuffixDigits:]
	}
	return na == nb
}
