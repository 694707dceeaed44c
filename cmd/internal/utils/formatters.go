package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyCents renders integer centavos as a BRL currency string,
// e.g. 123456 -> "R$ 1.234,56".
func FormatCurrencyCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(groups, "."), centavos)
}

// FormatPhone renders a bare digit string as a Brazilian phone number,
// e.g. "11987654321" -> "(11) 98765-4321". Anything that is not a 10 or
// 11 digit number is returned as-is.
func FormatPhone(phone string) string {
	var cleaned strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			cleaned.WriteRune(r)
		}
	}

	digits := cleaned.String()
	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return phone
	}
}

// FormatDuration renders minutes as a short human label: "1h 30min",
// "2h", "45min".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dmin", mins)
	}
}
