package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePincode = regexp.MustCompile(`^[0-9]{6}$`) // Indian PIN code
	reOTP     = regexp.MustCompile(`^[0-9]{6}$`)
	reDigits  = regexp.MustCompile(`[0-9]`)
	reSize    = regexp.MustCompile(`^(XS|S|M|L|XL|XXL)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone accepts anything carrying at least ten digits, so "+91 98765 43210"
// and "9876543210" both pass.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 20 {
		return "", false
	}
	return s, len(reDigits.FindAllString(s, -1)) >= 10
}

func Pincode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePincode.MatchString(s)
}

func OTP(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reOTP.MatchString(s)
}

// Size validates a garment size label.
func Size(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSize.MatchString(s)
}

// Qty parses a quantity, clamped to 1..50.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > 30 {
		return "", false
	}
	for _, r := range s {
		ok := r == '_' || r == '-' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
		if !ok {
			return "", false
		}
	}
	return s, true
}

// SortCriterion allow-lists the catalog sort keys; anything else falls back
// to featured ordering.
func SortCriterion(s string) string {
	switch s {
	case "price-low", "price-high", "rating", "newest", "featured":
		return s
	}
	return "featured"
}
