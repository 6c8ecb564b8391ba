package inputval

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Audiences accepted by the notification form.
var Audiences = []string{"all", "verified", "admins", "singleEmail", "byTag"}

// Periods accepted by the analytics pages.
var Periods = []string{"7d", "30d", "90d", "1y"}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isAudience(fl validator.FieldLevel) bool {
	return IsValidAudience(fl.Field().String())
}

func isPeriod(fl validator.FieldLevel) bool {
	return IsValidPeriod(fl.Field().String())
}

// IsValidAudience reports whether a is a notification audience.
func IsValidAudience(a string) bool {
	return contains(Audiences, a)
}

// IsValidPeriod reports whether p is an analytics period.
func IsValidPeriod(p string) bool {
	return contains(Periods, p)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
