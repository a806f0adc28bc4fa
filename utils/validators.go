// File: /utils/validators.go
package utils

import "unicode"

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	// At least 2 of 3 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}

	return count >= 2
}

// IsValidTransportationMode accepts the modes the trip pages offer.
func IsValidTransportationMode(mode string) bool {
	switch mode {
	case "", "walking", "cycling", "driving", "public transport":
		return true
	}
	return false
}
