package domain

import (
	"errors"
	"strings"
)

// PincodeLength is the number of digits in a postal index number.
const PincodeLength = 6

var (
	// ErrPincodeRequired is returned for an empty pincode.
	ErrPincodeRequired = errors.New("Pincode is required")
	// ErrPincodeNotNumeric is returned when the pincode contains a non-digit.
	ErrPincodeNotNumeric = errors.New("Pincode must contain only numbers")
	// ErrPincodeLength is returned when the pincode is not exactly six digits.
	ErrPincodeLength = errors.New("Pincode must be 6 digits")
	// ErrDeliveryUnavailable is returned when a pincode lookup fails.
	ErrDeliveryUnavailable = errors.New("Delivery not available in this area")
)

// PincodeInfo is the carrier mapping the storefront API returns for a pincode.
type PincodeInfo struct {
	// ProviderName is the carrier name exactly as the API sent it.
	ProviderName string `json:"logistics_provider"`
	// TATDays is the carrier's turnaround in days. Only General Partners uses it.
	TATDays int `json:"delivery_tat_days"`
}

// Provider resolves ProviderName to the closed carrier set.
func (p PincodeInfo) Provider() Provider {
	return ParseProvider(p.ProviderName)
}

// NormalizePincode strips surrounding whitespace. Lookups, cache keys and
// request coalescing all use the normalized form.
func NormalizePincode(code string) string {
	return strings.TrimSpace(code)
}

// ValidatePincode checks the format locally so malformed input never
// reaches the lookup API. Checks run in order: presence, digits, length.
func ValidatePincode(code string) error {
	if code == "" {
		return ErrPincodeRequired
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrPincodeNotNumeric
		}
	}
	if len(code) != PincodeLength {
		return ErrPincodeLength
	}
	return nil
}
