package domain

import "strings"

// Provider identifies the logistics carrier serving a pincode.
// The set is closed; every switch over Provider must handle each value.
type Provider int

const (
	// ProviderUnknown is any carrier name the storefront has no rule for.
	ProviderUnknown Provider = iota
	// ProviderA delivers same day for orders placed by 17:00.
	ProviderA
	// ProviderB delivers same day for orders placed by 09:00.
	ProviderB
	// ProviderGeneralPartners delivers within a 2-5 day window.
	ProviderGeneralPartners
)

// String returns the carrier's display name as the API spells it.
func (p Provider) String() string {
	switch p {
	case ProviderA:
		return "Provider A"
	case ProviderB:
		return "Provider B"
	case ProviderGeneralPartners:
		return "General Partners"
	case ProviderUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// MarshalText renders the provider by display name.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParseProvider maps an API carrier name to a Provider. Matching ignores
// case, spaces, underscores and hyphens, so "Provider A", "ProviderA" and
// "provider_a" are the same carrier.
func ParseProvider(name string) Provider {
	switch normalizeName(name) {
	case "providera":
		return ProviderA
	case "providerb":
		return ProviderB
	case "generalpartners":
		return ProviderGeneralPartners
	default:
		return ProviderUnknown
	}
}

func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
