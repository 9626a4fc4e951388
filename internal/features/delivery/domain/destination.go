package domain

import "time"

// Destination is a validated pincode together with its lookup outcome.
type Destination struct {
	// Pincode is the normalized six-digit code.
	Pincode string
	// Info is the carrier mapping, nil when the lookup failed.
	Info *PincodeInfo
	// LookupMessage explains a failed lookup.
	LookupMessage string
}

// Resolved reports whether the lookup produced a carrier mapping.
func (d *Destination) Resolved() bool {
	return d != nil && d.Info != nil
}

// Provider returns the carrier serving the destination.
func (d *Destination) Provider() Provider {
	if !d.Resolved() {
		return ProviderUnknown
	}
	return d.Info.Provider()
}

// Evaluate applies the delivery rules for one product at now.
func (d *Destination) Evaluate(now time.Time, inStock bool) (*Estimate, Possibility) {
	if d == nil {
		return Evaluate(nil, now, inStock, "")
	}
	return Evaluate(d.Info, now, inStock, d.LookupMessage)
}
