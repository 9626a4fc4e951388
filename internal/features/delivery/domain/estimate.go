package domain

import (
	"fmt"
	"time"
)

// Severity grades a delivery verdict for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Kind says which rule produced a verdict.
type Kind string

const (
	KindOK              Kind = "ok"
	KindOutOfStock      Kind = "out-of-stock"
	KindLookupFailed    Kind = "lookup-failed"
	KindCutoffPassed    Kind = "cutoff-passed"
	KindUnknownProvider Kind = "unknown-provider"
)

// User-facing messages.
const (
	MsgOutOfStock     = "Product is currently out of stock"
	MsgInvalidPincode = "Invalid pincode"
	MsgCutoffPassed   = "Cutoff time passed for same-day delivery"
	MsgSameDay        = "Same-day delivery"
	MsgNextDay        = "Next-day delivery"
)

// General Partners turnaround bounds, inclusive.
const (
	MinWindowDays = 2
	MaxWindowDays = 5
)

// DisplayDateLayout is the long date format shown to shoppers.
const DisplayDateLayout = "Monday, January 2, 2006"

// Estimate is the derived delivery promise for one evaluation.
type Estimate struct {
	// Date is the promised delivery day, at the evaluation's wall-clock time.
	Date time.Time `json:"date"`
	// DisplayDate is Date rendered with DisplayDateLayout.
	DisplayDate string `json:"display_date"`
	// Message is the headline, e.g. "Same-day delivery".
	Message string `json:"message"`
	// Cutoff is set only while same-day delivery is still possible.
	Cutoff *time.Time `json:"cutoff,omitempty"`
	// SameDayEligible reports whether the cutoff has not passed yet.
	SameDayEligible bool `json:"same_day_eligible"`
}

// Possibility is the deliverability verdict shown next to the estimate.
type Possibility struct {
	Possible bool     `json:"possible"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Kind     Kind     `json:"kind"`
}

// cutoffHour is the same-day order deadline per carrier. Carriers without
// a same-day service are absent.
var cutoffHour = map[Provider]int{
	ProviderA: 17,
	ProviderB: 9,
}

// Evaluate applies the delivery rules to a pincode lookup result.
//
// info is nil when the lookup failed or has not run; lookupMessage then
// explains why and falls back to "Invalid pincode" when empty. All times
// are taken in now's location. Evaluate is pure: it never mutates info and
// the same inputs always produce the same outputs.
//
// A non-nil estimate is never paired with an error verdict.
func Evaluate(info *PincodeInfo, now time.Time, inStock bool, lookupMessage string) (*Estimate, Possibility) {
	if !inStock {
		return nil, Possibility{
			Possible: false,
			Severity: SeverityError,
			Message:  MsgOutOfStock,
			Kind:     KindOutOfStock,
		}
	}

	if info == nil {
		msg := lookupMessage
		if msg == "" {
			msg = MsgInvalidPincode
		}
		return nil, Possibility{
			Possible: false,
			Severity: SeverityError,
			Message:  msg,
			Kind:     KindLookupFailed,
		}
	}

	verdict := Possibility{Possible: true, Severity: SeveritySuccess, Kind: KindOK}

	provider := info.Provider()
	switch provider {
	case ProviderA, ProviderB:
		estimate, eligible := sameDay(now, cutoffHour[provider])
		if !eligible {
			verdict = Possibility{
				Possible: true,
				Severity: SeverityWarning,
				Message:  MsgCutoffPassed,
				Kind:     KindCutoffPassed,
			}
		}
		return estimate, verdict

	case ProviderGeneralPartners:
		return window(now, info.TATDays), verdict

	case ProviderUnknown:
		// No rule applies. The verdict keeps its default so the caller
		// decides how to present an unknown carrier.
		verdict.Kind = KindUnknownProvider
		return nil, verdict
	}

	panic(fmt.Sprintf("delivery: unhandled provider %d", provider))
}

// sameDay evaluates a same-day carrier whose orders must be placed by
// hour:00:00 local time. The deadline itself still qualifies.
func sameDay(now time.Time, hour int) (*Estimate, bool) {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())

	if !now.After(cutoff) {
		return &Estimate{
			Date:            now,
			DisplayDate:     now.Format(DisplayDateLayout),
			Message:         MsgSameDay,
			Cutoff:          &cutoff,
			SameDayEligible: true,
		}, true
	}

	tomorrow := now.AddDate(0, 0, 1)
	return &Estimate{
		Date:        tomorrow,
		DisplayDate: tomorrow.Format(DisplayDateLayout),
		Message:     MsgNextDay,
	}, false
}

// window evaluates a multi-day carrier, clamping its turnaround.
func window(now time.Time, tatDays int) *Estimate {
	days := ClampWindow(tatDays)
	date := now.AddDate(0, 0, days)
	return &Estimate{
		Date:        date,
		DisplayDate: date.Format(DisplayDateLayout),
		Message:     fmt.Sprintf("Delivery in %d days", days),
	}
}

// ClampWindow bounds a turnaround to [MinWindowDays, MaxWindowDays].
func ClampWindow(days int) int {
	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}
