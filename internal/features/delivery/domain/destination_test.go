package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDestination(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("Resolved", func(t *testing.T) {
		d := &Destination{Pincode: "560001", Info: &PincodeInfo{ProviderName: "Provider B"}}
		assert.True(t, d.Resolved())
		assert.Equal(t, ProviderB, d.Provider())

		estimate, verdict := d.Evaluate(now, true)
		assert.True(t, verdict.Possible)
		assert.Equal(t, MsgSameDay, estimate.Message)
	})

	t.Run("LookupFailed", func(t *testing.T) {
		d := &Destination{Pincode: "999999", LookupMessage: ErrDeliveryUnavailable.Error()}
		assert.False(t, d.Resolved())
		assert.Equal(t, ProviderUnknown, d.Provider())

		estimate, verdict := d.Evaluate(now, true)
		assert.Nil(t, estimate)
		assert.False(t, verdict.Possible)
		assert.Equal(t, "Delivery not available in this area", verdict.Message)
	})

	t.Run("Nil", func(t *testing.T) {
		var d *Destination
		assert.False(t, d.Resolved())

		_, verdict := d.Evaluate(now, true)
		assert.Equal(t, MsgInvalidPincode, verdict.Message)
	})

	t.Run("OutOfStockWins", func(t *testing.T) {
		d := &Destination{Pincode: "560001", Info: &PincodeInfo{ProviderName: "Provider A"}}
		_, verdict := d.Evaluate(now, false)
		assert.Equal(t, KindOutOfStock, verdict.Kind)
	})
}
