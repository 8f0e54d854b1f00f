package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanChangeDonationStatus(t *testing.T) {
	// jalur normal verifikasi manual
	assert.True(t, CanChangeDonationStatus(StatusPendingVerification, StatusVerified))
	assert.True(t, CanChangeDonationStatus(StatusVerified, StatusConfirmed))

	// reject boleh dari dua status awal
	assert.True(t, CanChangeDonationStatus(StatusPendingVerification, StatusRejected))
	assert.True(t, CanChangeDonationStatus(StatusVerified, StatusRejected))

	// tidak boleh loncat atau mundur
	assert.False(t, CanChangeDonationStatus(StatusPendingVerification, StatusConfirmed))
	assert.False(t, CanChangeDonationStatus(StatusVerified, StatusPendingVerification))
	assert.False(t, CanChangeDonationStatus(StatusConfirmed, StatusRejected))
	assert.False(t, CanChangeDonationStatus(StatusRejected, StatusVerified))
	assert.False(t, CanChangeDonationStatus(StatusConfirmed, StatusConfirmed))
}

func TestIsValidDonationStatus(t *testing.T) {
	for _, s := range []string{"pending_verification", "verified", "confirmed", "rejected"} {
		assert.True(t, IsValidDonationStatus(s), s)
	}
	assert.False(t, IsValidDonationStatus("paid"))
	assert.False(t, IsValidDonationStatus(""))
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 123456789, time.UTC)
	id := NewOrderID(now)
	assert.Contains(t, id, "DONATION-")
	assert.NotEqual(t, id, NewOrderID(now.Add(time.Nanosecond)))
}
