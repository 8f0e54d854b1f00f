package service

/* ==========================
   Status donasi & aturan perpindahan
========================== */

type DonationStatus string

const (
	StatusPendingVerification DonationStatus = "pending_verification"
	StatusVerified            DonationStatus = "verified"
	StatusConfirmed           DonationStatus = "confirmed"
	StatusRejected            DonationStatus = "rejected"
)

// donationTransitions: pending_verification → verified → confirmed,
// reject boleh dari dua status awal. Confirmed/rejected final.
var donationTransitions = map[DonationStatus][]DonationStatus{
	StatusPendingVerification: {StatusVerified, StatusRejected},
	StatusVerified:            {StatusConfirmed, StatusRejected},
}

// CanChangeDonationStatus mengecek apakah perpindahan from → to diizinkan
func CanChangeDonationStatus(from, to DonationStatus) bool {
	for _, allowed := range donationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidDonationStatus(s string) bool {
	switch DonationStatus(s) {
	case StatusPendingVerification, StatusVerified, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}
