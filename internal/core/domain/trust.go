package domain

import "time"

// Trust gate thresholds. An ended event owes an impact report for 90 days;
// a club may publish new campaigns while it has at most 2 outstanding reports
// and none overdue by more than 30 days.
const (
	TrustWindowDays     = 90
	TrustMaxOutstanding = 2
	TrustMaxOverdueDays = 30
)

// TrustStatus is the derived club-level eligibility projection. It has no
// persisted state of its own.
type TrustStatus struct {
	OutstandingCount  int  `json:"outstandingCount"`
	OverdueDays       int  `json:"overdueDays"`
	CanCreateCampaign bool `json:"canCreateCampaign"`
}

// TrustWindowStart returns the inclusive lower bound of the trailing window.
func TrustWindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -TrustWindowDays)
}
