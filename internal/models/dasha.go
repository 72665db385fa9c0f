package models

import "time"

// DashaPeriod is one segment at one level of the Vimshottari hierarchy.
// Periods within a level are contiguous and non-overlapping.
type DashaPeriod struct {
	Planet         Planet    `json:"planet"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	TotalYears     float64   `json:"total_years"`
	RemainingYears float64   `json:"remaining_years"`
}

// UpcomingAntardasha is one Antardasha segment intersecting the forward
// horizon, clipped at the horizon boundary.
type UpcomingAntardasha struct {
	Mahadasha Planet    `json:"md"`
	Planet    Planet    `json:"ad"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DashaInfo is the full period picture at one query instant: the active
// three-level stack plus the Antardasha listing for the coming months.
type DashaInfo struct {
	Mahadasha   DashaPeriod          `json:"maha_dasha"`
	Antardasha  DashaPeriod          `json:"antar_dasha"`
	Paryantar   DashaPeriod          `json:"paryantar_dasha"`
	UpcomingADs []UpcomingAntardasha `json:"upcoming_ads"`
}
