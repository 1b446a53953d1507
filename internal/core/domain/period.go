package domain

import "time"

// PeriodStatus is the control state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
	PeriodLocked PeriodStatus = "LOCKED"
	// PeriodUnknown stands in for a period the store could not supply.
	PeriodUnknown PeriodStatus = "UNKNOWN"
)

// IsOpen reports whether postings may land in the period. Any non-OPEN status blocks posting.
func (s PeriodStatus) IsOpen() bool {
	return s == PeriodOpen
}

// AccountingPeriod is the snapshot of a fiscal period supplied by the period store.
type AccountingPeriod struct {
	PeriodID  string       `json:"periodID"`
	TenantID  string       `json:"tenantID"`
	Name      string       `json:"name"`
	Status    PeriodStatus `json:"status"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
}

// Contains reports whether t falls within the period, inclusive of both ends by calendar day.
func (p AccountingPeriod) Contains(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return !day.Before(p.StartDate.Truncate(24*time.Hour)) && !day.After(p.EndDate.Truncate(24*time.Hour))
}
