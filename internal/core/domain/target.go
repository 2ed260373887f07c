package domain

import "time"

// TotalTarget is the overall REF 2026 fundraising target in whole rupiah
// (1.447 miliar).
const TotalTarget int64 = 1_447_000_000

// WeeklyTarget is one pekan (program week) of the fundraising schedule with
// its cumulative target. Read-only reference data.
type WeeklyTarget struct {
	Label        string
	StartDate    time.Time
	EndDate      time.Time
	TargetAmount int64
	Percent      int
}

// DefaultWeeklyTargets is the hardcoded fallback schedule used when the
// target_penghimpunan table is empty or unreachable.
func DefaultWeeklyTargets() []WeeklyTarget {
	return []WeeklyTarget{
		{Label: "Pekan 1", StartDate: date(2026, 2, 19), EndDate: date(2026, 2, 25), TargetAmount: 144_700_000, Percent: 10},
		{Label: "Pekan 2", StartDate: date(2026, 2, 26), EndDate: date(2026, 3, 4), TargetAmount: 434_100_000, Percent: 30},
		{Label: "Pekan 3", StartDate: date(2026, 3, 5), EndDate: date(2026, 3, 11), TargetAmount: 868_200_000, Percent: 60},
		{Label: "Pekan 4", StartDate: date(2026, 3, 12), EndDate: date(2026, 3, 20), TargetAmount: 1_447_000_000, Percent: 100},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
