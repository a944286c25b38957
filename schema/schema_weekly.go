package schema

// Weekly metric structs use pointer fields so that a window with no
// entries reports null rather than a computed zero masquerading as
// data. A delta is only present when both windows have an aggregate.

// SedentaryMetric reports average seated-block hours per week.
type SedentaryMetric struct {
	ThisWeekAvgHours *float64 `json:"this_week_avg_seated_block_hours"`
	LastWeekAvgHours *float64 `json:"last_week_avg_seated_block_hours"`
	ChangeHours      *float64 `json:"change_hours"`
	ChangePercent    *float64 `json:"change_percent"`
}

// HydrationMetric reports the share of entries meeting the hydration
// compliance rule per week.
type HydrationMetric struct {
	ThisWeekCompliancePercent *float64 `json:"this_week_compliance_percent"`
	LastWeekCompliancePercent *float64 `json:"last_week_compliance_percent"`
	ChangePercentPoints       *float64 `json:"change_percent_points"`
}

// SleepMetric reports average sleep hours per week and the resulting
// trend classification.
type SleepMetric struct {
	ThisWeekAvgSleepHours *float64    `json:"this_week_avg_sleep_hours"`
	LastWeekAvgSleepHours *float64    `json:"last_week_avg_sleep_hours"`
	ChangeHours           *float64    `json:"change_hours"`
	Trend                 *SleepTrend `json:"trend"`
}

// RemindersMetric reports completed reminder counts per week.
type RemindersMetric struct {
	ThisWeekCompleted *int `json:"this_week_completed"`
	LastWeekCompleted *int `json:"last_week_completed"`
	Change            *int `json:"change"`
}

// HighRiskMetric reports the number of days whose recorded Workday
// Health Index met or exceeded the threshold.
type HighRiskMetric struct {
	Threshold        float64 `json:"threshold"`
	ThisWeekHighRisk *int    `json:"this_week_high_risk_days"`
	LastWeekHighRisk *int    `json:"last_week_high_risk_days"`
	Change           *int    `json:"change"`
}

// WeeklyReport bundles all week-over-week behavioral metrics. It is
// computed independently of the scoring pipeline from the same raw
// histories.
type WeeklyReport struct {
	Sedentary    SedentaryMetric `json:"sedentary"`
	Hydration    HydrationMetric `json:"hydration"`
	Sleep        SleepMetric     `json:"sleep"`
	Reminders    RemindersMetric `json:"reminders"`
	HighRiskDays HighRiskMetric  `json:"high_risk_days"`
}
