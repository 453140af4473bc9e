package domain

import "time"

// Report represents a complete forecast report
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalVolume float64
	Unit        string
}

// TimePeriod represents the projection horizon of the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

type ReportSection struct {
	Title   string
	Summary map[string]any
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       float64
	Unit        string
	Description string
}
