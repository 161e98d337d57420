package entity

import "time"

// ReportingZone anchors all calendar-day bucketing. It matches the
// fixed-offset EST used in the SQL (AT TIME ZONE 'EST'), deliberately
// not the DST-shifting America/New_York.
var ReportingZone = time.FixedZone("EST", -5*60*60)

// ReportDateLayout is the wire format for report dates.
const ReportDateLayout = "2006-01-02"

// DailyReport is the per-business unit of work handed to the report
// template and the mail dispatcher.
type DailyReport struct {
	BusinessName string
	ReportDate   string
	Metrics      DailyMetrics
	Orders       []Order
	Flyer        *FlyerPerformance
}
