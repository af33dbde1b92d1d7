package report

import "context"

// ReportService builds the attendance calendar summary and the purchase
// aggregations shown on the reports page.
type ReportService interface {
	AttendanceSummary(ctx context.Context, req AttendanceSummaryRequest) (AttendanceSummary, error)
	PurchaseReport(ctx context.Context, req PurchaseReportRequest) (PurchaseReport, error)
}
