package mail

import (
	"context"
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

const DailyReportTemplate = "daily_report.gohtml"

const flyerDateLayout = "Jan 2"

// reportData is the flattened view the daily report template renders.
// All money values arrive pre-formatted so the template stays dumb.
type reportData struct {
	BusinessName string
	ReportDate   string

	TotalRevenue      string
	TotalTransactions int
	ItemsSold         int64
	NewCustomers      int

	Orders []orderRow
	Flyer  *flyerView
}

type orderRow struct {
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	ChannelName   string
	PlacedAt      string
	NumberOfItems int
	Total         string
	Status        string
}

type flyerView struct {
	TemplateName string
	Period       string
	Dates        []string
	Products     []flyerProductRow
	Message      string
}

type flyerProductRow struct {
	Name          string
	Quantities    []int64
	TotalQuantity int64
	TotalRevenue  string
}

// SendDailyReport renders and dispatches one business's report.
func (m *Mailer) SendDailyReport(ctx context.Context, to string, report *entity.DailyReport) error {
	if to == "" {
		return fmt.Errorf("empty recipient for business %q", report.BusinessName)
	}

	subject := fmt.Sprintf("Daily Sales Report - %s - %s", report.BusinessName, report.ReportDate)

	msg, err := m.buildMessage(to, DailyReportTemplate, subject, buildReportData(report))
	if err != nil {
		return fmt.Errorf("error building daily report: %w", err)
	}

	return m.send(ctx, msg)
}

func buildReportData(report *entity.DailyReport) *reportData {
	data := &reportData{
		BusinessName:      report.BusinessName,
		ReportDate:        report.ReportDate,
		TotalRevenue:      report.Metrics.TotalRevenue.StringFixed(2),
		TotalTransactions: report.Metrics.TotalTransactions,
		ItemsSold:         report.Metrics.ItemsSold,
		NewCustomers:      report.Metrics.NewCustomers,
	}

	for _, o := range report.Orders {
		data.Orders = append(data.Orders, orderRow{
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhoneDisplay,
			ChannelName:   o.ChannelName,
			PlacedAt:      o.CreatedAt.In(entity.ReportingZone).Format("3:04 PM"),
			NumberOfItems: o.NumberOfItems,
			Total:         o.TotalOrderValue.StringFixed(2),
			Status:        o.Status,
		})
	}

	if report.Flyer != nil {
		data.Flyer = buildFlyerView(report.Flyer)
	}

	return data
}

func buildFlyerView(fp *entity.FlyerPerformance) *flyerView {
	if fp.NoData != "" {
		return &flyerView{Message: flyerMessage(fp.NoData)}
	}

	v := &flyerView{
		TemplateName: fp.Template.Name,
		Period: fmt.Sprintf("%s to %s",
			fp.Template.StartDate.Format(entity.ReportDateLayout),
			fp.Template.EndDate.Format(entity.ReportDateLayout),
		),
	}
	for _, d := range fp.Dates {
		v.Dates = append(v.Dates, d.Format(flyerDateLayout))
	}
	for _, p := range fp.Products {
		v.Products = append(v.Products, flyerProductRow{
			Name:          p.ProductName,
			Quantities:    p.DailyQuantities,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue.StringFixed(2),
		})
	}

	return v
}

func flyerMessage(nd entity.FlyerNoData) string {
	switch nd {
	case entity.FlyerNoTemplate:
		return "No active weekly flyer for this period."
	case entity.FlyerNoSections:
		return "The active weekly flyer has no sections."
	case entity.FlyerNoProducts:
		return "The active weekly flyer has no products."
	default:
		return "No weekly flyer data available."
	}
}
