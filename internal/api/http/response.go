package httpapi

import (
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// The legacy dashboard consumes these shapes verbatim, including the
// always-200 "error" field convention, so they are kept stable.

type metricsResponse struct {
	Error             string          `json:"error,omitempty"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalTransactions int             `json:"total_transactions"`
	ItemsSold         int64           `json:"items_sold"`
	NewCustomers      int             `json:"new_customers"`
	ReportDate        string          `json:"report_date"`
}

type ordersResponse struct {
	Error       string         `json:"error,omitempty"`
	Orders      []entity.Order `json:"orders"`
	TotalOrders int            `json:"total_orders"`
	ReportDate  string         `json:"report_date,omitempty"`
}

type templateInfo struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	NumDays   int    `json:"num_days"`
	Status    string `json:"status"`
}

type flyerDebugInfo struct {
	TotalTemplates             int     `json:"total_templates"`
	ActiveTemplates            int     `json:"active_templates"`
	WeeklyFlyerTemplates       int     `json:"weekly_flyer_templates"`
	ActiveWeeklyFlyerTemplates int     `json:"active_weekly_flyer_templates"`
	BusinessAccountIdFilter    *string `json:"business_account_id_filter"`
}

// flyerResponse carries the per-product rows as maps because each row
// holds flat day_1..day_N keys next to the fixed fields.
type flyerResponse struct {
	Error         string           `json:"error,omitempty"`
	Products      []map[string]any `json:"products"`
	TemplateInfo  *templateInfo    `json:"template_info"`
	TotalProducts int              `json:"total_products,omitempty"`
	DebugInfo     *flyerDebugInfo  `json:"debug_info,omitempty"`
}

func buildFlyerResponse(fp *entity.FlyerPerformance, businessAccountId *string) *flyerResponse {
	switch fp.NoData {
	case entity.FlyerNoTemplate:
		return &flyerResponse{
			Error:    "No active Weekly Flyer template found",
			Products: []map[string]any{},
			DebugInfo: &flyerDebugInfo{
				TotalTemplates:             fp.Diagnostics.TotalTemplates,
				ActiveTemplates:            fp.Diagnostics.ActiveTemplates,
				WeeklyFlyerTemplates:       fp.Diagnostics.WeeklyFlyerTemplates,
				ActiveWeeklyFlyerTemplates: fp.Diagnostics.ActiveWeeklyFlyerTemplates,
				BusinessAccountIdFilter:    businessAccountId,
			},
		}
	case entity.FlyerNoSections:
		return &flyerResponse{
			Error:        "No sections found for Weekly Flyer template",
			Products:     []map[string]any{},
			TemplateInfo: buildTemplateInfo(fp),
		}
	case entity.FlyerNoProducts:
		return &flyerResponse{
			Error:        "No products found in Weekly Flyer sections",
			Products:     []map[string]any{},
			TemplateInfo: buildTemplateInfo(fp),
		}
	}

	products := make([]map[string]any, 0, len(fp.Products))
	for _, p := range fp.Products {
		row := map[string]any{
			"product_name":   p.ProductName,
			"total_quantity": p.TotalQuantity,
			"total_revenue":  p.TotalRevenue,
		}
		for i, q := range p.DailyQuantities {
			row[fmt.Sprintf("day_%d", i+1)] = q
		}
		products = append(products, row)
	}

	return &flyerResponse{
		Products:      products,
		TemplateInfo:  buildTemplateInfo(fp),
		TotalProducts: len(products),
	}
}

func buildTemplateInfo(fp *entity.FlyerPerformance) *templateInfo {
	if fp.Template == nil {
		return nil
	}
	return &templateInfo{
		Id:        fp.Template.Id,
		Name:      fp.Template.Name,
		StartDate: fp.Template.StartDate.Format(entity.ReportDateLayout),
		EndDate:   fp.Template.EndDate.Format(entity.ReportDateLayout),
		NumDays:   fp.NumDays,
		Status:    fp.Template.Status,
	}
}

type debugTemplatesResponse struct {
	Error                   string                   `json:"error,omitempty"`
	Templates               []entity.TemplateSummary `json:"templates"`
	Total                   int                      `json:"total"`
	WeeklyFlyerTemplates    []entity.TemplateSummary `json:"weekly_flyer_templates"`
	ActiveWeeklyFlyerCount  int                      `json:"active_weekly_flyer_count"`
	BusinessAccountIdFilter *string                  `json:"business_account_id_filter"`
}

type channelMappingRow struct {
	ChannelTypeId *string `json:"channel_type_id"`
	MappedName    string  `json:"mapped_name"`
	OrderCount    int     `json:"order_count"`
}

type channelMappingResponse struct {
	Error    string              `json:"error,omitempty"`
	Channels []channelMappingRow `json:"channels"`
	Mapping  map[string]string   `json:"mapping"`
}

type healthResponse struct {
	Status        string `json:"status"`
	PrimaryStore  string `json:"primary_store,omitempty"`
	ContactsStore string `json:"contacts_store,omitempty"`
	Error         string `json:"error,omitempty"`
}

type errResponse struct {
	Error string `json:"error"`
}
