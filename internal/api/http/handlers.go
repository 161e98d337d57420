package httpapi

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Vaishnavi639/DailyDashboard/internal/cache"
	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/Vaishnavi639/DailyDashboard/internal/report"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"message": "Daily Metrics API is running"})
}

// reportDateParam returns the report_date query value or today in the
// reporting zone when absent. A malformed date is a bad request, not a
// silently empty result.
func reportDateParam(r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("report_date")
	if raw == "" {
		return time.Now().In(entity.ReportingZone).Format(entity.ReportDateLayout), true
	}
	if _, err := time.Parse(entity.ReportDateLayout, raw); err != nil {
		return "", false
	}
	return raw, true
}

// businessIdParam returns the optional business_account_id query
// value. A present but non-UUID value is a bad request.
func businessIdParam(r *http.Request) (*string, bool) {
	raw := r.URL.Query().Get("business_account_id")
	if raw == "" {
		return nil, true
	}
	if _, err := uuid.Parse(raw); err != nil {
		return nil, false
	}
	return &raw, true
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResponse{Error: msg})
}

func (s *Server) handleDailyMetrics(w http.ResponseWriter, r *http.Request) {
	reportDate, ok := reportDateParam(r)
	if !ok {
		badRequest(w, r, "report_date must be formatted as YYYY-MM-DD")
		return
	}
	businessId, ok := businessIdParam(r)
	if !ok {
		badRequest(w, r, "business_account_id must be a valid UUID")
		return
	}

	metrics, err := s.svc.DailyMetrics(r.Context(), reportDate, businessId)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "daily metrics failed",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, metricsResponse{Error: err.Error(), ReportDate: reportDate})
		return
	}

	render.JSON(w, r, metricsResponse{
		TotalRevenue:      metrics.TotalRevenue,
		TotalTransactions: metrics.TotalTransactions,
		ItemsSold:         metrics.ItemsSold,
		NewCustomers:      metrics.NewCustomers,
		ReportDate:        reportDate,
	})
}

func (s *Server) handleDailyOrders(w http.ResponseWriter, r *http.Request) {
	reportDate, ok := reportDateParam(r)
	if !ok {
		badRequest(w, r, "report_date must be formatted as YYYY-MM-DD")
		return
	}
	businessId, ok := businessIdParam(r)
	if !ok {
		badRequest(w, r, "business_account_id must be a valid UUID")
		return
	}

	orders, err := s.svc.DailyOrders(r.Context(), reportDate, businessId, report.DefaultOrderLimit)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "daily orders failed",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, ordersResponse{Error: err.Error(), Orders: []entity.Order{}})
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	render.JSON(w, r, ordersResponse{
		Orders:      orders,
		TotalOrders: len(orders),
		ReportDate:  reportDate,
	})
}

func (s *Server) handleWeeklyFlyerPerformance(w http.ResponseWriter, r *http.Request) {
	businessId, ok := businessIdParam(r)
	if !ok {
		badRequest(w, r, "business_account_id must be a valid UUID")
		return
	}

	fp, err := s.svc.FlyerPerformance(r.Context(), businessId)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "weekly flyer performance failed",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, flyerResponse{Error: err.Error(), Products: []map[string]any{}})
		return
	}

	render.JSON(w, r, buildFlyerResponse(fp, businessId))
}

func (s *Server) handleDebugTemplates(w http.ResponseWriter, r *http.Request) {
	businessId, ok := businessIdParam(r)
	if !ok {
		badRequest(w, r, "business_account_id must be a valid UUID")
		return
	}

	templates, err := s.repo.ListTemplates(r.Context(), businessId)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "template listing failed",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, debugTemplatesResponse{Error: err.Error(), Templates: []entity.TemplateSummary{}})
		return
	}
	if templates == nil {
		templates = []entity.TemplateSummary{}
	}

	weeklyFlyers := make([]entity.TemplateSummary, 0)
	activeCount := 0
	for _, t := range templates {
		if t.Name == nil || !strings.Contains(strings.ToLower(*t.Name), "weekly flyer") {
			continue
		}
		weeklyFlyers = append(weeklyFlyers, t)
		if t.Status != nil && *t.Status == "active" {
			activeCount++
		}
	}

	render.JSON(w, r, debugTemplatesResponse{
		Templates:               templates,
		Total:                   len(templates),
		WeeklyFlyerTemplates:    weeklyFlyers,
		ActiveWeeklyFlyerCount:  activeCount,
		BusinessAccountIdFilter: businessId,
	})
}

func (s *Server) handleTestChannelMapping(w http.ResponseWriter, r *http.Request) {
	usage, err := s.repo.GetChannelUsage(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "channel usage failed",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, channelMappingResponse{Error: err.Error(), Channels: []channelMappingRow{}})
		return
	}

	channels := make([]channelMappingRow, 0, len(usage))
	for _, u := range usage {
		name := cache.UnknownChannel
		if u.ChannelTypeId != nil {
			name = cache.ChannelName(*u.ChannelTypeId)
		}
		channels = append(channels, channelMappingRow{
			ChannelTypeId: u.ChannelTypeId,
			MappedName:    name,
			OrderCount:    u.OrderCount,
		})
	}

	render.JSON(w, r, channelMappingResponse{
		Channels: channels,
		Mapping:  cache.ChannelMapping(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		render.JSON(w, r, healthResponse{Status: "unhealthy", Error: err.Error()})
		return
	}
	if err := s.contacts.Ping(r.Context()); err != nil {
		render.JSON(w, r, healthResponse{Status: "unhealthy", PrimaryStore: "connected", Error: err.Error()})
		return
	}
	render.JSON(w, r, healthResponse{
		Status:        "healthy",
		PrimaryStore:  "connected",
		ContactsStore: "connected",
	})
}
