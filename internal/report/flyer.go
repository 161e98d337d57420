package report

import (
	"sort"
	"time"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// BuildFlyerPerformance reshapes day-bucketed sales rows into the
// product x day matrix for the template's date range. Every resolved
// product gets a zero-filled row regardless of sales; rows whose date
// offset falls outside the range are dropped (guards against boundary
// or timezone drift in the source data). Output is sorted by total
// quantity descending, stable over the incoming name order.
func BuildFlyerPerformance(tmpl *entity.FlyerTemplate, products []entity.FlyerProduct, sales []entity.FlyerSalesRow) *entity.FlyerPerformance {
	start := dateOnly(tmpl.StartDate)
	end := dateOnly(tmpl.EndDate)

	numDays := int(end.Sub(start).Hours()/24) + 1
	if numDays < 1 {
		numDays = 1
	}

	dates := make([]time.Time, numDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	perf := make([]entity.ProductPerformance, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		perf[i] = entity.ProductPerformance{
			ProductRetailerId: p.RetailerId,
			ProductName:       p.Name,
			DailyQuantities:   make([]int64, numDays),
		}
		index[p.RetailerId] = i
	}

	for _, sale := range sales {
		i, ok := index[sale.ProductRetailerId]
		if !ok {
			continue
		}
		offset := int(dateOnly(sale.SaleDate).Sub(start).Hours() / 24)
		if offset < 0 || offset >= numDays {
			continue
		}
		perf[i].DailyQuantities[offset] += sale.Quantity
		perf[i].TotalQuantity += sale.Quantity
		perf[i].TotalRevenue = perf[i].TotalRevenue.Add(sale.Revenue)
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalQuantity > perf[j].TotalQuantity
	})

	return &entity.FlyerPerformance{
		Template: tmpl,
		Dates:    dates,
		NumDays:  numDays,
		Products: perf,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
