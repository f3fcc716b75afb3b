package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/analytics"
	cache "github.com/AkshatM1707/finance-assistant/src/db"
)

func GetAnalytics(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		timeRange := r.URL.Query().Get("timeRange")
		if timeRange == "" {
			timeRange = "month"
		}

		cacheKey := fmt.Sprintf("analytics:%d:%s", userID, timeRange)
		if v, ok := cache.GetAnalyticsCache(cacheKey); ok {
			if report, ok := v.(*analytics.Report); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(report)
				return
			}
		}

		report, err := svc.Report(r.Context(), userID, timeRange, time.Now())
		if err != nil {
			log.Printf("ERROR: Failed to compute analytics for user %d: %v", userID, err)
			http.Error(w, "Failed to compute analytics", http.StatusInternalServerError)
			return
		}

		// Reports degraded by a failed sub-aggregation are not cached so the
		// next request gets a fresh attempt.
		if !report.Partial {
			cache.SetAnalyticsCache(cacheKey, report)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}
