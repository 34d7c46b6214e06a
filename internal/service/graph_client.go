package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const GRAPH_API_URL = "https://graph.facebook.com/v21.0"

// insights fetches Graph API insights for an object and renames the metrics
// through names. Metrics missing from names are kept as reported.
func insights(ctx context.Context, api *apiClient, objectID string, metrics string, params url.Values, names map[string]string) (map[string]int64, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("metric", metrics)

	var resp transfer.GraphInsightsResponse
	path := fmt.Sprintf("/%s/insights?%s", url.PathEscape(objectID), params.Encode())
	if _, err := api.do(ctx, http.MethodGet, path, nil, &resp, nil); err != nil {
		return nil, err
	}

	out := map[string]int64{}
	for name, value := range resp.Totals() {
		if renamed, ok := names[name]; ok {
			name = renamed
		}
		out[name] += value
	}
	return out, nil
}

func dateRangeParams(r *models.DateRange) url.Values {
	params := url.Values{}
	if r != nil {
		params.Set("since", fmt.Sprintf("%d", r.Start.Unix()))
		params.Set("until", fmt.Sprintf("%d", r.End.Unix()))
	}
	return params
}

func mergeMetrics(dst, src map[string]int64) {
	for k, v := range src {
		dst[k] += v
	}
}
