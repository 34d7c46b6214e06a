package transfer

type GraphErrorResponse struct {
	Error struct {
		Message        string `json:"message"`
		Type           string `json:"type"`
		Code           int    `json:"code"`
		ErrorSubcode   int    `json:"error_subcode"`
		IsTransient    bool   `json:"is_transient"`
		ErrorUserTitle string `json:"error_user_title"`
		ErrorUserMsg   string `json:"error_user_msg"`
		FbtraceID      string `json:"fbtrace_id"`
	} `json:"error"`
}

type GraphIDResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id,omitempty"`
}

type InstagramMedia struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	MediaType string `json:"media_type"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

type GraphInsightsResponse struct {
	Data []struct {
		Name   string `json:"name"`
		Period string `json:"period"`
		Values []struct {
			Value   int64  `json:"value"`
			EndTime string `json:"end_time"`
		} `json:"values"`
	} `json:"data"`
}

// Totals sums every value of every returned metric, keyed by metric name.
func (r *GraphInsightsResponse) Totals() map[string]int64 {
	totals := make(map[string]int64, len(r.Data))
	for _, metric := range r.Data {
		for _, v := range metric.Values {
			totals[metric.Name] += v.Value
		}
	}
	return totals
}

type FacebookPost struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	CreatedTime  string `json:"created_time"`
	PermalinkURL string `json:"permalink_url"`
}
