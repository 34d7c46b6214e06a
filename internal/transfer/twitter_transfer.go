package transfer

type TweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type TweetRequest struct {
	Text  string      `json:"text"`
	Media *TweetMedia `json:"media,omitempty"`
}

type TweetPublicMetrics struct {
	RetweetCount    int64 `json:"retweet_count"`
	ReplyCount      int64 `json:"reply_count"`
	LikeCount       int64 `json:"like_count"`
	QuoteCount      int64 `json:"quote_count"`
	ImpressionCount int64 `json:"impression_count"`
}

type Tweet struct {
	ID            string             `json:"id"`
	Text          string             `json:"text"`
	CreatedAt     string             `json:"created_at,omitempty"`
	PublicMetrics TweetPublicMetrics `json:"public_metrics"`
}

type TweetResponse struct {
	Data Tweet `json:"data"`
}

type TweetsResponse struct {
	Data []Tweet `json:"data"`
}

type TwitterUserResponse struct {
	Data struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		PublicMetrics struct {
			FollowersCount int64 `json:"followers_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

type TwitterMediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}
