package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Twitter struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

type LinkedIn struct {
	AccessToken string
}

type Instagram struct {
	AccessToken string
	BusinessID  string
}

type Facebook struct {
	AccessToken string
	PageID      string
}

type RabbitMQ struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type Config struct {
	Port              string
	LogLevel          string
	Twitter           Twitter
	LinkedIn          LinkedIn
	Instagram         Instagram
	Facebook          Facebook
	PostgresURI       string
	RedisURI          string
	RabbitMQ          RabbitMQ
	R2                R2
	SecretKey         string
	MediaOutputDir    string
	FFmpegPath        string
	HTTPTimeout       time.Duration
	CalendarRetention time.Duration
	PruneSchedule     string
}

func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Twitter: Twitter{
			APIKey:       getEnv("TWITTER_API_KEY", ""),
			APISecret:    getEnv("TWITTER_API_SECRET", ""),
			AccessToken:  getEnv("TWITTER_ACCESS_TOKEN", ""),
			AccessSecret: getEnv("TWITTER_ACCESS_SECRET", ""),
		},
		LinkedIn: LinkedIn{
			AccessToken: getEnv("LINKEDIN_ACCESS_TOKEN", ""),
		},
		Instagram: Instagram{
			AccessToken: getEnv("INSTAGRAM_ACCESS_TOKEN", ""),
			BusinessID:  getEnv("INSTAGRAM_BUSINESS_ID", ""),
		},
		Facebook: Facebook{
			AccessToken: getEnv("FACEBOOK_ACCESS_TOKEN", ""),
			PageID:      getEnv("FACEBOOK_PAGE_ID", ""),
		},
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		RabbitMQ: RabbitMQ{
			URL:        getEnv("RABBITMQ_URL", ""),
			Exchange:   getEnv("RABBITMQ_EXCHANGE", "postflow.dispatch"),
			RoutingKey: getEnv("RABBITMQ_ROUTING_KEY", "post.dispatched"),
			QueueName:  getEnv("RABBITMQ_QUEUE", "postflow.dispatch.events"),
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:         getEnv("SECRET_KEY", ""),
		MediaOutputDir:    getEnv("MEDIA_OUTPUT_DIR", ""),
		FFmpegPath:        getEnv("FFMPEG_PATH", "ffmpeg"),
		HTTPTimeout:       getDuration("HTTP_TIMEOUT", 30*time.Second),
		CalendarRetention: getDuration("CALENDAR_RETENTION", 7*24*time.Hour),
		PruneSchedule:     getEnv("CALENDAR_PRUNE_SCHEDULE", "@every 1h"),
	}
}

// Configured reports whether every credential the platform needs is present.
func (t Twitter) Configured() bool {
	return t.APIKey != "" && t.APISecret != "" && t.AccessToken != "" && t.AccessSecret != ""
}

func (l LinkedIn) Configured() bool {
	return l.AccessToken != ""
}

func (i Instagram) Configured() bool {
	return i.AccessToken != "" && i.BusinessID != ""
}

func (f Facebook) Configured() bool {
	return f.AccessToken != "" && f.PageID != ""
}

func (r R2) Configured() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
