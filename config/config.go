package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	Mailer        MailerConfig
	Scheduler     SchedulerConfig
}

type HttpServerConfig struct {
	Host string `envconfig:"http_server_host" default:"0.0.0.0"`
	Port string `envconfig:"http_server_port" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"database_host" default:"localhost"`
	Port         string `envconfig:"database_port" default:"5432"`
	User         string `envconfig:"database_user" default:"postgres"`
	Password     string `envconfig:"database_password" default:"postgres"`
	Name         string `envconfig:"database_name" default:"travel"`
	SSLMode      string `envconfig:"database_ssl_mode" default:"disable"`
	MaxOpenConns int    `envconfig:"database_max_open_conns" default:"25"`
	MaxIdleConns int    `envconfig:"database_max_idle_conns" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	User     string `envconfig:"amqp_user" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type               string `envconfig:"http_client_type" default:"consecutive"`
	Threshold          int64  `envconfig:"http_client_threshold" default:"5"`
	Timeout            int    `envconfig:"http_client_timeout" default:"10"`
	MaxConcurrentConns int    `envconfig:"http_client_max_concurrent_conns" default:"100"`
}

type MailerConfig struct {
	Endpoint    string `envconfig:"mailer_endpoint" default:"http://localhost:8025/api/v1/send"`
	APIKey      string `envconfig:"mailer_api_key" default:""`
	FromAddress string `envconfig:"mailer_from_address" default:"noreply@alxtravel.com"`
}

type SchedulerConfig struct {
	Concurrency  int `envconfig:"scheduler_concurrency" default:"10"`
	MaxRetry     int `envconfig:"scheduler_max_retry" default:"5"`
	MonitorPort  int `envconfig:"scheduler_monitor_port" default:"8080"`
	RetryBaseSec int `envconfig:"scheduler_retry_base_sec" default:"10"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
