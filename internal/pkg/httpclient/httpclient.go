package httpclient

import (
	"time"

	"travel-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	TypeConsecutive = "consecutive"
	TypeThreshold   = "threshold"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	return circuit.NewHTTPClientWithBreaker(cb, timeout, nil)
}
