// Package models defines the stub's own JSON responses. Service payloads use
// the apigateway and route53 wire formats instead.
package models

import "time"

// ErrorResponse is the API Gateway error body. The error code travels in the
// X-Amzn-ErrorType header.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports stub liveness and resource use.
type HealthResponse struct {
	Status         string    `json:"status"`
	Database       string    `json:"database"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
	UptimeSeconds  int64     `json:"uptime_seconds"`
	HostUptimeSecs uint64    `json:"host_uptime_seconds,omitempty"`
	RSSBytes       uint64    `json:"rss_bytes,omitempty"`
	GoRoutines     int       `json:"goroutines"`
}
