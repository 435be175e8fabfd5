// Package handlers implements the stub endpoint's HTTP handlers.
//
// Endpoints:
//
// API Gateway (REST-JSON):
//   - PUT    /restapis/:restapi_id/resources/:resource_id/methods/:http_method/responses/:status_code
//   - GET    /restapis/:restapi_id/resources/:resource_id/methods/:http_method/responses/:status_code
//   - PATCH  /restapis/:restapi_id/resources/:resource_id/methods/:http_method/responses/:status_code
//   - DELETE /restapis/:restapi_id/resources/:resource_id/methods/:http_method/responses/:status_code
//
// Route 53 (REST-XML):
//   - POST /2013-04-01/hostedzone/:Id/rrset/ - apply a change batch
//   - GET  /2013-04-01/hostedzone/:Id/rrset  - list record sets
//
// System:
//   - GET /health - liveness, uptime and memory
//
// Service routes answer in the service's own wire format, errors included,
// so the awsrest clients can be pointed at the stub unchanged.
//
// @title awsrest stub endpoint
// @version 1.0
// @description Local stand-in for the API Gateway method-response and Route 53 record-set APIs.
//
// @host localhost:4566
// @BasePath /
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/stub/store"
)

// Handler contains dependencies for the stub handlers.
type Handler struct {
	store     *store.Store
	logger    *slog.Logger
	startTime time.Time

	jsonFactory protocol.JSONFactory
	xmlFactory  protocol.XMLFactory
}

// New creates a Handler backed by st.
func New(st *store.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:       st,
		logger:      logger,
		startTime:   time.Now(),
		jsonFactory: protocol.NewJSONProtocolFactory(protocol.ContentTypeJSON),
		xmlFactory:  protocol.NewXMLProtocolFactory(protocol.ContentTypeXML),
	}
}
