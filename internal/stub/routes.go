package stub

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/apigateway"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/jroosing/awsrest/internal/stub/handlers"
	"github.com/jroosing/awsrest/internal/stub/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/awsrest/internal/stub/docs" // swagger docs
)

// ginRoute rewrites the {name} tokens of a client path template into gin
// parameters, so the stub serves the same paths the marshallers build.
func ginRoute(template string) string {
	for _, name := range protocol.Placeholders(template) {
		template = strings.Replace(template, "{"+name+"}", ":"+name, 1)
	}
	return template
}

// RegisterRoutes mounts the system and service routes. A non-empty apiKey
// gates the service routes only.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, reg *prometheus.Registry, apiKey string) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	r.GET("/health", h.Health)

	svc := r.Group("/")
	if apiKey != "" {
		svc.Use(middleware.RequireAPIKey(apiKey))
	}

	methodResponseRoute := ginRoute(apigateway.MethodResponsePath)
	svc.PUT(methodResponseRoute, h.PutMethodResponse)
	svc.GET(methodResponseRoute, h.GetMethodResponse)
	svc.PATCH(methodResponseRoute, h.UpdateMethodResponse)
	svc.DELETE(methodResponseRoute, h.DeleteMethodResponse)

	svc.POST(ginRoute(route53.ChangeResourceRecordSetsPath), h.ChangeResourceRecordSets)
	svc.GET(ginRoute(route53.ListResourceRecordSetsPath), h.ListResourceRecordSets)
}
