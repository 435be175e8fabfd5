// Package docs registers the stub endpoint's OpenAPI document with swag so
// gin-swagger can serve it under /swagger/.
package docs

import "github.com/swaggo/swag"

const methodResponsePath = "/restapis/{restapi_id}/resources/{resource_id}/methods/{http_method}/responses/{status_code}"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "` + methodResponsePath + `": {
            "parameters": [
                {"type": "string", "name": "restapi_id", "in": "path", "required": true},
                {"type": "string", "name": "resource_id", "in": "path", "required": true},
                {"type": "string", "name": "http_method", "in": "path", "required": true},
                {"type": "string", "name": "status_code", "in": "path", "required": true}
            ],
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apigateway"],
                "summary": "Get a method response",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apigateway.MethodResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["apigateway"],
                "summary": "Create or replace a method response",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/apigateway.MethodResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["apigateway"],
                "summary": "Patch a method response",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apigateway.MethodResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["apigateway"],
                "summary": "Delete a method response",
                "responses": {
                    "202": {"description": "Accepted"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/2013-04-01/hostedzone/{Id}/rrset/": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/xml"],
                "produces": ["application/xml"],
                "tags": ["route53"],
                "summary": "Apply a change batch",
                "parameters": [{"type": "string", "name": "Id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "ChangeResourceRecordSetsResponse document"},
                    "400": {"description": "ErrorResponse document"}
                }
            }
        },
        "/2013-04-01/hostedzone/{Id}/rrset": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/xml"],
                "tags": ["route53"],
                "summary": "List record sets",
                "parameters": [
                    {"type": "string", "name": "Id", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "identifier", "in": "query"},
                    {"type": "integer", "name": "maxitems", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ListResourceRecordSetsResponse document"},
                    "400": {"description": "ErrorResponse document"}
                }
            }
        }
    },
    "definitions": {
        "apigateway.MethodResponse": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "string"},
                "responseParameters": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "responseModels": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "start_time": {"type": "string"},
                "uptime": {"type": "string"},
                "uptime_seconds": {"type": "integer"},
                "host_uptime_seconds": {"type": "integer"},
                "rss_bytes": {"type": "integer"},
                "goroutines": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4566",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "awsrest stub endpoint",
	Description:      "Local stand-in for the API Gateway method-response and Route 53 record-set APIs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
