// Package docs holds the OpenAPI document for tzdetect-api.
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/tzdetect-api/main.go -o internal/services/api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Load one account",
                "parameters": [
                    {"type": "string", "description": "Account id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.Account"}},
                    "404": {"description": "not found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Create or replace an account",
                "description": "Runs timezone detection before the write when TZDETECT_ON is set",
                "parameters": [
                    {"type": "string", "description": "Account id", "name": "id", "in": "path", "required": true},
                    {"description": "Account", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SaveInput"}}
                ],
                "responses": {
                    "200": {"description": "updated", "schema": {"$ref": "#/definitions/domain.Account"}},
                    "201": {"description": "created", "schema": {"$ref": "#/definitions/domain.Account"}},
                    "415": {"description": "body is not application/json"}
                }
            },
            "delete": {
                "tags": ["Accounts"],
                "summary": "Delete an account",
                "parameters": [
                    {"type": "string", "description": "Account id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "deleted"},
                    "404": {"description": "not found"}
                }
            }
        },
        "/local-time": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Timezone"],
                "summary": "Current wall time at the address's UTC offset",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "state", "in": "query"},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "string", "name": "zip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.LocalTimeResult"}},
                    "404": {"description": "no match"}
                }
            }
        },
        "/timezone": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Timezone"],
                "summary": "Timezone name for an address",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "state", "in": "query"},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "string", "name": "zip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.TimezoneResult"}},
                    "404": {"description": "no match"}
                }
            }
        },
        "/utc-offset": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Timezone"],
                "summary": "UTC offset for an address as +HH:MM",
                "parameters": [
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "state", "in": "query"},
                    {"type": "string", "name": "country", "in": "query"},
                    {"type": "string", "name": "zip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.OffsetResult"}},
                    "404": {"description": "no match"}
                }
            }
        }
    },
    "definitions": {
        "domain.Account": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"},
                "zip": {"type": "string"},
                "timezone": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.SaveInput": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "city": {"type": "string", "maxLength": 100},
                "state": {"type": "string", "maxLength": 100},
                "country": {"type": "string", "maxLength": 100},
                "zip": {"type": "string", "maxLength": 20}
            }
        },
        "domain.LocalTimeResult": {
            "type": "object",
            "properties": {
                "local_time": {"type": "string"},
                "utc_offset": {"type": "string"}
            }
        },
        "domain.OffsetResult": {
            "type": "object",
            "properties": {
                "utc_offset": {"type": "string"}
            }
        },
        "domain.TimezoneResult": {
            "type": "object",
            "properties": {
                "timezone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "tzdetect API",
	Description:      "Timezone detection for addresses, plus accounts that carry a detected timezone",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
