// Package swagger registers the OpenAPI document of the host's HTTP API.
package swagger

import "github.com/swaggo/swag"

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/integrations": {
            "get": {
                "description": "Bootstrap report and registered providers.",
                "produces": ["application/json"],
                "tags": ["integrations"],
                "summary": "List integrations",
                "responses": {"200": {"description": "Integration listing"}}
            }
        },
        "/furniture/at": {
            "get": {
                "description": "Resolve the furniture occupying a block through the registered furniture providers.",
                "produces": ["application/json"],
                "tags": ["furniture"],
                "summary": "Furniture at location",
                "parameters": [
                    {"type": "string", "name": "world", "in": "query", "required": true},
                    {"type": "integer", "name": "x", "in": "query", "required": true},
                    {"type": "integer", "name": "y", "in": "query", "required": true},
                    {"type": "integer", "name": "z", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Furniture", "schema": {"$ref": "#/definitions/integration.Furniture"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "No provider recognizes the location"}
                }
            }
        },
        "/furniture/entity/{id}": {
            "get": {
                "description": "Resolve the furniture backed by an entity.",
                "produces": ["application/json"],
                "tags": ["furniture"],
                "summary": "Furniture of entity",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Furniture", "schema": {"$ref": "#/definitions/integration.Furniture"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "No provider recognizes the entity"}
                }
            }
        },
        "/areas/at": {
            "get": {
                "description": "Enumerate every protected area covering a block.",
                "produces": ["application/json"],
                "tags": ["areas"],
                "summary": "Areas at location",
                "parameters": [
                    {"type": "string", "name": "world", "in": "query", "required": true},
                    {"type": "integer", "name": "x", "in": "query", "required": true},
                    {"type": "integer", "name": "y", "in": "query", "required": true},
                    {"type": "integer", "name": "z", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Areas", "schema": {"type": "array", "items": {"$ref": "#/definitions/integration.Area"}}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "integration.Location": {
            "type": "object",
            "properties": {
                "world": {"type": "string"},
                "x": {"type": "integer"},
                "y": {"type": "integer"},
                "z": {"type": "integer"}
            }
        },
        "integration.Furniture": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "provider": {"type": "string"},
                "location": {"$ref": "#/definitions/integration.Location"},
                "entity": {"type": "string"},
                "attributes": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "integration.Area": {
            "type": "object",
            "properties": {
                "provider": {"type": "string"},
                "regions": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tooltips Integration API",
	Description:      "Capability lookups over the companion integrations registered in the host.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
