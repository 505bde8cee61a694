// Package docs registers the OpenAPI document served under /swagger.
package docs

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
    "paths": {
        "/health": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/units": {
            "get": {"tags": ["units"], "summary": "List units", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/units/{id}/renumber": {
            "post": {"tags": ["units"], "summary": "Renumber a unit's file numbers",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}}}
        },
        "/locations/preview": {
            "get": {"tags": ["locations"], "summary": "Preview a storage location", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "unit_id", "in": "query"},
                    {"type": "integer", "name": "file_number", "in": "query"},
                    {"type": "string", "name": "edit_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.StorageAddress"}}, "404": {"description": "Not Found"}}}
        },
        "/archives": {
            "get": {"tags": ["archives"], "summary": "List archive records", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"},
                    {"type": "integer", "name": "unit_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["archives"], "summary": "Create an archive record",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ArchiveInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.ArchiveRecord"}},
                    "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/archives/{id}": {
            "get": {"tags": ["archives"], "summary": "Get an archive record",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ArchiveRecord"}}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["archives"], "summary": "Update an archive record",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ArchiveInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ArchiveRecord"}}}},
            "delete": {"tags": ["archives"], "summary": "Delete an archive record",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/archives/{id}/inactive": {
            "post": {"tags": ["archives"], "summary": "Move an archive record to inactive storage",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        }
    },
    "definitions": {
        "model.StorageAddress": {
            "type": "object",
            "properties": {
                "cabinet_prefix": {"type": "string"},
                "drawer_number": {"type": "string"},
                "folder_number": {"type": "string"}
            }
        },
        "model.ArchiveRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "unit_id": {"type": "integer"},
                "classification_code": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "file_number": {"type": "integer"},
                "location_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "service.ArchiveInput": {
            "type": "object",
            "properties": {
                "unit_id": {"type": "integer"},
                "classification_code": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "file_number": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Archive API",
	Description:      "Active archive records and their cabinet/drawer/folder storage locations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
