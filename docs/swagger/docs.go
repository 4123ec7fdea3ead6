// Package swagger provides API documentation
package swagger

import "github.com/swaggo/swag"

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
        "/v1/virtual-items": {
            "get": {"tags": ["virtual-items"], "summary": "List virtual items", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["virtual-items"], "summary": "Create a virtual item", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/v1/virtual-items/{id}": {
            "get": {"tags": ["virtual-items"], "summary": "Get a virtual item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["virtual-items"], "summary": "Update a virtual item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["virtual-items"], "summary": "Delete a virtual item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/v1/virtual-items/filters": {
            "get": {"tags": ["virtual-items"], "summary": "Distinct values of every filterable field", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/virtual-items/stats": {
            "get": {"tags": ["virtual-items"], "summary": "Catalog statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/virtual-items/export": {
            "get": {"tags": ["virtual-items"], "summary": "Export all items as spreadsheet rows", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/virtual-items/export.csv": {
            "get": {"tags": ["virtual-items"], "summary": "Download all items as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/virtual-items/import": {
            "post": {"tags": ["virtual-items"], "summary": "Import parsed spreadsheet rows", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/v1/virtual-items/import/csv": {
            "post": {"tags": ["virtual-items"], "summary": "Import a CSV upload", "consumes": ["multipart/form-data", "text/csv"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Virtual Item Catalog API",
	Description:      "CRUD, filtering, statistics and CSV import/export for the virtual item catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
