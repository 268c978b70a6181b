// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/payroll/main.go -o internal/api/docs
package docs

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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/v1/departments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["departments"], "summary": "List departments in registration order", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["departments"], "summary": "Register a department",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/createDepartmentRequest"}}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/employees": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "List employees in hire order",
                "parameters": [{"in": "query", "name": "format", "type": "string", "enum": ["json", "text"]}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Hire an employee",
                "description": "rate is the annual salary for full_time hires and the hourly rate for part_time hires.",
                "parameters": [
                    {"in": "header", "name": "Idempotency-Key", "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/hireRequest"}}
                ],
                "responses": {"200": {"description": "Idempotent replay"}, "201": {"description": "Created"}, "404": {"description": "Department not found"}, "409": {"description": "No departments exist"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/employees/{id}": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Find an employee by ID",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "query", "name": "format", "type": "string", "enum": ["json", "text"]}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/employees/{id}/hours": {
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Record hours worked by one part-time employee",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/setHoursRequest"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Negative hours or salaried employee"}}
            }
        },
        "/v1/payroll/hours": {
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["payroll"], "summary": "Record hours for every part-time employee",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/batchHoursRequest"}}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Run cancelled"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/reports/payroll": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Weekly company-wide payroll", "parameters": [{"in": "query", "name": "format", "type": "string", "enum": ["json", "text"]}], "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/payroll/departments": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Weekly payroll grouped by department", "parameters": [{"in": "query", "name": "format", "type": "string", "enum": ["json", "text"]}], "responses": {"200": {"description": "OK"}}}},
        "/v1/reports/end-of-year": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "End-of-year bonus and training report", "parameters": [{"in": "query", "name": "format", "type": "string", "enum": ["json", "text"]}], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "loginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "createDepartmentRequest": {"type": "object", "required": ["id", "name"], "properties": {"id": {"type": "string", "maxLength": 16}, "name": {"type": "string", "maxLength": 64}}},
        "hireRequest": {
            "type": "object", "required": ["type", "first_name", "last_name", "department_id"],
            "properties": {
                "type": {"type": "string", "enum": ["full_time", "part_time"]},
                "first_name": {"type": "string"}, "last_name": {"type": "string"},
                "department_id": {"type": "string"}, "rate": {"type": "number"}
            }
        },
        "setHoursRequest": {"type": "object", "required": ["hours"], "properties": {"hours": {"type": "integer"}}},
        "batchHoursRequest": {"type": "object", "required": ["hours"], "properties": {"hours": {"type": "object", "additionalProperties": {"type": "integer"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "HR Payroll API",
	Description:      "Departments, hires, part-time hours and payroll reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
