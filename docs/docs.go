// Package docs registers the OpenAPI description served at /swagger/*.
//
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/check-auth": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Session status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.checkAuthResponse"}}
                }
            }
        },
        "/create-user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create or request an account",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.usersResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/update-user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update account",
                "parameters": [
                    {"description": "Changes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/delete-user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete account",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.usernameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/approve-user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Approve account",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.usernameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/reject-user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Reject account",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.usernameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List roles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.rolesResponse"}}
                }
            }
        },
        "/create-role": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Create role",
                "parameters": [
                    {"description": "Role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.roleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/update-role": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Rename role",
                "parameters": [
                    {"description": "Rename", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.renameRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/delete-role": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Delete role",
                "parameters": [
                    {"description": "Role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.roleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List calendar events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create a calendar event",
                "parameters": [
                    {"description": "Event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/events/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update a calendar event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Changes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete a calendar event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/activity-log": {
            "get": {
                "produces": ["application/json"],
                "tags": ["activity"],
                "summary": "Activity log",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.activityResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.healthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.sessionUser": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.sessionUser"}
            }
        },
        "handler.checkAuthResponse": {
            "type": "object",
            "properties": {
                "loggedIn": {"type": "boolean"},
                "user": {"$ref": "#/definitions/handler.sessionUser"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["password", "role", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "required": ["role", "username"],
            "properties": {
                "username": {"type": "string"},
                "role": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.usernameRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"}
            }
        },
        "domain.UserSummary": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "active"]}
            }
        },
        "handler.usersResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/domain.UserSummary"}}
            }
        },
        "handler.roleRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string"}
            }
        },
        "handler.renameRoleRequest": {
            "type": "object",
            "properties": {
                "oldRole": {"type": "string"},
                "newRole": {"type": "string"}
            }
        },
        "handler.rolesResponse": {
            "type": "object",
            "properties": {
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "description": {"type": "string"},
                "allDay": {"type": "boolean"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.createEventRequest": {
            "type": "object",
            "required": ["start", "title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "allDay": {"type": "boolean"}
            }
        },
        "handler.updateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "allDay": {"type": "boolean"}
            }
        },
        "handler.eventsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
            }
        },
        "handler.eventResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "event": {"$ref": "#/definitions/domain.Event"}
            }
        },
        "domain.ActivityLogEntry": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "user": {"type": "string"},
                "action": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handler.activityResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "activityLog": {"type": "array", "items": {"$ref": "#/definitions/domain.ActivityLogEntry"}}
            }
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
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
	Title:            "Demo Server API",
	Description:      "Session-cookie accounts, role registry, activity log and shared calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
