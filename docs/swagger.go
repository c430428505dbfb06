// Package docs registers the API description served under /swagger.
package docs

import "github.com/swaggo/swag"

// @title           Kanban Board API
// @version         1.0
// @description     Boards, lists, cards, team members, labels and checklists.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey AdminPassword
// @in header
// @name x-admin-password

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token from /admin/login.

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "AdminPassword": {"type": "apiKey", "name": "x-admin-password", "in": "header"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/boards": {
            "get": {"tags": ["Boards"], "summary": "List boards with lists, cards, members and labels", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Boards"], "summary": "Create a board with the default lists", "responses": {"201": {"description": "Created"}, "400": {"description": "Board title is required"}}}
        },
        "/boards/{id}": {
            "get": {"tags": ["Boards"], "summary": "Get a board", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}},
            "put": {"tags": ["Boards"], "summary": "Update a board", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Board not found"}}},
            "delete": {"tags": ["Boards"], "summary": "Delete a board", "security": [{"AdminPassword": []}, {"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Admin authentication required"}, "404": {"description": "Board not found"}}}
        },
        "/boards/{id}/access": {
            "post": {"tags": ["Boards"], "summary": "Validate a board access code", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Access code is required"}, "401": {"description": "Invalid access code"}, "404": {"description": "Board not found"}}}
        },
        "/boards/{id}/lists/reorder": {
            "post": {"tags": ["Lists"], "summary": "Renumber the board's lists in the given order", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "List does not belong to this board"}}}
        },
        "/lists": {
            "get": {"tags": ["Lists"], "summary": "Lists of a board", "parameters": [{"name": "boardId", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Lists"], "summary": "Create a list", "responses": {"201": {"description": "Created"}}}
        },
        "/lists/{id}": {
            "put": {"tags": ["Lists"], "summary": "Update a list", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Lists"], "summary": "Delete a list and its cards", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/cards": {
            "get": {"tags": ["Cards"], "summary": "Cards filtered by list or board", "parameters": [{"name": "listId", "in": "query", "type": "string"}, {"name": "boardId", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Cards"], "summary": "Create a card at the end of a list", "responses": {"201": {"description": "Created"}}}
        },
        "/cards/{id}": {
            "get": {"tags": ["Cards"], "summary": "Get a card", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Cards"], "summary": "Update or move a card", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Cards"], "summary": "Delete a card", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/cards/{id}/assignments": {
            "post": {"tags": ["Cards"], "summary": "Assign a team member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"201": {"description": "Created"}}},
            "delete": {"tags": ["Cards"], "summary": "Unassign a team member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "teamMemberId", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/cards/{id}/labels/{labelId}": {
            "post": {"tags": ["Cards"], "summary": "Attach a label", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "labelId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Cards"], "summary": "Detach a label", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "labelId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/team-members": {
            "get": {"tags": ["Team members"], "summary": "Members of a board", "parameters": [{"name": "boardId", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Team members"], "summary": "Create a member", "responses": {"201": {"description": "Created"}}}
        },
        "/team-members/{id}": {
            "put": {"tags": ["Team members"], "summary": "Update a member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Team members"], "summary": "Delete a member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/labels": {
            "get": {"tags": ["Labels"], "summary": "Labels of a board", "parameters": [{"name": "boardId", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Labels"], "summary": "Create a label", "responses": {"201": {"description": "Created"}}}
        },
        "/labels/{id}": {
            "put": {"tags": ["Labels"], "summary": "Update a label", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Labels"], "summary": "Delete a label", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/checklist": {
            "post": {"tags": ["Checklist"], "summary": "Add a checklist item", "responses": {"201": {"description": "Created"}}}
        },
        "/checklist/{id}": {
            "put": {"tags": ["Checklist"], "summary": "Update a checklist item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Checklist"], "summary": "Delete a checklist item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/login": {
            "post": {"tags": ["Admin"], "summary": "Check the admin password", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid admin password"}}}
        },
        "/setup/status": {
            "get": {"tags": ["Setup"], "summary": "Database reachability and row counts", "responses": {"200": {"description": "OK"}, "503": {"description": "Database not ready"}}}
        },
        "/events": {
            "get": {"tags": ["Live"], "summary": "Websocket stream of change events", "responses": {"101": {"description": "Switching Protocols"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanban Board API",
	Description:      "Boards, lists, cards, team members, labels and checklists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
