package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Personal goal and task tracker API",
        "title": "Todos API",
        "version": "1.0"
    },
    "host": "localhost:5000",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register",
                "description": "Create a new account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "account",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["username", "email", "password"],
                            "properties": {
                                "username": {"type": "string", "example": "alice"},
                                "email": {"type": "string", "example": "a@x.com"},
                                "password": {"type": "string", "example": "pw123"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "User registered"},
                    "400": {"description": "Missing fields"},
                    "409": {"description": "Email already in use"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Login",
                "description": "Exchange credentials for a session token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["email", "password"],
                            "properties": {
                                "email": {"type": "string", "example": "a@x.com"},
                                "password": {"type": "string", "example": "pw123"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/goals": {
            "get": {
                "tags": ["Goals"],
                "summary": "List Goals",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Goals owned by the acting user"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Goals"],
                "summary": "Create Goal",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Goal created with assigned identifiers"},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/goals/{id}": {
            "get": {
                "tags": ["Goals"],
                "summary": "Get Goal",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Goal"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "put": {
                "tags": ["Goals"],
                "summary": "Update Goal",
                "description": "Merges supplied fields onto the stored goal",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Updated goal"},
                    "400": {"description": "Invalid input"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "delete": {
                "tags": ["Goals"],
                "summary": "Delete Goal",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Goal deleted; task references cleared"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Tasks owned by the acting user"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create Task",
                "description": "A milestoneId is resolved to its owning goal, overriding any supplied goalId",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Task created"},
                    "400": {"description": "Invalid input or unknown milestone"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get Task",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Task"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update Task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Updated task"},
                    "400": {"description": "Invalid input or unknown milestone"},
                    "404": {"description": "Not found or not owned"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete Task",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Task deleted"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the session token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Todos API",
	Description:      "Personal goal and task tracker API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
