// Package docs registers the swagger document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List published posts",
                "parameters": [
                    {"type": "integer", "default": 4, "description": "Max posts (1-50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PostDTO"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/posts/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get published post by slug",
                "parameters": [
                    {"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ProjectDTO"}}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "현재 로그인한 사용자 조회",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MeDTO"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/admin/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all posts for admin",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PostDTO"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a post",
                "parameters": [
                    {"description": "Post", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostInputDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedDTO"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/admin/posts/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update a post",
                "parameters": [
                    {"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true},
                    {"description": "Post", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostInputDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a post",
                "parameters": [
                    {"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponseDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/admin/posts/{id}/toggle-published": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Toggle published",
                "parameters": [
                    {"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PublishedStateDTO"}}
                }
            }
        },
        "/admin/projects": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a project",
                "parameters": [
                    {"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProjectInputDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedDTO"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/admin/projects/{id}/toggle-featured": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Toggle featured",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FeaturedStateDTO"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponseDTO": {"type": "object", "properties": {"error": {"type": "string", "example": "invalid_token"}}},
        "dto.MessageResponseDTO": {"type": "object", "properties": {"message": {"type": "string"}}},
        "dto.CreatedDTO": {"type": "object", "properties": {"id": {"type": "string"}}},
        "dto.PublishedStateDTO": {"type": "object", "properties": {"id": {"type": "string"}, "published": {"type": "boolean"}}},
        "dto.FeaturedStateDTO": {"type": "object", "properties": {"id": {"type": "string"}, "featured": {"type": "boolean"}}},
        "dto.MeDTO": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"},
                "profile_image": {"type": "string"}, "role": {"type": "string"}, "is_admin": {"type": "boolean"}
            }
        },
        "dto.PostDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "slug": {"type": "string"},
                "excerpt": {"type": "string"}, "content": {"type": "string"}, "cover_image": {"type": "string"},
                "published": {"type": "boolean"}, "author_id": {"type": "string"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "dto.PostInputDTO": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}, "slug": {"type": "string"}, "excerpt": {"type": "string"},
                "content": {"type": "string"}, "cover_image": {"type": "string"}, "published": {"type": "boolean"}
            }
        },
        "dto.ProjectDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "image_url": {"type": "string"}, "tech_stack": {"type": "array", "items": {"type": "string"}},
                "live_url": {"type": "string"}, "repo_url": {"type": "string"}, "featured": {"type": "boolean"},
                "revenue": {"type": "string"}, "users_count": {"type": "string"}, "sort_order": {"type": "integer"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "dto.ProjectInputDTO": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}, "description": {"type": "string"}, "image_url": {"type": "string"},
                "tech_stack": {"type": "string"}, "live_url": {"type": "string"}, "repo_url": {"type": "string"},
                "featured": {"type": "boolean"}, "revenue": {"type": "string"}, "users_count": {"type": "string"},
                "sort_order": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Portfolio API",
	Description:      "Public reads and admin CRUD for the portfolio's blog posts and projects",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
