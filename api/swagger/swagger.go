package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Joyeria Catalog API",
        "description": "Content management backend for the artisan jewelry catalog site",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Administrator login"},
        {"name": "Site Config", "description": "Singleton site configuration"},
        {"name": "Collections", "description": "Jewelry collection management"},
        {"name": "Jewelry Items", "description": "Jewelry item management"},
        {"name": "Demo Data", "description": "Demo catalog seeding"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login with admin credentials",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/config": {
            "get": {
                "tags": ["Site Config"],
                "summary": "Get site configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Site Config"],
                "summary": "Update site configuration",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SiteConfigUpdate"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collections": {
            "get": {
                "tags": ["Collections"],
                "summary": "List collections ordered by position",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Collections"],
                "summary": "Create collection",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CollectionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collections/{id}": {
            "put": {
                "tags": ["Collections"],
                "summary": "Update collection",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CollectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Collections"],
                "summary": "Delete collection and its items",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collections/{id}/items": {
            "get": {
                "tags": ["Jewelry Items"],
                "summary": "List items in a collection ordered by position",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/jewelry-items": {
            "get": {
                "tags": ["Jewelry Items"],
                "summary": "List all jewelry items ordered by position",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Jewelry Items"],
                "summary": "Create jewelry item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/jewelry-items/{id}": {
            "put": {
                "tags": ["Jewelry Items"],
                "summary": "Update jewelry item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Jewelry Items"],
                "summary": "Delete jewelry item",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/init-demo-data": {
            "post": {
                "tags": ["Demo Data"],
                "summary": "Seed the demo catalog if the store is empty",
                "responses": {
                    "200": {"description": "Seeded or already present", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "SiteConfig": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "site_name": {"type": "string"},
                "site_subtitle": {"type": "string"},
                "hero_title": {"type": "string"},
                "hero_description": {"type": "string"},
                "collections_title": {"type": "string"},
                "collections_subtitle": {"type": "string"},
                "artisan_name": {"type": "string"},
                "artisan_story": {"type": "string"},
                "artisan_contact": {"type": "string"},
                "artisan_phone": {"type": "string"},
                "artisan_address": {"type": "string"},
                "social_facebook": {"type": "string"},
                "social_facebook_enabled": {"type": "boolean"},
                "social_instagram": {"type": "string"},
                "social_instagram_enabled": {"type": "boolean"},
                "social_tiktok": {"type": "string"},
                "social_tiktok_enabled": {"type": "boolean"},
                "social_whatsapp": {"type": "string"},
                "social_whatsapp_enabled": {"type": "boolean"},
                "social_youtube": {"type": "string"},
                "social_youtube_enabled": {"type": "boolean"},
                "social_twitter": {"type": "string"},
                "social_twitter_enabled": {"type": "boolean"},
                "logo_base64": {"type": "string"},
                "color_scheme": {"type": "string"},
                "admin_username": {"type": "string"},
                "hidden_zone_position": {"type": "string"},
                "footer_title_1": {"type": "string"},
                "footer_title_2": {"type": "string"},
                "footer_title_3": {"type": "string"},
                "footer_text_3": {"type": "string"},
                "footer_copyright": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "SiteConfigUpdate": {
            "type": "object",
            "description": "Partial update; omitted fields are left untouched. admin_password is digested before storage and never echoed back.",
            "properties": {
                "site_name": {"type": "string"},
                "site_subtitle": {"type": "string"},
                "hero_title": {"type": "string"},
                "hero_description": {"type": "string"},
                "collections_title": {"type": "string"},
                "collections_subtitle": {"type": "string"},
                "artisan_name": {"type": "string"},
                "artisan_story": {"type": "string"},
                "artisan_contact": {"type": "string"},
                "artisan_phone": {"type": "string"},
                "artisan_address": {"type": "string"},
                "logo_base64": {"type": "string"},
                "color_scheme": {"type": "string"},
                "admin_username": {"type": "string"},
                "admin_password": {"type": "string"},
                "hidden_zone_position": {"type": "string"}
            }
        },
        "Collection": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "image_base64": {"type": "string"},
                "position": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "CollectionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "image_base64": {"type": "string"},
                "position": {"type": "integer"}
            },
            "required": ["name"]
        },
        "Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "collection_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "image_base64": {"type": "string"},
                "position": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "ItemRequest": {
            "type": "object",
            "properties": {
                "collection_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "image_base64": {"type": "string"},
                "position": {"type": "integer"}
            },
            "required": ["collection_id", "name"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
