package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Marketplace API Documentation",
        "title": "Marketplace API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Liveness probe: static status plus server timestamp",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List Products",
                "description": "Returns the full product collection",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Array of products"},
                    "500": {"description": "Storage read failure"}
                }
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create Product",
                "description": "Creates a product; id, rating and createdAt are server-assigned",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "product",
                        "description": "Product fields; sellerId identifies the owner, other fields are stored verbatim",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created product"},
                    "500": {"description": "Storage write failure"}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get Product",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Product"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage read failure"}
                }
            },
            "put": {
                "tags": ["Products"],
                "summary": "Update Product",
                "description": "Merges caller fields over the stored record; body sellerId must match the stored owner",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {
                        "in": "body",
                        "name": "product",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Updated product"},
                    "403": {"description": "Seller mismatch"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage write failure"}
                }
            },
            "delete": {
                "tags": ["Products"],
                "summary": "Delete Product",
                "description": "Deletes a product; claimed seller comes from body sellerId or the x-seller-id header (body wins)",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "header", "name": "x-seller-id", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "Confirmation message"},
                    "403": {"description": "Seller mismatch"},
                    "404": {"description": "Product not found"},
                    "500": {"description": "Storage write failure"}
                }
            }
        },
        "/api/products/seller/{sellerId}": {
            "get": {
                "tags": ["Products"],
                "summary": "List Products By Seller",
                "description": "Exact-match filter on sellerId; an empty array is a valid result",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "sellerId", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Array of products"},
                    "500": {"description": "Storage read failure"}
                }
            }
        },
        "/api/orders": {
            "post": {
                "tags": ["Orders"],
                "summary": "Create Order",
                "description": "Creates an order; the prefixed id and createdAt are server-assigned",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "order",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created order"},
                    "500": {"description": "Storage write failure"}
                }
            }
        },
        "/api/orders/{userId}": {
            "get": {
                "tags": ["Orders"],
                "summary": "List Orders By User",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "userId", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Array of orders"},
                    "500": {"description": "Storage read failure"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Marketplace API",
	Description:      "Marketplace API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
