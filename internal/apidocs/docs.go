// Package apidocs registers the bigoref OpenAPI document with swag and serves
// it, together with Swagger UI, under /swagger/.
//
// The template mirrors the @-annotations on the catalog and complexity
// handlers. Update both together.
package apidocs

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
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Service health and version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/questions": {
            "get": {
                "description": "Returns questions matching topic, difficulty and title search, in curated order, annotated with complexity ratings.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List interview questions",
                "parameters": [
                    {"type": "string", "default": "All", "description": "Topic filter (All, Array, Tree, ...)", "name": "topic", "in": "query"},
                    {"type": "string", "default": "All", "description": "Difficulty filter (All, Easy, Medium, Hard)", "name": "difficulty", "in": "query"},
                    {"type": "string", "description": "Case-insensitive title substring", "name": "search", "in": "query"},
                    {"type": "string", "description": "Worst acceptable time/space rating (excellent..horrible)", "name": "max_rating", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.QuestionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/catalog/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get an interview question",
                "parameters": [
                    {"type": "integer", "description": "Question id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.RatedQuestion"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/catalog/topics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List topic filters",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/catalog/sorting": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List sorting algorithms",
                "parameters": [{"type": "string", "description": "Case-insensitive name substring", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.AlgorithmResult"}}}
            }
        },
        "/catalog/searching": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List searching algorithms",
                "parameters": [{"type": "string", "description": "Case-insensitive name substring", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.AlgorithmResult"}}}
            }
        },
        "/catalog/structures": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List data structures",
                "parameters": [{"type": "string", "description": "Case-insensitive name substring", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.StructureResult"}}}
            }
        },
        "/complexity/classify": {
            "get": {
                "produces": ["application/json"],
                "tags": ["complexity"],
                "summary": "Classify a Big-O notation",
                "parameters": [{"type": "string", "description": "Big-O notation, e.g. O(n log n)", "name": "notation", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/complexity.ClassifyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/complexity/legend": {
            "get": {
                "produces": ["application/json"],
                "tags": ["complexity"],
                "summary": "Rating legend",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/complexity.LegendEntry"}}}}
            }
        },
        "/complexity/chart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["complexity"],
                "summary": "Big-O growth chart",
                "parameters": [
                    {"type": "integer", "default": 20, "description": "Points per curve", "name": "samples", "in": "query"},
                    {"type": "number", "default": 20, "description": "Right edge of the chart", "name": "max_n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/complexity.ChartResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        }
    },
    "definitions": {
        "rating": {
            "type": "string",
            "enum": ["excellent", "good", "fair", "bad", "horrible"]
        },
        "server.Problem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"}
            }
        },
        "catalog.RatedQuestion": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "topic": {"type": "string"},
                "difficulty": {"type": "string"},
                "logic": {"type": "string"},
                "time": {"type": "string"},
                "space": {"type": "string"},
                "tip": {"type": "string"},
                "solutions": {"type": "object", "additionalProperties": {"type": "string"}},
                "time_rating": {"$ref": "#/definitions/rating"},
                "space_rating": {"$ref": "#/definitions/rating"},
                "difficulty_color": {"type": "string"}
            }
        },
        "catalog.QuestionsResponse": {
            "type": "object",
            "properties": {
                "filter": {
                    "type": "object",
                    "properties": {
                        "topic": {"type": "string"},
                        "difficulty": {"type": "string"},
                        "search": {"type": "string"}
                    }
                },
                "count": {"type": "integer"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/catalog.RatedQuestion"}}
            }
        },
        "catalog.RatedAlgorithm": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "best": {"type": "string"},
                "average": {"type": "string"},
                "worst": {"type": "string"},
                "space": {"type": "string"},
                "stable": {"type": "boolean"},
                "requirement": {"type": "string"},
                "note": {"type": "string"},
                "ratings": {
                    "type": "object",
                    "properties": {
                        "best": {"$ref": "#/definitions/rating"},
                        "average": {"$ref": "#/definitions/rating"},
                        "worst": {"$ref": "#/definitions/rating"},
                        "space": {"$ref": "#/definitions/rating"},
                        "overall": {"$ref": "#/definitions/rating"}
                    }
                }
            }
        },
        "catalog.AlgorithmResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/catalog.RatedAlgorithm"}}
            }
        },
        "catalog.RatedStructure": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "average": {"type": "object", "additionalProperties": {"type": "string"}},
                "worst": {"type": "object", "additionalProperties": {"type": "string"}},
                "space": {"type": "string"},
                "ratings": {"type": "object"}
            }
        },
        "catalog.StructureResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/catalog.RatedStructure"}}
            }
        },
        "complexity.ClassifyResponse": {
            "type": "object",
            "properties": {
                "notation": {"type": "string"},
                "rating": {"$ref": "#/definitions/rating"},
                "label": {"type": "string"}
            }
        },
        "complexity.LegendEntry": {
            "type": "object",
            "properties": {
                "rating": {"$ref": "#/definitions/rating"},
                "label": {"type": "string"}
            }
        },
        "complexity.ChartResponse": {
            "type": "object",
            "properties": {
                "samples": {"type": "integer"},
                "max_n": {"type": "number"},
                "curves": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "label": {"type": "string"},
                            "notation": {"type": "string"},
                            "rating": {"$ref": "#/definitions/rating"},
                            "points": {
                                "type": "array",
                                "items": {
                                    "type": "object",
                                    "properties": {"n": {"type": "number"}, "value": {"type": "number"}}
                                }
                            }
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds the document metadata. Host and Schemes are left empty so
// Swagger UI targets the serving origin.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "bigoref API",
	Description:      "Big-O complexity reference and interview question catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
