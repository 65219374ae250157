// Package docs содержит описание API для swag и gofiber/swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Служебное"],
                "summary": "Список эндпоинтов",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/optimize": {
            "post": {
                "description": "Скачивает job_url, разбирает резюме (PDF, DOCX или текст) и просит LLM переписать его. При сбоях LLM или скрапинга ответ всё равно 200 с запасным содержимым.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Оптимизация"],
                "summary": "Оптимизировать резюме под вакансию",
                "parameters": [
                    {"type": "string", "description": "URL вакансии", "name": "job_url", "in": "formData", "required": true},
                    {"type": "file", "description": "Файл резюме", "name": "resume_file", "in": "formData"},
                    {"type": "string", "description": "Текст резюме", "name": "resume_text", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.OptimizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/optimize-json": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Оптимизация"],
                "summary": "Оптимизировать текст резюме под вакансию",
                "parameters": [
                    {"description": "URL вакансии и текст резюме", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.OptimizeJSONRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.OptimizeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/api/optimizations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Оптимизации"],
                "summary": "Список оптимизаций",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Сколько записей пропустить", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Размер страницы (не больше 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/optimization.Record"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/api/optimizations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Оптимизации"],
                "summary": "Получить оптимизацию",
                "parameters": [
                    {"type": "string", "description": "ID оптимизации", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/optimization.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Оптимизации"],
                "summary": "Удалить оптимизацию",
                "parameters": [
                    {"type": "string", "description": "ID оптимизации", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Служебное"],
                "summary": "Проверка живости",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Служебное"],
                "summary": "Проверка готовности",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.OptimizeJSONRequest": {
            "type": "object",
            "properties": {
                "resume_text": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "handlers.OptimizeResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "job_posting_content": {"type": "string"},
                "match_score": {"type": "number"},
                "optimized_resume": {"type": "string"},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "optimization.Record": {
            "type": "object",
            "properties": {
                "company_name": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "job_posting_content": {"type": "string"},
                "job_posting_raw": {"type": "string"},
                "job_title": {"type": "string"},
                "job_url": {"type": "string"},
                "match_score": {"type": "number"},
                "optimized_resume": {"type": "string"},
                "original_resume": {"type": "string"},
                "suggestions": {"type": "array", "items": {"type": "string"}},
                "updated_at": {"type": "string"},
                "user_email": {"type": "string"}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "presenter.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo — параметры документа, их можно менять при старте.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "resume-optimizer API",
	Description:      "Подгонка резюме под вакансию: скрапинг вакансии, очистка через LLM и переписывание резюме.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
