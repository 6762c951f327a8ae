// Package docs registers the OpenAPI document served by gin-swagger.
// Regenerate with: swag init -g cmd/main.go
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "New account", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResponse"}},
                    "400": {"description": "Missing fields, invalid email, short password or duplicate user", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in with email and password",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/profile/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Get a user's profile",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}
                }
            }
        },
        "/courses/{courseId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Courses"],
                "summary": "Get a course with its lessons and quizzes",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/quizzes/{quizId}/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "Submit answers to a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "quizId", "in": "path", "required": true},
                    {"description": "User id and answers", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizSubmitDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz not found or has no questions", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{quizId}/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "Submit answers to a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "quizId", "in": "path", "required": true},
                    {"description": "User id and answers", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizSubmitDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz not found or has no questions", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.RegisterResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserResponseDTO"}
            }
        },
        "dto.ProfileResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/dto.UserResponseDTO"}
            }
        },
        "dto.UserResponseDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dto.SubmittedAnswerDTO": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "userAnswer": {"type": "string"}
            }
        },
        "dto.QuizSubmitDTO": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.SubmittedAnswerDTO"}}
            }
        },
        "dto.GradeResultDTO": {
            "type": "object",
            "properties": {
                "totalQuestions": {"type": "integer"},
                "correctAnswers": {"type": "integer"},
                "totalScore": {"type": "integer"},
                "percentage": {"type": "number"},
                "ignoredQuestionIds": {"type": "array", "items": {"type": "integer"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Educational Web API",
	Description:      "Courses, lessons, quizzes with server-side grading, and learner progress.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
