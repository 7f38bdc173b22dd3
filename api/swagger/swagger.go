package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Portal API",
        "description": "Campus portal backend with session auth, scoped reference data, and an AI assistant proxy",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Session login and logout"},
        {"name": "Campus", "description": "Timetable, exams, events, faculty directory"},
        {"name": "Dashboard", "description": "Role-projected metrics and usage analytics"},
        {"name": "Assistant", "description": "Language-model chat and document analysis"}
    ],
    "paths": {
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session established, cookie set"},
                    "400": {"description": "Invalid payload"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the current session",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "Role-stripped profile"},
                    "401": {"description": "Not authenticated"}
                }
            }
        },
        "/dashboard-metrics": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard metrics for the caller",
                "description": "Always 200; anonymous callers receive the default row",
                "responses": {
                    "200": {"description": "Metrics row"}
                }
            }
        },
        "/analytics": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Portal usage analytics",
                "responses": {
                    "200": {"description": "Usage counters"}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Campus"],
                "summary": "Timetable scoped to the caller",
                "responses": {
                    "200": {"description": "Timetable entries"}
                }
            }
        },
        "/timetable/export": {
            "get": {
                "tags": ["Campus"],
                "summary": "Export the scoped timetable",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "CSV or PDF document"},
                    "400": {"description": "Unknown format"}
                }
            }
        },
        "/exams": {
            "get": {
                "tags": ["Campus"],
                "summary": "Exam schedule scoped to the caller",
                "responses": {
                    "200": {"description": "Exam entries"}
                }
            }
        },
        "/exams/export": {
            "get": {
                "tags": ["Campus"],
                "summary": "Export the scoped exam schedule",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "CSV or PDF document"},
                    "400": {"description": "Unknown format"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Campus"],
                "summary": "List campus events by date",
                "responses": {
                    "200": {"description": "Events sorted ascending by date"}
                }
            },
            "post": {
                "tags": ["Campus"],
                "summary": "Post a campus event (faculty only)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Event created"},
                    "400": {"description": "Invalid payload"},
                    "401": {"description": "Not authenticated"},
                    "403": {"description": "Insufficient role"}
                }
            }
        },
        "/faculty": {
            "get": {
                "tags": ["Campus"],
                "summary": "Faculty directory",
                "responses": {
                    "200": {"description": "Directory entries"}
                }
            }
        },
        "/notifications": {
            "get": {
                "tags": ["Campus"],
                "summary": "List notifications, newest first",
                "responses": {
                    "200": {"description": "Notifications"}
                }
            }
        },
        "/chat": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Ask the campus assistant",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "Completion or fixed fallback body"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/doubt-solver": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Analyze pasted document text",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DocumentQueryRequest"}}
                ],
                "responses": {
                    "200": {"description": "Analysis or fixed fallback body"},
                    "400": {"description": "Missing document text or question"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "PostEventRequest": {
            "type": "object",
            "required": ["title", "date", "time", "location"],
            "properties": {
                "title": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "location": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"}
            }
        },
        "DocumentQueryRequest": {
            "type": "object",
            "properties": {
                "document_text": {"type": "string"},
                "query": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Envelope": {
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
