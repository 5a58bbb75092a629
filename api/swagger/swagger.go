package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Portal API",
        "description": "Student accounts, assignments, marks, attendance and certificates",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Accounts", "description": "Account creation and login"},
        {"name": "Assignments", "description": "Assignment distribution and submissions"},
        {"name": "Students", "description": "Marks and attendance"},
        {"name": "Certificates", "description": "Certificate upload and review"},
        {"name": "Reports", "description": "PDF and CSV exports"},
        {"name": "Files", "description": "Stored upload retrieval"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/create_account": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Create an account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "409": {"description": "Username already exists", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Log in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Create assignment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAssignmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing assignment details", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/submit_assignment/{assignment_id}": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Submit an assignment file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "assignment_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "student_username", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Uploaded", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "No file or username", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/submissions": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List all submissions",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/submission_remarks/{submission_id}": {
            "put": {
                "tags": ["Assignments"],
                "summary": "Set remarks on a submission",
                "parameters": [
                    {"name": "submission_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RemarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing remarks", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/student/{username}/marks": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student's marks",
                "parameters": [
                    {"name": "username", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Subject to marks mapping"}
                }
            }
        },
        "/marks": {
            "post": {
                "tags": ["Students"],
                "summary": "Upsert a mark",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveMarkRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/student/{username}/attendance": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student's attendance",
                "parameters": [
                    {"name": "username", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Replace attendance counters",
                "parameters": [
                    {"name": "username", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/student/{username}/report": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a student's PDF report",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "username", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF attachment"}
                }
            }
        },
        "/reports/marks.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download all marks as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV attachment"}
                }
            }
        },
        "/upload_certificate": {
            "post": {
                "tags": ["Certificates"],
                "summary": "Upload a certificate",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "student_username", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Uploaded", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Missing file or disallowed type", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/certificates": {
            "get": {
                "tags": ["Certificates"],
                "summary": "List certificates by role",
                "parameters": [
                    {"name": "role", "in": "query", "required": true, "type": "string"},
                    {"name": "username", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/certificates/{cert_id}/status": {
            "put": {
                "tags": ["Certificates"],
                "summary": "Review a certificate",
                "parameters": [
                    {"name": "cert_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCertificateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/MutationResult"}},
                    "400": {"description": "Invalid status", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "tags": ["Files"],
                "summary": "Download a stored upload",
                "parameters": [
                    {"name": "filename", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/MutationResult"}}
                }
            }
        }
    },
    "definitions": {
        "CreateAccountRequest": {
            "type": "object",
            "required": ["username", "password", "role", "email"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["faculty", "student"]},
                "email": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "CreateAssignmentRequest": {
            "type": "object",
            "required": ["name", "details"],
            "properties": {
                "name": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "RemarksRequest": {
            "type": "object",
            "required": ["remarks"],
            "properties": {
                "remarks": {"type": "string"}
            }
        },
        "SaveMarkRequest": {
            "type": "object",
            "required": ["student_username", "subject", "marks"],
            "properties": {
                "student_username": {"type": "string"},
                "subject": {"type": "string"},
                "marks": {"type": "integer"}
            }
        },
        "UpdateAttendanceRequest": {
            "type": "object",
            "required": ["totalDays", "attendedDays"],
            "properties": {
                "totalDays": {"type": "integer"},
                "attendedDays": {"type": "integer"}
            }
        },
        "UpdateCertificateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "remarks": {"type": "string"}
            }
        },
        "MutationResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
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
