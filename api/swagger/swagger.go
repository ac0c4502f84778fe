package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Reservas Deportivas UPTC API",
        "description": "Reservation API for university sports venues",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Escenarios", "description": "Venue catalogue, schedules and availability"},
        {"name": "Reservas", "description": "Reservation lifecycle and entry validation"},
        {"name": "Perfiles", "description": "User profiles"},
        {"name": "Admin", "description": "Administrative operations"}
    ],
    "paths": {
        "/escenarios": {
            "get": {
                "tags": ["Escenarios"],
                "summary": "List sports venues",
                "parameters": [
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Escenarios"],
                "summary": "Create venue (admin)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VenueRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/escenarios/{id}": {
            "get": {
                "tags": ["Escenarios"],
                "summary": "Get venue detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Escenarios"],
                "summary": "Update venue (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VenueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Escenarios"],
                "summary": "Delete venue (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/escenarios/{id}/estado": {
            "patch": {
                "tags": ["Escenarios"],
                "summary": "Change venue estado (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VenueStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/escenarios/{id}/disponibilidad": {
            "get": {
                "tags": ["Escenarios"],
                "summary": "Free one-hour blocks for a date",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "fecha", "in": "query", "required": true, "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/escenarios/{id}/horarios": {
            "get": {
                "tags": ["Escenarios"],
                "summary": "List weekly opening windows",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Escenarios"],
                "summary": "Add weekly opening window (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/escenarios/{id}/bloqueos": {
            "get": {
                "tags": ["Escenarios"],
                "summary": "List exceptional closures",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "fecha", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Escenarios"],
                "summary": "Register exceptional closure (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BlackoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas": {
            "get": {
                "tags": ["Reservas"],
                "summary": "List reservations (own unless admin)",
                "parameters": [
                    {"name": "escenarioId", "in": "query", "type": "string"},
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "desde", "in": "query", "type": "string", "format": "date"},
                    {"name": "hasta", "in": "query", "type": "string", "format": "date"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Reservas"],
                "summary": "Create reservation",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot already taken", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas/{id}": {
            "get": {
                "tags": ["Reservas"],
                "summary": "Get reservation detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas/{id}/estado": {
            "patch": {
                "tags": ["Reservas"],
                "summary": "Approve or reject a pending reservation (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already decided", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas/{id}/validar-entrada": {
            "post": {
                "tags": ["Reservas"],
                "summary": "Validate a scanned reservation QR (admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas/{id}/comprobante": {
            "get": {
                "tags": ["Reservas"],
                "summary": "Issue a signed proof download link",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Reservas"],
                "summary": "Attach a payment proof",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "comprobante", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reservas/comprobantes/descarga": {
            "get": {
                "tags": ["Reservas"],
                "summary": "Download a proof through a signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/reservas/export": {
            "get": {
                "tags": ["Reservas"],
                "summary": "Export reservations as CSV or PDF (admin)",
                "parameters": [
                    {"name": "formato", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "escenarioId", "in": "query", "type": "string"},
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "desde", "in": "query", "type": "string", "format": "date"},
                    {"name": "hasta", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/perfiles/me": {
            "get": {
                "tags": ["Perfiles"],
                "summary": "Get the authenticated user's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/perfiles": {
            "get": {
                "tags": ["Perfiles"],
                "summary": "List user profiles (admin)",
                "parameters": [
                    {"name": "rol", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/metrics": {
            "get": {
                "tags": ["Admin"],
                "summary": "Instrumentation snapshot (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/auditoria": {
            "get": {
                "tags": ["Admin"],
                "summary": "Recent audit trail entries (admin)",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Salud"],
                "summary": "Service health probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "VenueRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "aforo": {"type": "integer"},
                "tarifa_hora": {"type": "integer"},
                "imagen_url": {"type": "string"},
                "estado": {"type": "string", "enum": ["ACTIVO", "MANTENIMIENTO", "INACTIVO"]}
            },
            "required": ["nombre"]
        },
        "VenueStatusRequest": {
            "type": "object",
            "properties": {
                "estado": {"type": "string", "enum": ["ACTIVO", "MANTENIMIENTO", "INACTIVO"]}
            },
            "required": ["estado"]
        },
        "ScheduleRequest": {
            "type": "object",
            "properties": {
                "dia_semana": {"type": "integer", "minimum": 1, "maximum": 7},
                "hora_apertura": {"type": "string", "example": "08:00:00"},
                "hora_cierre": {"type": "string", "example": "18:00:00"}
            },
            "required": ["dia_semana", "hora_apertura", "hora_cierre"]
        },
        "BlackoutRequest": {
            "type": "object",
            "properties": {
                "fecha": {"type": "string", "format": "date"},
                "hora_inicio": {"type": "string", "example": "12:00:00"},
                "hora_fin": {"type": "string", "example": "13:00:00"},
                "motivo": {"type": "string"}
            },
            "required": ["fecha", "hora_inicio", "hora_fin"]
        },
        "CreateReservationRequest": {
            "type": "object",
            "properties": {
                "escenario_id": {"type": "string"},
                "fecha_reserva": {"type": "string", "format": "date"},
                "hora_inicio": {"type": "string", "example": "10:00:00"},
                "hora_fin": {"type": "string", "example": "11:00:00"}
            },
            "required": ["escenario_id", "fecha_reserva", "hora_inicio", "hora_fin"]
        },
        "ChangeStatusRequest": {
            "type": "object",
            "properties": {
                "estado": {"type": "string", "enum": ["APROBADA", "RECHAZADA"]}
            },
            "required": ["estado"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
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
