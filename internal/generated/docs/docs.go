// Package docs registers the swagger document served by the swagger UI.
//
// `go generate ./internal/adapters/in/http` rewrites this file from the
// handler annotations with swag.
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
        "/drones": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drones"],
                "summary": "Register a drone",
                "parameters": [
                    {
                        "description": "Drone to register",
                        "name": "drone",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/servers.NewDrone"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/servers.Drone"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/drones/{droneId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drones"],
                "summary": "Get a drone",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Drone ID", "name": "droneId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/servers.Drone"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/drones/{droneId}/availability": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drones"],
                "summary": "Check whether a drone can be loaded",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Drone ID", "name": "droneId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/drones/{droneId}/battery": {
            "get": {
                "produces": ["application/json"],
                "tags": ["drones"],
                "summary": "Get the battery level of a drone",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Drone ID", "name": "droneId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/drones/{droneId}/medications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "List medications loaded on a drone",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Drone ID", "name": "droneId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/servers.Medication"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Load a medication onto a drone",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Drone ID", "name": "droneId", "in": "path", "required": true},
                    {
                        "description": "Medication to load",
                        "name": "medication",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/servers.NewMedication"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/servers.Medication"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        }
    },
    "definitions": {
        "servers.Drone": {
            "type": "object",
            "properties": {
                "batteryCapacity": {"type": "integer"},
                "id": {"type": "string"},
                "model": {"type": "string"},
                "serialNumber": {"type": "string"},
                "state": {"type": "string"},
                "weightLimit": {"type": "number", "format": "double"}
            }
        },
        "servers.NewDrone": {
            "type": "object",
            "properties": {
                "batteryCapacity": {"type": "integer"},
                "model": {"type": "string"},
                "serialNumber": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "servers.MedicationImage": {
            "type": "object",
            "properties": {
                "data": {"type": "string", "format": "byte"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "servers.Medication": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "id": {"type": "string"},
                "image": {"$ref": "#/definitions/servers.MedicationImage"},
                "name": {"type": "string"},
                "weight": {"type": "number", "format": "double"}
            }
        },
        "servers.NewMedication": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "image": {"$ref": "#/definitions/servers.MedicationImage"},
                "name": {"type": "string"},
                "weight": {"type": "number", "format": "double"}
            }
        },
        "servers.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
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
	Title:            "Drone Fleet API",
	Description:      "Register drones, load them with medications and track their state.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
