package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body used by every endpoint:
// {"status": <int>, "message"?: string, "errors"?: {field: [msg,...]}, "<entityKey>"?: object|array}
// The body status field always equals the transport status code.
type Envelope map[string]interface{}

func JSON(w http.ResponseWriter, statusCode int, payload Envelope) {
	if payload == nil {
		payload = Envelope{}
	}
	payload["status"] = statusCode
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// Message writes an envelope carrying only a message.
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Envelope{"message": message})
}

// Data writes an envelope with the payload under the given entity key.
func Data(w http.ResponseWriter, statusCode int, entityKey string, data interface{}) {
	JSON(w, statusCode, Envelope{entityKey: data})
}

// DataWithMessage writes an envelope with both a message and an entity payload.
func DataWithMessage(w http.ResponseWriter, statusCode int, message string, payload Envelope) {
	if payload == nil {
		payload = Envelope{}
	}
	payload["message"] = message
	JSON(w, statusCode, payload)
}

// ValidationError writes the 422 envelope with field-level error messages.
func ValidationError(w http.ResponseWriter, errors map[string][]string) {
	JSON(w, http.StatusUnprocessableEntity, Envelope{"errors": errors})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Invalid request"
	}
	Message(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Message(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Message(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Message(w, http.StatusNotFound, message)
}

func UnprocessableEntity(w http.ResponseWriter, message string) {
	Message(w, http.StatusUnprocessableEntity, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Message(w, http.StatusInternalServerError, message)
}
