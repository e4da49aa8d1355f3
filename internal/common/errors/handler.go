package errors

import (
	"encoding/json"
	"net/http"
)

// Logger is the subset of logger.Logger the HTTP error writer needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// HTTPStatus maps an error code to the response status used by the JSON API.
func HTTPStatus(code ErrorCode) int {
	switch GetErrorCategory(code) {
	case "VALIDATION":
		return http.StatusBadRequest
	case "UPSTREAM", "CACHE", "NOTIFICATION":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP normalizes err and writes it as a JSON body.
func WriteHTTP(w http.ResponseWriter, log Logger, err error) {
	stdErr := AsStandard(err)
	status := HTTPStatus(stdErr.Code)

	if log != nil && status >= http.StatusInternalServerError {
		log.Error("request failed", map[string]interface{}{
			"errorCode":     string(stdErr.Code),
			"message":       stdErr.Message,
			"details":       stdErr.Details,
			"errorCategory": GetErrorCategory(stdErr.Code),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    stdErr.Code,
		"message": stdErr.Message,
	})
}
