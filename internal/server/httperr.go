package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SeamusWaldron/cubesim"
)

var (
	// ErrSessionNotFound is returned for an unknown session id.
	ErrSessionNotFound = errors.New("server: session not found")

	// ErrBadRequest marks malformed request bodies and parameters.
	ErrBadRequest = errors.New("server: bad request")
)

// StatusCode maps an error to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, cubesim.ErrInvalidMove),
		errors.Is(err, cubesim.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, cubesim.ErrNoScramble),
		errors.Is(err, cubesim.ErrHistoryDiverged):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// writeError writes err as a JSON body and logs server-side failures.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	if err == nil {
		return
	}
	status := StatusCode(err)
	if status >= 500 {
		log.Error("request failed", slog.Any("err", err))
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Status: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
