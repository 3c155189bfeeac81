// Package respond writes the JSON envelopes every feature handler uses.
// Mutation endpoints answer {ok, error}; failure text stays generic so
// backend details never leak to the client.
package respond

import (
	"encoding/json"
	"net/http"
)

// Result is the mutation envelope.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 with the given payload.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Done writes a 200 {ok:true} mutation result.
func Done(w http.ResponseWriter) {
	JSON(w, http.StatusOK, Result{OK: true})
}

// Fail writes a mutation failure with generic text.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Result{OK: false, Error: msg})
}
