package lattice_api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// maxDescriptionLen caps card descriptions, counted in runes.
const maxDescriptionLen = 300

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeMessage(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"message": fmt.Sprintf(format, args...)})
}

// decodeBody reads a JSON request body into dst, answering 400 on any
// decode failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// pathID reads a numeric path variable. Route patterns restrict these to
// digits, so a parse failure can only mean overflow and maps to an id
// that matches nothing.
func pathID(r *http.Request, name string) uint64 {
	id, _ := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	return id
}
