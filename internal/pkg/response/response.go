package response

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lib/pq"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// RespondWithStoreError maps unclassified store failures. Timeouts become
// 503; everything else is a generic 500 with details kept server-side.
func RespondWithStoreError(w http.ResponseWriter, err error) {
	log.Printf("store error: %v", err)

	var pqErr *pq.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &pqErr) && pqErr.Code == "57014") {
		RespondWithError(w, http.StatusServiceUnavailable, "Store timeout")
		return
	}
	RespondWithError(w, http.StatusInternalServerError, "Database error")
}
