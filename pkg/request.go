package pkg

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// IsJSON reports whether the request body is declared as JSON. Media type
// parameters, like charset, are ignored.
func IsJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == ContentType.JSON
}

// RequireJSON answers 400 and returns false unless the body is JSON.
func RequireJSON(w http.ResponseWriter, r *http.Request) bool {
	if !IsJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	return true
}

// PathID parses the positive "id" route variable, answering 400 when it is not one.
func PathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
