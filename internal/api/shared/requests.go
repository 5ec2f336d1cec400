package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
// Unknown fields are tolerated; malformed JSON is an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
