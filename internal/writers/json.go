package writers

import (
	"encoding/json"
	"io"
)

func init() { Register("json", WriteJSON) }

// WriteJSON writes the run as indented v1 JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPI(r))
}
