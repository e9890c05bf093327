package feedback

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
)

// ParseRequest validates the method first, then the JSON body. Anything short of a
// body holding exactly one JSON object with a non-blank string "message" is
// ErrMissingField.
func ParseRequest(method string, body io.Reader) (domain.Request, error) {
	if method != http.MethodPost {
		return domain.Request{}, domain.ErrMethodNotAllowed
	}
	if body == nil {
		return domain.Request{}, domain.ErrMissingField
	}

	var payload map[string]any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		return domain.Request{}, domain.ErrMissingField
	}
	// the object must be the whole body
	if _, err := dec.Token(); err != io.EOF {
		return domain.Request{}, domain.ErrMissingField
	}
	msg, ok := payload["message"].(string)
	if !ok {
		return domain.Request{}, domain.ErrMissingField
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return domain.Request{}, domain.ErrMissingField
	}
	return domain.Request{Message: msg}, nil
}
