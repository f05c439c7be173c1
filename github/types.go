package github

import (
	"bytes"
	"encoding/json"

	"github.com/jmgilman/ghwatch/errors"
)

// Response is a transport's parsed reply: the HTTP status and the raw JSON
// body. StartWatching and StopWatching hand it back to the caller unchanged.
type Response struct {
	// StatusCode is the HTTP status, or 0 when the transport cannot report it
	StatusCode int `json:"status_code"`

	// Body is the undecoded response body; empty for 204 No Content
	Body []byte `json:"-"`
}

// Empty reports whether the response carries no body.
func (r *Response) Empty() bool {
	return r == nil || len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the JSON body into v.
// An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r.Empty() {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to decode response body")
	}
	return nil
}

// Records decodes the body as a JSON array of objects.
// An empty or null body yields an empty, non-nil slice.
func (r *Response) Records() ([]Record, error) {
	records := []Record{}
	if err := r.Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Record is one element of a collection returned by the API, such as a
// watcher or a watched repository. The schema belongs to the API; accessors
// only read commonly present fields.
type Record map[string]any

// String returns the string stored under key, or "".
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Login returns the "login" field of a user record.
func (r Record) Login() string {
	return r.String("login")
}

// FullName returns the "full_name" field of a repository record.
func (r Record) FullName() string {
	return r.String("full_name")
}

// Owner returns owner.login of a repository record.
func (r Record) Owner() string {
	owner, ok := r["owner"].(map[string]any)
	if !ok {
		return ""
	}
	return Record(owner).Login()
}
