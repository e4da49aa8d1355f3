// internal/contact/models.go
package contact

import (
	"context"
	"encoding/json"
	"time"

	"dental-site/internal/models"
)

// Status is the resolution of one submission. The empty status is encoded as
// JSON null and means nothing was sent or recorded.
type Status string

const (
	StatusNone    Status = ""
	StatusSuccess Status = "success"
	StatusStored  Status = "stored"
)

func (s Status) MarshalJSON() ([]byte, error) {
	if s == StatusNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// Result is what the visitor is told.
type Result struct {
	Status Status   `json:"status"`
	Errors []string `json:"errors"`
}

// Sender delivers a notification to the clinic.
type Sender interface {
	Send(ctx context.Context, n models.Notification) error
	Name() string
}

// Alerter pushes a short heads-up after an inquiry resolves.
type Alerter interface {
	Alert(ctx context.Context, text string) error
}

// Store durably keeps a notification body that could not be delivered.
type Store interface {
	Save(body string, at time.Time) (string, error)
}
