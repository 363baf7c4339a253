// Package redirect builds and parses the confirmation-page handoff.
// The payload travels through the browser's address bar and history,
// so it carries only the guest's display name and attendance code —
// never the email, address, or allergy detail.
package redirect

import (
	"net/url"
	"strconv"

	"github.com/hy-wedding/rsvp-api/internal/models"
)

const (
	ParamName   = "name"
	ParamStatus = "status"
)

// Payload is the state the confirmation page needs to render the
// right message without re-querying the store.
type Payload struct {
	Name   string
	Status models.AttendanceStatus
}

// Encode extracts the redirect payload from an accepted submission.
func Encode(f models.RSVPFields) Payload {
	return Payload{
		Name:   f.DisplayName(),
		Status: f.Status,
	}
}

// Values serializes the payload as confirmation-page query params.
func (p Payload) Values() url.Values {
	v := url.Values{}
	if p.Name != "" {
		v.Set(ParamName, p.Name)
	}
	if p.Status == models.Attending || p.Status == models.NotAttending {
		v.Set(ParamStatus, strconv.Itoa(int(p.Status)))
	}
	return v
}

// URL joins the payload onto the confirmation page's base path.
func (p Payload) URL(base string) string {
	q := p.Values().Encode()
	if q == "" {
		return base
	}
	return base + "?" + q
}

// Decode is the inverse of Values. Absent or malformed parameters
// degrade to the zero payload (unknown guest, unknown status); a
// garbage query string never produces an error.
func Decode(v url.Values) Payload {
	p := Payload{Name: v.Get(ParamName)}
	switch v.Get(ParamStatus) {
	case "1":
		p.Status = models.Attending
	case "2":
		p.Status = models.NotAttending
	default:
		p.Status = models.StatusUnknown
	}
	return p
}
