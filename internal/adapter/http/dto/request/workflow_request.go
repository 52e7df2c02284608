package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidSerialsPayload = errors.New("invalid serials payload")
)

// TechnicianDoneRequest is the multipart form submitted when a technician
// finishes repair work. Serials arrive as a JSON object keyed by part number;
// each value is a semicolon-separated list of installed serial numbers.
type TechnicianDoneRequest struct {
	Serials     string `form:"serials"`
	Description string `form:"description"`
}

func (r TechnicianDoneRequest) ResolveSerials() (map[string]string, error) {
	raw := strings.TrimSpace(r.Serials)
	if raw == "" {
		return map[string]string{}, nil
	}
	serials := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &serials); err != nil {
		return nil, ErrInvalidSerialsPayload
	}
	return serials, nil
}

func (r TechnicianDoneRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}
