package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return domain.DateOnly(t), nil
}

// ParseOptionalDate parses s unless it is nil or empty.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatOptionalDate renders t, or nil when t is nil.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuditResponse carries the audit columns in responses.
type AuditResponse struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

func toAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func mapList[D any, R any](in []D, fn func(*D) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
