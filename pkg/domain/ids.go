package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "barhub/pkg/domain-errors"
)

// maxIDLength bounds raw input before it reaches the UUID parser.
const maxIDLength = 64

// TenantID identifies a venue (bar) tenant. Every read in the CRM module is
// scoped by one.
type TenantID uuid.UUID

// ParseTenantID validates a tenant identifier at a trust boundary.
// Empty, malformed and nil UUIDs are rejected with CodeInvalidInput.
func ParseTenantID(s string) (TenantID, error) {
	u, err := parseUUID(s, "tenant_id")
	if err != nil {
		return TenantID{}, err
	}
	return TenantID(u), nil
}

func (id TenantID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero value.
func (id TenantID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText lets TenantID appear as a plain string in JSON and logs.
func (id TenantID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	if len(s) > maxIDLength {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is too long")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" cannot be nil")
	}
	return u, nil
}
