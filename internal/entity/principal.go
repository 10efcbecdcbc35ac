package entity

import (
	"booking-settlement-api/internal/common"

	"github.com/google/uuid"
)

// Principal is the authenticated caller resolved from the bearer token.
type Principal struct {
	Subject   string
	CompanyId uuid.UUID
	Role      common.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == common.RoleAdmin
}

// CanAccessCompany is true for admins, the system account and the company itself.
func (p Principal) CanAccessCompany(companyId uuid.UUID) bool {
	if p.Role == common.RoleAdmin || p.Role == common.RoleSystem {
		return true
	}

	return p.CompanyId != uuid.Nil && p.CompanyId == companyId
}
