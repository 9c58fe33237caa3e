package models

import "slices"

// Caller пользователь, от имени которого выполняется операция
type Caller struct {
	UserID   string
	UserName string
	Roles    []UserRole
	IP       string
}

func (c Caller) HasRole(role UserRole) bool {
	return slices.Contains(c.Roles, role)
}

func (c Caller) HasAnyRole(roles ...UserRole) bool {
	for _, role := range roles {
		if c.HasRole(role) {
			return true
		}
	}
	return false
}

func (c Caller) IsStaff() bool {
	return c.HasAnyRole(AdminRole, ManagerRole, TechnicianRole)
}

// IsSupervisor менеджер или администратор
func (c Caller) IsSupervisor() bool {
	return c.HasAnyRole(AdminRole, ManagerRole)
}

// IsOnlyTechnician техник без прав менеджера/администратора
func (c Caller) IsOnlyTechnician() bool {
	return c.HasRole(TechnicianRole) && !c.IsSupervisor()
}
