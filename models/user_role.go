package models

type UserRole string

const (
	AdminRole      UserRole = "Admin"
	ManagerRole    UserRole = "Manager"
	TechnicianRole UserRole = "Technician"
	ClientRole     UserRole = "Client"
)

var AllUserRoles = []UserRole{AdminRole, ManagerRole, TechnicianRole, ClientRole}

var roleHumanName = map[UserRole]string{
	AdminRole:      "Администратор",
	ManagerRole:    "Менеджер",
	TechnicianRole: "Техник",
	ClientRole:     "Клиент",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)

}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

// IsRequestRole роли, которые можно назначить на заявку
func (r UserRole) IsRequestRole() bool {
	return r == ManagerRole || r == TechnicianRole
}

const SystemUser = "Система"
