package dbmodels

import (
	"slices"
	"time"

	"komreq-backend/models"
)

type User struct {
	BaseModel
	UserName  string         `gorm:"type:varchar(100);uniqueIndex"`
	Email     string         `gorm:"type:varchar(255);index"`
	FullName  string         `gorm:"type:varchar(255)"`
	Password  string         `json:"-"`
	IsActive  bool           `gorm:"default:true"`
	LastLogin *time.Time
	Roles     []UserRoleLink `gorm:"foreignKey:UserID"`
}

// UserRoleLink роль пользователя, у пользователя может быть несколько ролей
type UserRoleLink struct {
	UserID string          `gorm:"type:varchar(36);primaryKey"`
	Role   models.UserRole `gorm:"type:varchar(50);primaryKey"`
}

func (UserRoleLink) TableName() string {
	return "user_roles"
}

func (r User) RoleList() []models.UserRole {
	result := make([]models.UserRole, 0, len(r.Roles))
	for _, link := range r.Roles {
		result = append(result, link.Role)
	}
	return result
}

func (r User) HasRole(role models.UserRole) bool {
	return slices.Contains(r.RoleList(), role)
}

func (r User) GetFullName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.UserName
}
