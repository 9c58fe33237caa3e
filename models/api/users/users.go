package usersapimodels

import (
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"
	"komreq-backend/models"
	apimodels "komreq-backend/models/api"
	dbmodels "komreq-backend/models/db"
)

const minPasswordLen = 6

type RegisterRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return errors.New("не указано имя пользователя")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("не указано ФИО")
	}
	if len(r.Password) < minPasswordLen {
		return errors.Errorf("пароль должен содержать не менее %d символов", minPasswordLen)
	}
	return nil
}

type CreateUserRequest struct {
	RegisterRequest
	Role models.UserRole `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	if err := r.RegisterRequest.Validate(); err != nil {
		return err
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.UserName == "" {
		return errors.New("не указано имя пользователя")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ChangeRoleRequest struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

func (r ChangeRoleRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан пользователь")
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type UserFilter struct {
	Search     string          `json:"search" query:"search"`
	Role       models.UserRole `json:"role" query:"role"`
	OnlyActive bool            `json:"only_active" query:"only_active"`
	apimodels.Pagination
}

func (r UserFilter) Validate() error {
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type UserView struct {
	ID        string            `json:"id"`
	UserName  string            `json:"user_name"`
	Email     string            `json:"email"`
	FullName  string            `json:"full_name"`
	IsActive  bool              `json:"is_active"`
	Roles     []models.UserRole `json:"roles"`
	CreatedAt time.Time         `json:"created_at"`
	LastLogin *time.Time        `json:"last_login,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:        rec.ID,
		UserName:  rec.UserName,
		Email:     rec.Email,
		FullName:  rec.FullName,
		IsActive:  rec.IsActive,
		Roles:     rec.RoleList(),
		CreatedAt: rec.CreatedAt,
		LastLogin: rec.LastLogin,
	}
}

type MeView struct {
	UserView
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}
