package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"komreq-backend/config"
	"komreq-backend/models"
	dbmodels "komreq-backend/models/db"
)

func GetToken(user dbmodels.User) (tokenString string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec))
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.RoleList() {
		roles = append(roles, string(role))
	}
	claims := jwt.MapClaims{
		"name":  user.UserName,
		"email": user.Email,
		"sub":   user.ID,
		"jti":   uuid.NewString(),
		"roles": roles,
		"iss":   config.Conf.Auth.Issuer,
		"aud":   config.Conf.Auth.Audience,
		"exp":   expiresAt.Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(config.Conf.Auth.JWTSecret))
	return tokenString, expiresAt, err
}

func ParseToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(config.Conf.Auth.Issuer),
		jwt.WithAudience(config.Conf.Auth.Audience))
	if err != nil {
		return nil, errors.Wrap(err, "некорректный токен")
	}
	return claims, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetClaimsRoles(claims jwt.MapClaims) []models.UserRole {
	result := []models.UserRole{}
	switch roles := claims["roles"].(type) {
	case []interface{}:
		for _, role := range roles {
			if roleStr, ok := role.(string); ok && roleStr != "" {
				result = append(result, models.UserRole(roleStr))
			}
		}
	case []string:
		for _, role := range roles {
			result = append(result, models.UserRole(role))
		}
	case string:
		if roles != "" {
			result = append(result, models.UserRole(roles))
		}
	}
	return result
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
