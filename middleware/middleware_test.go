package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"komreq-backend/lib/rbac"
	"komreq-backend/models"
)

func TestCallerFromClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"name":  "manager",
		"roles": []interface{}{"Manager", "Technician"},
	}
	caller := CallerFromClaims(claims, "10.1.1.1")
	require.Equal(t, "user-1", caller.UserID)
	require.Equal(t, "manager", caller.UserName)
	require.Equal(t, []models.UserRole{models.ManagerRole, models.TechnicianRole}, caller.Roles)
	require.Equal(t, "10.1.1.1", caller.IP)
	require.True(t, caller.IsSupervisor())

	empty := CallerFromClaims(jwt.MapClaims{"sub": 42}, "")
	require.Equal(t, "", empty.UserID)
	require.Empty(t, empty.Roles)
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader("short"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestRbacMiddleware(t *testing.T) {
	rbac.NewHandler()
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		roles := strings.Split(ctx.Get("X-Test-Roles"), ",")
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": "user-1", "roles": roles}})
		return ctx.Next()
	})
	app.Use(RbacMiddleware())
	ok := func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	}
	app.Get("/api/v1/auditlog", ok)
	app.Post("/api/v1/request/create", ok)

	cases := []struct {
		method string
		path   string
		roles  string
		status int
	}{
		{fiber.MethodGet, "/api/v1/auditlog", "Admin", fiber.StatusOK},
		{fiber.MethodGet, "/api/v1/auditlog", "Manager,Technician", fiber.StatusForbidden},
		{fiber.MethodPost, "/api/v1/request/create", "Client", fiber.StatusOK},
		{fiber.MethodPost, "/api/v1/request/create", "Technician", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("X-Test-Roles", tc.roles)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, "%s %s %s", tc.method, tc.path, tc.roles)
	}
}
