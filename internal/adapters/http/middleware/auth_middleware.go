package middleware

import (
	"strings"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/config"
	"libeasy/internal/core/domain"
	"libeasy/internal/pkg/jwt"
	"libeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Context locals keys set by Protected
const (
	LocalUser  = "user"
	LocalEmail = "email"
	LocalRole  = "role"
)

// Protected creates authentication middleware. The bearer token is
// validated and its subject resolved against the users table, so a token
// for a deleted account fails even while the signature is still valid.
func Protected(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		user, err := userRepo.GetByEmail(c.Context(), claims.Subject)
		if err != nil {
			return response.Unauthorized(c, "Could not validate credentials")
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, domain.Role(user.Role))

		return c.Next()
	}
}

// RequireRoles creates role-based authorization middleware
func RequireRoles(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !role.In(allowedRoles...) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// StaffOnly middleware allows admin or librarian roles
func StaffOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleLibrarian)
}

// CurrentUser returns the authenticated user set by Protected
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalUser).(*models.User)
	return user
}
