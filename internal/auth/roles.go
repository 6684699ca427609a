package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// The authorization rule lives here and nowhere else: admins manage existing
// reports and accounts, regular users may only submit and read.

// CanManageReports reports whether the role may update or delete reports.
func CanManageReports(role domain.UserRole) bool {
	return role == domain.RoleAdmin
}

// CanManageUsers reports whether the role may list or delete accounts.
func CanManageUsers(role domain.UserRole) bool {
	return role == domain.RoleAdmin
}

// CanSubmitReports reports whether the role may create new reports.
func CanSubmitReports(role domain.UserRole) bool {
	return role == domain.RoleAdmin || role == domain.RoleUser
}

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return util.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireReportManager gates report mutation endpoints on the policy.
func RequireReportManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !CanManageReports(principal.User.Role) {
			return util.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// RequireUserManager gates account management endpoints on the policy.
func RequireUserManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !CanManageUsers(principal.User.Role) {
			return util.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
