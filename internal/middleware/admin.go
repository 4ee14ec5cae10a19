package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dhohnholt/davidhohnholt/internal/config"
	"github.com/dhohnholt/davidhohnholt/internal/dto"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

// AdminRequired gates the dashboard routes. A request passes when any of
// the following holds:
//  1. the X-Admin-Token header matches the configured token
//  2. the JWT email is on the configured admin allow-list
//  3. the user's profile role is "admin"
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, UserEmail(c)) {
			return c.Next()
		}

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userID).Error; err == nil {
			if profile.IsAdmin() {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if val != "" && item == val {
			return true
		}
	}
	return false
}
