package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ListUsersHandler lists users filtered by approval state
// (?status=pending|approved|all).
func ListUsersHandler(c *fiber.Ctx) error {
	users, err := services.ListUsersByStatus(c.Context(), c.Query("status", "all"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(users)
}

// ApproveUserHandler flips a pending user to approved. Repeat calls are
// no-ops and send no further mail.
func ApproveUserHandler(c *fiber.Ctx) error {
	user, err := services.ApproveUser(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User approved", "user": user})
}

// RejectUserHandler hard-deletes a user and their traces.
func RejectUserHandler(c *fiber.Ctx) error {
	if err := services.RejectUser(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User rejected and removed"})
}
