package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetMeHandler returns the viewer's own profile.
func GetMeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// GetUserHandler returns another user's profile. Only approved profiles are
// visible to other members.
func GetUserHandler(c *fiber.Ctx) error {
	user, err := services.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if !user.Approved && user.ID.Hex() != c.Locals("user_id").(string) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// UpdateProfileHandler writes the viewer's profile fields.
func UpdateProfileHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := services.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Profile updated successfully", "user": user})
}
