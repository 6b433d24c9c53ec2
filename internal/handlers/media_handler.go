package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

func uploadMedia(c *fiber.Ctx, prefix string) error {
	url, err := services.UploadMedia(c, prefix)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "File uploaded successfully", "url": url})
}

// UploadProfileImageHandler stores an avatar under profile-images/.
func UploadProfileImageHandler(c *fiber.Ctx) error {
	return uploadMedia(c, services.MediaProfileImage)
}

// UploadProjectLogoHandler stores a logo under project-logos/.
func UploadProjectLogoHandler(c *fiber.Ctx) error {
	return uploadMedia(c, services.MediaProjectLogo)
}

// UploadProjectImageHandler stores a screenshot under project-images/.
func UploadProjectImageHandler(c *fiber.Ctx) error {
	return uploadMedia(c, services.MediaProjectImage)
}
