package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/models"
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CreateProjectHandler lists a new shelf project. Builders only.
func CreateProjectHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	if role != models.RoleBuilder && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only builders can post projects"})
	}

	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	project, err := services.CreateProject(c.Context(), userID, input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Project posted successfully", "project": project})
}

// ListProjectsHandler returns all shelf projects, newest first.
func ListProjectsHandler(c *fiber.Ctx) error {
	projects, err := services.ListProjects(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(projects)
}

// ListMyProjectsHandler returns the viewer's own listings.
func ListMyProjectsHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	projects, err := services.ListProjectsByOwner(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(projects)
}

// GetProjectHandler returns one project and counts the view.
func GetProjectHandler(c *fiber.Ctx) error {
	project, err := services.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
	}
	return c.JSON(project)
}

// AddInterestHandler bumps a project's interest counter.
func AddInterestHandler(c *fiber.Ctx) error {
	if err := services.AddInterest(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Interest recorded"})
}
