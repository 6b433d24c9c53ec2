package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SendMessageHandler stores a new message to a matched counterpart.
func SendMessageHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var request struct {
		ToUserID  string `json:"to_user_id"`
		Body      string `json:"body"`
		ProjectID string `json:"project_id"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	message, err := services.SendMessage(c.Context(), userID, request.ToUserID, request.Body, request.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Message sent", "data": message})
}

// ListConversationsHandler returns per-counterpart thread summaries.
func ListConversationsHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	conversations, err := services.ListConversations(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch conversations"})
	}
	return c.JSON(conversations)
}

// GetThreadHandler returns the full exchange with one counterpart.
func GetThreadHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	thread, err := services.GetThread(c.Context(), userID, c.Params("userID"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(thread)
}

// MarkReadHandler marks all messages received from one counterpart as read.
func MarkReadHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := services.MarkConversationRead(c.Context(), userID, c.Params("userID")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark messages read"})
	}
	return c.JSON(fiber.Map{"message": "Conversation marked read"})
}
