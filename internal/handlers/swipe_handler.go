package handlers

import (
	"github.com/cofndrly/growmyapp-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetCandidatesHandler returns the viewer's swipe deck.
func GetCandidatesHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	candidates, err := services.GetCandidates(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch candidates"})
	}
	return c.JSON(candidates)
}

// SwipeHandler records a directional decision and reports a match when the
// swipe is mutual.
func SwipeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var request struct {
		ToUserID  string `json:"to_user_id"`
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := services.RecordSwipe(c.Context(), userID, request.ToUserID, request.Direction)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if result.Matched {
		return c.JSON(fiber.Map{
			"message":         "It's a match!",
			"matched":         true,
			"match_id":        result.MatchID,
			"conversation_id": result.ConversationID,
		})
	}
	return c.JSON(fiber.Map{"message": "Swipe recorded", "matched": false})
}

// ListMatchesHandler returns the viewer's matches with counterpart profiles.
func ListMatchesHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	matches, err := services.GetMatches(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch matches"})
	}
	return c.JSON(matches)
}
