package services

import (
	"sort"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/models"
)

// placeholderName stands in when a counterpart's profile cannot be resolved;
// the conversation is still listed.
const placeholderName = "Unknown"

// ConversationSummary is one per-counterpart thread rollup.
type ConversationSummary struct {
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	Unread        int       `json:"unread"`
}

// ProfileLookup resolves a counterpart's display profile. Called at most
// once per counterpart, on first sight.
type ProfileLookup func(userID string) (models.User, error)

// AggregateConversations folds a flat, unordered message set into one
// summary per distinct counterpart. The last message is picked by pairwise
// timestamp comparison, so missing timestamps compare equal and the earlier
// occurrence wins. Output is sorted by last-message time, newest first.
func AggregateConversations(viewerID string, messages []models.Message, lookup ProfileLookup) []ConversationSummary {
	byCounterpart := make(map[string]*ConversationSummary)
	order := make([]string, 0)

	for _, msg := range messages {
		counterpart := msg.FromUserID
		if counterpart == viewerID {
			counterpart = msg.ToUserID
		}
		if counterpart == viewerID {
			// self-messages have no counterpart thread
			continue
		}

		entry, seen := byCounterpart[counterpart]
		if !seen {
			entry = &ConversationSummary{
				UserID:        counterpart,
				Name:          placeholderName,
				LastMessage:   msg.Body,
				LastMessageAt: msg.CreatedAt,
			}
			if lookup != nil {
				if profile, err := lookup(counterpart); err == nil {
					entry.Name = profile.Name
					entry.AvatarURL = profile.AvatarURL
					entry.Bio = profile.Bio
				}
			}
			byCounterpart[counterpart] = entry
			order = append(order, counterpart)
		} else if msg.CreatedAt.After(entry.LastMessageAt) {
			entry.LastMessage = msg.Body
			entry.LastMessageAt = msg.CreatedAt
		}

		if msg.ToUserID == viewerID && !msg.Read {
			entry.Unread++
		}
	}

	summaries := make([]ConversationSummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byCounterpart[id])
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessageAt.After(summaries[j].LastMessageAt)
	})
	return summaries
}
