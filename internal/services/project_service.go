package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectInput carries the post-project wizard fields.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	State       string   `json:"state"`
	Terms       string   `json:"terms"`
	LogoURL     string   `json:"logo_url"`
	ImageURLs   []string `json:"image_urls"`
}

// CreateProject lists a builder's shelf project.
func CreateProject(ctx context.Context, ownerID string, input ProjectInput) (models.Project, error) {
	if input.Title == "" {
		return models.Project{}, errors.New("title is required")
	}
	if input.Description == "" {
		return models.Project{}, errors.New("description is required")
	}
	if input.Terms == "" {
		return models.Project{}, errors.New("partnership terms are required")
	}

	project := models.Project{
		ID:          primitive.NewObjectID(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		State:       input.State,
		Terms:       input.Terms,
		LogoURL:     input.LogoURL,
		ImageURLs:   input.ImageURLs,
		CreatedAt:   time.Now(),
	}
	if _, err := db.GetCollection("projects").InsertOne(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects returns all shelf projects, newest first.
func ListProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := db.GetCollection("projects").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// ListProjectsByOwner returns one builder's listings, newest first.
func ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	cursor, err := db.GetCollection("projects").Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

// GetProject returns one project and counts the view.
func GetProject(ctx context.Context, projectID string) (models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("invalid project ID: %w", err)
	}

	var project models.Project
	err = db.GetCollection("projects").FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		return models.Project{}, fmt.Errorf("project not found: %w", err)
	}
	return project, nil
}

// AddInterest bumps a project's interest counter.
func AddInterest(ctx context.Context, projectID string) error {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}

	result, err := db.GetCollection("projects").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"interest": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to record interest: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("project not found")
	}
	return nil
}
