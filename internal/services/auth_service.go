package services

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = os.Getenv("JWT_SECRET")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT generates a JWT token with user ID, role and approval state
func GenerateJWT(userID, role string, approved bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"approved": approved,
		"exp":      time.Now().Add(time.Hour * 4).Unix(), // Token expires in 4 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateCredentials checks registration input before any document is
// written. Duplicate emails are checked separately against the collection.
func ValidateCredentials(email, password, role string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email address")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if role != models.RoleBuilder && role != models.RoleMarketer {
		return errors.New("role must be builder or marketer")
	}
	return nil
}

// RegisterUser registers a new user. Accounts start unapproved; the account
// matching ADMIN_EMAIL becomes the pre-approved admin. A signup confirmation
// mail is enqueued once the document exists.
func RegisterUser(ctx context.Context, email, password, name, role string) (models.User, error) {
	if err := ValidateCredentials(email, password, role); err != nil {
		return models.User{}, err
	}

	collection := db.GetCollection("users")

	// Check if user already exists
	var existingUser models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existingUser)
	if err == nil {
		return models.User{}, errors.New("email already in use")
	}

	// Hash password
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Role:      role,
		Approved:  false,
		CreatedAt: time.Now(),
	}
	if email == os.Getenv("ADMIN_EMAIL") {
		user.Role = models.RoleAdmin
		user.Approved = true
	}

	_, err = collection.InsertOne(ctx, user)
	if err != nil {
		// The unique email index backstops concurrent registrations.
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, errors.New("email already in use")
		}
		return models.User{}, err
	}

	// Signup confirmation is fire-and-forget: a mail failure must not fail
	// the registration that already happened.
	if err := EnqueueSignupMail(ctx, user); err != nil {
		log.Printf("failed to enqueue signup mail for %s: %v", user.Email, err)
	}

	return user, nil
}

// LoginUser authenticates a user and returns a JWT with role info
func LoginUser(ctx context.Context, email, password string) (string, models.User, error) {
	collection := db.GetCollection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", models.User{}, errors.New("invalid credentials")
	}

	// Verify password
	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, errors.New("invalid credentials")
	}

	token, err := GenerateJWT(user.ID.Hex(), user.Role, user.Approved)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}
