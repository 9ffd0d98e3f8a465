package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// TokenResponse matches the API auth response
type TokenResponse struct {
	Token string `json:"token"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, err := ts.Services.Auth.ValidateToken(tokenResp.Token)
	if err != nil {
		t.Fatalf("failed to validate issued token: %v", err)
	}

	user := &domain.User{
		ID:    userID,
		Name:  b.name,
		Email: b.email,
	}

	return user, tokenResp.Token
}

// GiftBuilder creates test gifts with a builder pattern
type GiftBuilder struct {
	owner       *domain.User
	title       string
	description string
	price       float64
	category    string
	image       string
}

// NewGiftBuilder creates a new GiftBuilder with default values
func NewGiftBuilder() *GiftBuilder {
	return &GiftBuilder{
		title: fmt.Sprintf("gift_%s", uuid.New().String()[:8]),
		price: 9.99,
	}
}

// WithOwner sets the owning user
func (b *GiftBuilder) WithOwner(user *domain.User) *GiftBuilder {
	b.owner = user
	return b
}

// WithTitle sets the title
func (b *GiftBuilder) WithTitle(title string) *GiftBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *GiftBuilder) WithDescription(description string) *GiftBuilder {
	b.description = description
	return b
}

// WithPrice sets the price
func (b *GiftBuilder) WithPrice(price float64) *GiftBuilder {
	b.price = price
	return b
}

// WithCategory sets the category
func (b *GiftBuilder) WithCategory(category string) *GiftBuilder {
	b.category = category
	return b
}

// WithImage sets the image URL
func (b *GiftBuilder) WithImage(image string) *GiftBuilder {
	b.image = image
	return b
}

// Build creates the gift in the database
func (b *GiftBuilder) Build(t *testing.T, db *gorm.DB) *domain.Gift {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	gift := &domain.Gift{
		ID:          uuid.New(),
		Title:       b.title,
		Description: b.description,
		Price:       b.price,
		Category:    b.category,
		Image:       b.image,
		OwnerID:     b.owner.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(gift).Error; err != nil {
		t.Fatalf("failed to create gift: %v", err)
	}

	return gift
}

// DoJSON issues a JSON request against the test server with an optional
// bearer token and returns the response.
func DoJSON(t *testing.T, ts *TestServer, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, ts.APIURL(path), reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	t.Cleanup(func() {
		resp.Body.Close()
	})

	return resp
}
