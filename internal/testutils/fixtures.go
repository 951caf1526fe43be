package testutils

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/internal/model/product"
	"terminal-terrace/catalog-service/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		Username: fmt.Sprintf("test_user_%s", uniqueID),
		Email:    fmt.Sprintf("test_%s@example.com", uniqueID),
		Password: "password123",
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// CreateTestProduct creates a test product
func CreateTestProduct(db *gorm.DB, opts ...ProductOption) *product.Product {
	uniqueID := uuid.New().String()

	testProduct := &product.Product{
		Title:       fmt.Sprintf("Test Product %s", uniqueID),
		Description: "Test product description",
		Price:       9.99,
		Image:       "https://example.com/image.jpg",
		Category:    "misc",
		RatingRate:  4.2,
		RatingCount: 10,
	}

	for _, opt := range opts {
		opt(testProduct)
	}

	if err := db.Create(testProduct).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test product: %v", err))
	}

	return testProduct
}

// ProductOption configures test product
type ProductOption func(*product.Product)

// WithTitle sets the product title
func WithTitle(title string) ProductOption {
	return func(p *product.Product) {
		p.Title = title
	}
}

// WithDescription sets the product description
func WithDescription(description string) ProductOption {
	return func(p *product.Product) {
		p.Description = description
	}
}

// WithCategory sets the product category
func WithCategory(category string) ProductOption {
	return func(p *product.Product) {
		p.Category = category
	}
}

// CountRows returns the number of rows in the model's table
func CountRows(db *gorm.DB, model any) int64 {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		panic(fmt.Sprintf("Failed to count rows: %v", err))
	}
	return count
}
