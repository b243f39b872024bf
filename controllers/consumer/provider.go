package consumer

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/labourhub/booking-app/db"
	"github.com/labourhub/booking-app/models"
)

// GetAllProviders returns all labour providers, paginated
func GetAllProviders(c *fiber.Ctx) error {
	var providers []models.User

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	query := db.DB.Preload("Role").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", "labour")

	if category := c.Query("category"); category != "" {
		query = query.
			Joins("LEFT JOIN labour_details ON users.id = labour_details.provider_id").
			Where("labour_details.category = ?", category)
	}

	if err := query.Limit(limit).Offset(offset).Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}

	var count int64
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("roles.name = ?", "labour").
		Count(&count)

	// Clean sensitive data
	for i := range providers {
		providers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"providers": providers,
		"total":     count,
		"page":      page,
		"limit":     limit,
		"pages":     (int(count) + limit - 1) / limit,
	})
}

// GetProviderDetails returns a provider's profile, weekly hours and card
func GetProviderDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var provider models.User
	if err := db.DB.Preload("Role").
		Preload("WorkingHours").
		Preload("ProvidedServices").
		First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	if provider.Role.Name != "labour" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a service provider",
		})
	}

	var details models.LabourDetails
	db.DB.Where("provider_id = ?", id).First(&details)

	// Remove sensitive information
	provider.Password = ""

	return c.JSON(fiber.Map{
		"provider":       provider,
		"labour_details": details,
	})
}

// SearchProviders searches labour providers by name, skills or city
func SearchProviders(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	searchQuery := fmt.Sprintf("%%%s%%", query)

	var providers []models.User
	if err := db.DB.Preload("Role").
		Joins("JOIN roles ON users.role_id = roles.id").
		Joins("LEFT JOIN labour_details ON users.id = labour_details.provider_id").
		Where("roles.name = ? AND (users.name LIKE ? OR labour_details.skills LIKE ? OR labour_details.city LIKE ?)",
			"labour", searchQuery, searchQuery, searchQuery).
		Group("users.id").
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search providers",
		})
	}

	for i := range providers {
		providers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"providers": providers,
		"count":     len(providers),
	})
}
