package controller

import (
	"log"

	"estatecrm_backend/internal/linkage"
	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
)

type PropertyInput struct {
	Name     string               `json:"name"`
	Address  string               `json:"address" validate:"required"`
	Price    float64              `json:"price" validate:"required,gt=0"`
	Beds     int                  `json:"beds" validate:"min=0"`
	Baths    int                  `json:"baths" validate:"min=0"`
	Sqft     int                  `json:"sqft" validate:"required,gt=0"`
	ImageURL string               `json:"image_url"`
	Status   model.PropertyStatus `json:"status" validate:"required"`
}

func (in *PropertyInput) validate() string {
	if in.Address == "" {
		return "Address is required"
	}
	if in.Price <= 0 {
		return "Price must be positive"
	}
	if in.Beds < 0 || in.Baths < 0 {
		return "Beds and baths cannot be negative"
	}
	if in.Sqft <= 0 {
		return "Sqft must be positive"
	}
	if !in.Status.Valid() {
		return "Invalid property status"
	}
	return ""
}

// ListMyProperties returns the user's listings, newest first.
func ListMyProperties(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var properties []model.Property
	if err := database.GetDB().Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	return c.JSON(properties)
}

func CreateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(PropertyInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	property := model.Property{
		Name:     input.Name,
		Address:  input.Address,
		Price:    input.Price,
		Beds:     input.Beds,
		Baths:    input.Baths,
		Sqft:     input.Sqft,
		ImageURL: input.ImageURL,
		Status:   input.Status,
		UserID:   claims.UserID,
	}

	if err := database.GetDB().Create(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty edits the listing form fields. Status set here reflects the
// agent's own For Sale / Pending choice; Sold is normally driven by the
// order status propagator.
func UpdateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")
	input := new(PropertyInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	var property model.Property
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	property.Name = input.Name
	property.Address = input.Address
	property.Price = input.Price
	property.Beds = input.Beds
	property.Baths = input.Baths
	property.Sqft = input.Sqft
	property.ImageURL = input.ImageURL
	property.Status = input.Status

	if err := database.GetDB().Save(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update property",
		})
	}

	return c.JSON(property)
}

// DeleteProperty removes the listing without cascading into purchase orders;
// an order pointing at a deleted property renders with placeholders.
func DeleteProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")

	var property model.Property
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	if err := database.GetDB().Delete(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetPropertyClient resolves the client on the other side of the property's
// most recent purchase order. Lookup failures are logged and rendered as
// "no client" to keep the detail view usable.
func GetPropertyClient(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	propertyID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property ID",
		})
	}

	client, err := linkage.ClientLinkedToProperty(database.GetDB(), claims.UserID, uint(propertyID))
	if err != nil {
		log.Printf("Error resolving client for property %d: %v", propertyID, err)
		return c.JSON(fiber.Map{"client": nil})
	}

	return c.JSON(fiber.Map{"client": client})
}
