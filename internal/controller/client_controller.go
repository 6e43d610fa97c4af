package controller

import (
	"log"
	"time"

	"estatecrm_backend/internal/linkage"
	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type ClientInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LastContact string `json:"last_contact"` // YYYY-MM-DD, defaults to today
}

func (in *ClientInput) lastContactDate() datatypes.Date {
	if in.LastContact != "" {
		if t, err := time.Parse("2006-01-02", in.LastContact); err == nil {
			return datatypes.Date(t)
		}
	}
	return datatypes.Date(time.Now())
}

// ListMyClients returns the user's clients, newest first.
func ListMyClients(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var clients []model.Client
	if err := database.GetDB().Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch clients",
		})
	}

	return c.JSON(clients)
}

func CreateClient(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(ClientInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	client := model.Client{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		LastContact: input.lastContactDate(),
		UserID:      claims.UserID,
	}

	if err := database.GetDB().Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create client",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

func UpdateClient(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")
	input := new(ClientInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var client model.Client
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.LastContact = input.lastContactDate()

	if err := database.GetDB().Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update client",
		})
	}

	return c.JSON(client)
}

// DeleteClient removes the client row. Purchase orders referencing it are
// left in place; detail views render them with placeholders.
func DeleteClient(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")

	var client model.Client
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	if err := database.GetDB().Delete(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete client",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetClientProperties lists the properties linked to a client through its
// purchase orders. Resolver failures are logged and rendered empty; the
// modal stays usable.
func GetClientProperties(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid client ID",
		})
	}

	properties, err := linkage.PropertiesLinkedToClient(database.GetDB(), claims.UserID, uint(clientID))
	if err != nil {
		log.Printf("Error resolving properties for client %d: %v", clientID, err)
		return c.JSON([]model.Property{})
	}

	return c.JSON(properties)
}

// GetAvailableProperties lists properties the link form may offer: not Sold
// and not already linked to this client.
func GetAvailableProperties(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid client ID",
		})
	}

	properties, err := linkage.AvailableProperties(database.GetDB(), claims.UserID, uint(clientID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch available properties",
		})
	}

	return c.JSON(properties)
}

type LinkPropertyInput struct {
	PropertyID uint `json:"property_id" validate:"required"`
}

// LinkProperty creates a pending purchase order tying the client to the
// selected property.
func LinkProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	clientID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid client ID",
		})
	}

	input := new(LinkPropertyInput)
	if err := c.BodyParser(input); err != nil || input.PropertyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	order, err := linkage.LinkPropertyToClient(database.GetDB(), claims.UserID, uint(clientID), input.PropertyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not link property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
