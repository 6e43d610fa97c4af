package controller

import (
	"log"

	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/email"
	"estatecrm_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
)

type LeadInput struct {
	Name       string           `json:"name" validate:"required"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Source     string           `json:"source"`
	AssignedTo string           `json:"assigned_to"`
	Status     model.LeadStatus `json:"status"`
}

// ListMyLeads returns the user's leads, newest first, optionally filtered by
// status.
func ListMyLeads(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	query := database.GetDB().Where("user_id = ?", claims.UserID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []model.Lead
	if err := query.Order("created_at desc").Find(&leads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	return c.JSON(leads)
}

func CreateLead(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(LeadInput)

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

	status := input.Status
	if status == "" {
		status = model.LeadStatusNew
	}
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
			"valid_statuses": []string{
				string(model.LeadStatusNew),
				string(model.LeadStatusContacted),
				string(model.LeadStatusQualified),
				string(model.LeadStatusLost),
			},
		})
	}

	lead := model.Lead{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Source:     input.Source,
		AssignedTo: input.AssignedTo,
		Status:     status,
		UserID:     claims.UserID,
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create lead",
		})
	}

	if email.GlobalEmailService != nil {
		err := email.GlobalEmailService.SendLeadNotificationEmail(
			claims.Email,
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Source,
		)
		if err != nil {
			log.Printf("Could not send lead notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}

func UpdateLead(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")
	input := new(LeadInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var lead model.Lead
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&lead, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}

	if input.Status != "" && !input.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
		})
	}

	lead.Name = input.Name
	lead.Email = input.Email
	lead.Phone = input.Phone
	lead.Source = input.Source
	lead.AssignedTo = input.AssignedTo
	if input.Status != "" {
		lead.Status = input.Status
	}

	if err := database.GetDB().Save(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead",
		})
	}

	return c.JSON(lead)
}

func DeleteLead(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id := c.Params("id")

	var lead model.Lead
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&lead, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}

	if err := database.GetDB().Delete(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete lead",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
