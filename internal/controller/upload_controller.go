package controller

import (
	"estatecrm_backend/pkg/utils/jwt"
	"estatecrm_backend/pkg/utils/storage"

	"github.com/gofiber/fiber/v2"
)

// UploadPropertyImage accepts one multipart image, optimizes it and stores
// it in the bucket. The returned URL goes into the listing form's image
// field; the property row is written separately on form submit.
func UploadPropertyImage(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	url, err := storage.UploadPropertyImage(file, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}

type DeleteImageInput struct {
	URL string `json:"url" validate:"required"`
}

// DeletePropertyImage removes an uploaded image by its public URL.
func DeletePropertyImage(c *fiber.Ctx) error {
	input := new(DeleteImageInput)
	if err := c.BodyParser(input); err != nil || input.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := storage.DeleteImage(input.URL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
