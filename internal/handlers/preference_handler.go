package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/savorly/mealplan-backend/internal/dto"
	"github.com/savorly/mealplan-backend/internal/services"
)

type PreferenceHandler struct {
	prefService *services.PreferenceService
}

func NewPreferenceHandler(prefService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefService: prefService}
}

func (h *PreferenceHandler) GetPreference(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "User id is required",
		})
	}

	pref, err := h.prefService.GetByUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrPreferenceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Preference not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.PreferenceEnvelope{Preference: *pref})
}

func (h *PreferenceHandler) CreatePreference(c *fiber.Ctx) error {
	var req dto.CreatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	pref, err := h.prefService.Create(req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "User id is required",
			})
		}
		if errors.Is(err, services.ErrPreferenceExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: fmt.Sprintf("Preference for user %s already exists", req.UserID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Preference for user %s created", pref.UserID),
	})
}

func (h *PreferenceHandler) UpdatePreference(c *fiber.Ctx) error {
	var req dto.UpdatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	pref, err := h.prefService.Update(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Preference id is required",
			})
		case errors.Is(err, services.ErrNoDiets),
			errors.Is(err, services.ErrTooFewFavorites),
			errors.Is(err, services.ErrTooFewIngredients):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPreferenceNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Preference not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Preference %s updated", pref.ID)})
}
