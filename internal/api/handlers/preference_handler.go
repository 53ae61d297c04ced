package handlers

import (
	"fridgemate/domain"
	"fridgemate/internal/api/presenters"
	"fridgemate/pkg/preference"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PreferenceHandler interface {
		GetPreferences(c *fiber.Ctx) error
		SetDarkMode(c *fiber.Ctx) error
	}

	preferenceHandler struct {
		preferenceService preference.PreferenceService
		validator         *validator.Validate
	}
)

func NewPreferenceHandler(preferenceService preference.PreferenceService, validator *validator.Validate) PreferenceHandler {
	return &preferenceHandler{
		preferenceService: preferenceService,
		validator:         validator,
	}
}

func (h *preferenceHandler) GetPreferences(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.preferenceService.GetPreferences(c.Context()), fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *preferenceHandler) SetDarkMode(c *fiber.Ctx) error {
	req := new(domain.DarkModeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePreferences, err)
	}

	res := h.preferenceService.SetDarkMode(c.Context(), *req.DarkMode)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSavePreferences)
}
