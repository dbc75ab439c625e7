package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pigsheadbbq/site/internal/api/dto"
	"github.com/pigsheadbbq/site/internal/subscribe"
	apperrors "github.com/pigsheadbbq/site/pkg/util"
)

// SubscribeHandler exposes the public signup endpoint.
type SubscribeHandler struct {
	recorder *subscribe.Recorder
	logger   *zap.Logger
}

// NewSubscribeHandler constructs the handler.
func NewSubscribeHandler(recorder *subscribe.Recorder, logger *zap.Logger) *SubscribeHandler {
	return &SubscribeHandler{recorder: recorder, logger: logger}
}

// Subscribe handles POST /api/subscribe. The route is exempt from the auth
// gate; validation or storage failures never escape as panics.
func (h *SubscribeHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.SubscribeResponse{
			OK:      false,
			Message: "Invalid form submission.",
		})
	}

	record, err := h.recorder.Record(c.Context(), req.Email, req.Phone, req.Consent, req.SourcePage)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) {
			return c.Status(domainErr.HTTPStatus).JSON(dto.SubscribeResponse{
				OK:      false,
				Message: domainErr.Message,
			})
		}
		h.logger.Error("subscribe failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(dto.SubscribeResponse{
			OK:      false,
			Message: "We could not save your signup right now. Please try again later.",
		})
	}

	h.logger.Info("subscription recorded",
		zap.String("id", record.ID),
		zap.String("source_page", record.SourcePage))
	return c.JSON(dto.SubscribeResponse{
		OK:      true,
		Message: "Thanks for signing up!",
	})
}
