package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pigsheadbbq/site/internal/config"
	"github.com/pigsheadbbq/site/internal/menu"
	apperrors "github.com/pigsheadbbq/site/pkg/util"
)

// MenuHandler serves freshly generated menu PDFs.
type MenuHandler struct {
	fetcher *menu.Fetcher
	cfg     config.MenuConfig
	logger  *zap.Logger
}

// NewMenuHandler constructs the handler.
func NewMenuHandler(fetcher *menu.Fetcher, cfg config.MenuConfig, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{fetcher: fetcher, cfg: cfg, logger: logger}
}

// MenuPDF handles GET /menu.pdf.
func (h *MenuHandler) MenuPDF(c *fiber.Ctx) error {
	return h.servePDF(c, h.cfg.SheetURL, h.cfg.SheetGID,
		"Smokehouse Menu", "pigs-head-bbq-menu.pdf",
		"Unable to generate menu PDF right now.")
}

// CateringMenuPDF handles GET /catering-menu.pdf.
func (h *MenuHandler) CateringMenuPDF(c *fiber.Ctx) error {
	return h.servePDF(c, h.cfg.CateringSheetURL, h.cfg.CateringSheetGID,
		"Catering Menu", "pigs-head-bbq-catering-menu.pdf",
		"Unable to generate catering menu PDF right now.")
}

// servePDF fetches the sheet and renders it. Every upstream failure maps to
// a 503 with a generic message via the error middleware; internal detail
// stays in the logs.
func (h *MenuHandler) servePDF(c *fiber.Ctx, sheetURL, gid, title, filename, unavailable string) error {
	items, err := h.fetcher.FetchItems(c.Context(), sheetURL, gid)
	if err != nil {
		h.logger.Error("menu sheet fetch failed", zap.String("title", title), zap.Error(err))
		return apperrors.NewUpstreamUnavailable(unavailable, err)
	}
	if len(items) == 0 {
		return apperrors.NewUpstreamUnavailable("Menu data is currently unavailable.", nil)
	}

	pdfBytes, err := menu.RenderPDF(items, title)
	if err != nil {
		h.logger.Error("menu pdf render failed", zap.String("title", title), zap.Error(err))
		return apperrors.NewUpstreamUnavailable(unavailable, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(pdfBytes)
}
