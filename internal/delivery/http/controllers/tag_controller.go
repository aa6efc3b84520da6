package controllers

import (
	"log/slog"
	"net/http"

	"offerboard/internal/delivery/http/helpers"
	"offerboard/internal/domain"
)

type TagController struct {
	Logger  *slog.Logger
	Service domain.OfferService
}

func NewTagController(logger *slog.Logger, svc domain.OfferService) *TagController {
	return &TagController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} domain.Tag
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tags [get]
func (c *TagController) List(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListTags(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}
