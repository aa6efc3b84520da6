package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"offerboard/internal/delivery/http/helpers"
	"offerboard/internal/domain"

	"github.com/go-chi/chi/v5"
)

// OfferRequest is the request body for POST /offers and PUT /offers/{id}.
// PUT replaces every field; tags is a comma separated list of tag names.
type OfferRequest struct {
	AuthorID   int64      `json:"author_id" validate:"required,gt=0"`
	CategoryID int64      `json:"category_id" validate:"required,gt=0"`
	CityID     int64      `json:"city_id" validate:"required,gt=0"`
	RegionID   int64      `json:"region_id" validate:"required,gt=0"`
	Content    string     `json:"content" validate:"required,min=3,max=2000"`
	EventDate  time.Time  `json:"event_date" validate:"required"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Tags       string     `json:"tags" validate:"max=128"`
}

func (req OfferRequest) toOffer() *domain.Offer {
	o := domain.NewOffer(req.AuthorID, req.CategoryID, req.CityID, req.RegionID, req.Content, req.EventDate)
	if req.CreatedAt != nil {
		o.CreatedAt = *req.CreatedAt
	}
	return o
}

// OfferListResponse is the data of GET /offers and GET /offers/page/{page}.
type OfferListResponse struct {
	Items      []*domain.Offer        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// DeleteOfferResponse is the data of DELETE /offers/{id}.
type DeleteOfferResponse struct {
	ID int64 `json:"id"`
}

type OfferController struct {
	Logger  *slog.Logger
	Service domain.OfferService
}

func NewOfferController(logger *slog.Logger, svc domain.OfferService) *OfferController {
	return &OfferController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List offers
// @Description Returns one page of offers (10 per page) ordered by id. Pages below 1 or past the last page are clamped.
// @Tags offers
// @Produce json
// @Param page path int false "Page number"
// @Success 200 {object} controllers.OfferListResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /offers [get]
// @Router /offers/page/{page} [get]
func (c *OfferController) List(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(chi.URLParam(r, "page"))
	p, err := c.Service.List(r.Context(), page)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, OfferListResponse{
		Items:      p.Items,
		Pagination: helpers.NewPaginationMeta(p),
	})
}

// View godoc
// @Summary Get an offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} domain.Offer
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /offers/{id} [get]
func (c *OfferController) View(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseOfferID(chi.URLParam(r, "id"))
	if !ok {
		writeOfferNotFound(w)
		return
	}
	offer, err := c.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeOfferNotFound(w)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, offer)
}

// Create godoc
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body OfferRequest true "Offer data"
// @Success 201 {object} domain.Offer
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /offers [post]
func (c *OfferController) Create(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	offer := req.toOffer()
	if err := c.Service.Create(r.Context(), offer, domain.ParseTagNames(req.Tags)); err != nil {
		c.internalError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "offer created", "id", offer.ID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, offer)
}

// Update godoc
// @Summary Replace an offer
// @Description Replaces every field of the offer, including its tags.
// @Tags offers
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param offer body OfferRequest true "Offer data"
// @Success 200 {object} domain.Offer
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /offers/{id} [put]
func (c *OfferController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseOfferID(chi.URLParam(r, "id"))
	if !ok {
		writeOfferNotFound(w)
		return
	}
	var req OfferRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	offer := req.toOffer()
	if err := c.Service.Update(r.Context(), id, offer, domain.ParseTagNames(req.Tags)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeOfferNotFound(w)
			return
		}
		c.internalError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "offer updated", "id", offer.ID)
	helpers.WriteJSONSuccess(w, http.StatusOK, offer)
}

// Delete godoc
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} controllers.DeleteOfferResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /offers/{id} [delete]
func (c *OfferController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := domain.ParseOfferID(chi.URLParam(r, "id"))
	if !ok {
		writeOfferNotFound(w)
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeOfferNotFound(w)
			return
		}
		c.internalError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "offer deleted", "id", id)
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteOfferResponse{ID: id})
}

func (c *OfferController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}

func writeOfferNotFound(w http.ResponseWriter) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "offer not found")
}
