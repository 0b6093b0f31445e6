package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-listings/internal/dto"
	"github.com/Eursukkul/travel-listings/internal/repository"
	"github.com/Eursukkul/travel-listings/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func (h *ListingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/listings", h.CreateListing)
	g.GET("/listings", h.ListListings)
	g.GET("/listings/:id", h.GetListing)
	g.PUT("/listings/:id", h.UpdateListing)
	g.DELETE("/listings/:id", h.DeleteListing)
}

func (h *ListingHandler) bind(c echo.Context) (*dto.ListingRequest, error) {
	var req dto.ListingRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	listing := req.ToModel()
	if err := h.svc.CreateListing(c.Request().Context(), listing); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := repository.ListingFilter{Location: c.QueryParam("location")}

	listings, err := h.svc.ListListings(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ListingResponse, len(listings))
	for i := range listings {
		resp[i] = dto.ToListingResponse(&listings[i])
	}

	return c.JSON(http.StatusOK, resp)
}

// GetListing renders the detail view: bookings, reviews and the rating summary.
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := parseID(c, "listing")
	if err != nil {
		return err
	}

	listing, err := h.svc.GetListing(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingDetailResponse(listing))
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := parseID(c, "listing")
	if err != nil {
		return err
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}

	listing, err := h.svc.UpdateListing(c.Request().Context(), id, req.ToModel())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id, err := parseID(c, "listing")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteListing(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
