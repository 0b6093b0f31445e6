package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-listings/internal/dto"
	"github.com/Eursukkul/travel-listings/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reviews", h.CreateReview)
	g.GET("/reviews", h.ListReviews)
	g.GET("/reviews/:id", h.GetReview)

	g.POST("/listings/:id/reviews", h.CreateListingReview)
	g.GET("/listings/:id/reviews", h.ListListingReviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return h.create(c, &req)
}

func (h *ReviewHandler) CreateListingReview(c echo.Context) error {
	listingID, err := parseID(c, "listing")
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.Listing = listingID
	return h.create(c, &req)
}

func (h *ReviewHandler) create(c echo.Context, req *dto.ReviewRequest) error {
	if err := c.Validate(req); err != nil {
		return err
	}

	review := req.ToModel()
	if err := h.svc.CreateReview(c.Request().Context(), review); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseID(c, "review")
	if err != nil {
		return err
	}

	review, err := h.svc.GetReview(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	listingID, err := listingQuery(c)
	if err != nil {
		return err
	}
	return h.list(c, listingID)
}

func (h *ReviewHandler) ListListingReviews(c echo.Context) error {
	listingID, err := parseID(c, "listing")
	if err != nil {
		return err
	}
	return h.list(c, &listingID)
}

func (h *ReviewHandler) list(c echo.Context, listingID *uint) error {
	reviews, err := h.svc.ListReviews(c.Request().Context(), listingID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		resp[i] = dto.ToReviewResponse(&reviews[i])
	}
	return c.JSON(http.StatusOK, resp)
}
