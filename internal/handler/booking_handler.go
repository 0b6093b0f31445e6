package handler

import (
	"net/http"

	"github.com/Eursukkul/travel-listings/internal/dto"
	"github.com/Eursukkul/travel-listings/internal/models"
	"github.com/Eursukkul/travel-listings/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id", h.GetBooking)

	g.POST("/listings/:id/bookings", h.CreateListingBooking)
	g.GET("/listings/:id/bookings", h.ListListingBookings)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return h.create(c, &req)
}

// CreateListingBooking books the listing named in the path; a listing in the body is ignored.
func (h *BookingHandler) CreateListingBooking(c echo.Context) error {
	listingID, err := parseID(c, "listing")
	if err != nil {
		return err
	}
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.Listing = listingID
	return h.create(c, &req)
}

func (h *BookingHandler) create(c echo.Context, req *dto.BookingRequest) error {
	if err := c.Validate(req); err != nil {
		return err
	}

	booking := req.ToModel()
	if err := h.svc.CreateBooking(c.Request().Context(), booking); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	listingID, err := listingQuery(c)
	if err != nil {
		return err
	}
	return h.list(c, listingID)
}

func (h *BookingHandler) ListListingBookings(c echo.Context) error {
	listingID, err := parseID(c, "listing")
	if err != nil {
		return err
	}
	return h.list(c, &listingID)
}

func (h *BookingHandler) list(c echo.Context, listingID *uint) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), listingID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, bookingResponses(bookings))
}

func bookingResponses(bookings []models.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return resp
}
