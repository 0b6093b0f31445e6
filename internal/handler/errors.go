package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/travel-listings/internal/service"
	"github.com/Eursukkul/travel-listings/internal/validation"
	"github.com/labstack/echo/v4"
)

const msgInternal = "internal server error"

// toHTTPError maps service and validation errors onto HTTP status codes.
func toHTTPError(err error) error {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrListingNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
	}
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" id")
	}
	return uint(id), nil
}

// listingQuery reads the optional ?listing= filter.
func listingQuery(c echo.Context) (*uint, error) {
	s := c.QueryParam("listing")
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid listing filter")
	}
	v := uint(id)
	return &v, nil
}
