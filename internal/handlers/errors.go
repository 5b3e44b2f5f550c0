package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/repositories"
)

// respondError maps a service error onto the standard error body.
func respondError(c echo.Context, err error, resource string) error {
	if fe, ok := common.AsFieldError(err); ok {
		return common.SendValidationError(c, fe.Field, fe.Message)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return common.SendNotFoundError(c, resource)
	}
	log.Printf("WARN: %s %s failed: %v", c.Request().Method, c.Path(), err)
	return common.SendServerError(c, "Internal server error")
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, common.NewFieldError(name, "must be a positive integer")
	}
	return id, nil
}
