package handler

import (
	"strconv"

	domainerrors "userapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the JSON body into dst and runs the echo validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// userIDParam parses the numeric :id path parameter.
func userIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrInvalidUserID, err.Error())
	}

	return id, nil
}
