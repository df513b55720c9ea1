package http

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// bindID reads a required path parameter as a positive integer id.
// label names the identifier in the error message, e.g. "order item".
func bindID(c echo.Context, param, label string) (kernel.ID, error) {
	invalid := errs.NewValueIsInvalidError(fmt.Sprintf("The %s id is not a valid number", label))

	var raw int64
	if err := runtime.BindStyledParameterWithOptions("simple", param, c.Param(param), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		},
	); err != nil {
		return kernel.ID{}, invalid
	}

	id, err := kernel.NewID(raw)
	if err != nil {
		return kernel.ID{}, invalid
	}
	return id, nil
}

// optionalID converts an id a request body may omit.
func optionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
