package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"

	"lifecycle/internal/pkg/errs"
)

// OpenAPIValidator checks every request described by swagger against its
// operation: path parameters, required fields, enums and value types.
// Requests for paths the document does not describe pass through untouched.
func OpenAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", validateErr)
			}

			return next(ctx)
		}
	}, nil
}
