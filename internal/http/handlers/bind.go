package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON decodes the request body into out. Every failure, malformed JSON
// and missing required fields alike, collapses into the endpoint's single 400
// message; that is the contract clients rely on. The field-level detail still
// goes to the debug log.
func BindJSON(ctx *gin.Context, out interface{}, message string) bool {
	err := ctx.ShouldBindJSON(out)

	if err == nil {
		return true
	}

	var validatorErrors validator.ValidationErrors

	if errors.As(err, &validatorErrors) {
		fields := make([]string, 0, len(validatorErrors))

		for _, fieldError := range validatorErrors {
			fields = append(fields, fieldError.Field())
		}

		slog.Default().DebugContext(ctx.Request.Context(), "bind_failed",
			"reason", "validation",
			"fields", fields,
		)
	} else {
		slog.Default().DebugContext(ctx.Request.Context(), "bind_failed",
			"reason", "decode",
			"err", err.Error(),
		)
	}

	RespondBadRequest(ctx, message)

	return false
}
