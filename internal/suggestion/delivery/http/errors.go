package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-planning-assistant/internal/suggestion"
	pkgErrors "event-planning-assistant/pkg/errors"
	"event-planning-assistant/pkg/response"
)

var (
	errSuggestionFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, pkgErrors.CodeSuggestionFailed,
		"could not generate task suggestions, please try again")
	errVendorResolutionFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, pkgErrors.CodeVendorResolutionFailed,
		"could not find vendor suggestions, please try again")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Messages are generic; provider output never reaches the client.
// Unknown errors map to nil.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, suggestion.ErrEmptyTaskTitle), errors.Is(err, suggestion.ErrEmptyEventTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, pkgErrors.CodeInvalidRequest, err.Error())
	case errors.Is(err, suggestion.ErrSuggestion):
		return errSuggestionFailed
	case errors.Is(err, suggestion.ErrResolution):
		return errVendorResolutionFailed
	default:
		return nil
	}
}

// respondError writes the mapped error, or a 500 that hides err.
func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c, err)
}

// mapRequestError wraps binding and validation failures as INVALID_REQUEST.
func (h *handler) mapRequestError(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, pkgErrors.CodeInvalidRequest, err.Error())
}
