package translate

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"

	"github.com/oukeidos/lingua/internal/apperrors"
)

func classifyUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	wrapped := fmt.Errorf("translation request failed: %w", err)

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 400:
			return apperrors.New(apperrors.KindBadRequest, "Translation request rejected (400).", wrapped)
		case 404:
			return apperrors.New(apperrors.KindBadRequest, "Model not found or no access (404).", wrapped)
		case 401, 403:
			return apperrors.New(apperrors.KindAuth, fmt.Sprintf("Authentication/authorization failed (%d).", gerr.Code), wrapped)
		case 429:
			return apperrors.New(apperrors.KindRateLimit, "Rate limit exceeded (429). Please try again later.", wrapped)
		default:
			if gerr.Code >= 500 {
				return apperrors.New(apperrors.KindTransient, fmt.Sprintf("Translation service temporary error (%d). Please retry.", gerr.Code), wrapped)
			}
			return apperrors.New(apperrors.KindBadRequest, fmt.Sprintf("Translation API error (%d).", gerr.Code), wrapped)
		}
	}

	// Non-HTTP transport/runtime failures (DNS, socket, timeout, etc.)
	// are usually transient.
	return apperrors.New(apperrors.KindTransient, "Translation request failed due to a temporary network error.", wrapped)
}
