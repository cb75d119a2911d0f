package adaptor

import (
	"errors"
	"net/http"

	"movie-booking/internal/domain"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps a domain error kind to its HTTP status and writes the
// error message verbatim. Anything that is not a domain error is an
// unexpected failure and stays opaque to the client.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch domain.KindOf(err) {
	case domain.KindBadRequest:
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
	case domain.KindNotFound:
		log.Warn(operation+" failed: not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())
	case domain.KindConflict:
		log.Warn(operation+" failed: conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		var de *domain.Error
		if errors.As(err, &de) {
			utils.ResponseInternalError(w, de.Message)
			return
		}
		utils.ResponseInternalError(w, "Internal server error")
	}
}
