package middlewares

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/minibank/internal/errors"
	http2 "github.com/mufasadev/minibank/internal/infrastructure/api/http"
	"github.com/mufasadev/minibank/internal/usecases/interactor"
	"github.com/mufasadev/minibank/pkg/log"
	"net/http"
	"strconv"
	"time"
)

// UserValidationMiddleware rejects requests whose user id is missing, not an
// integer, or not present in the directory.
func UserValidationMiddleware(userInt *interactor.UserInteractor) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.GetLogger()
			userID := chi.URLParam(r, http2.UserIDParam)
			if userID == "" {
				logger.Error().Msg(errors.ErrUserIDRequired)
				errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrUserIDRequired))
				return
			}

			id, err := strconv.Atoi(userID)
			if err != nil {
				logger.Error().Str("user_id", userID).Msg(errors.ErrInvalidUserID)
				errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidUserID))
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if exists, _ := userInt.ExistsByID(ctx, id); !exists {
				logger.Error().Int("user_id", id).Msg(errors.ErrUserNotFound)
				errors.HandleHTTPError(w, errors.NewNotFoundError(errors.ErrUserNotFound))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
