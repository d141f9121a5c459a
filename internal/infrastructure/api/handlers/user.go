package handlers

import (
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/minibank/internal/errors"
	http2 "github.com/mufasadev/minibank/internal/infrastructure/api/http"
	"github.com/mufasadev/minibank/internal/usecases/dtos"
	"github.com/mufasadev/minibank/internal/usecases/interactor"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/rs/zerolog"
	"net/http"
	"strconv"
	"time"
)

type UserHandler struct {
	interactor *interactor.UserInteractor
	logger     *zerolog.Logger
}

func NewUserHandler(interactor *interactor.UserInteractor) *UserHandler {
	logger := log.GetLogger()
	return &UserHandler{interactor: interactor, logger: &logger}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users, err := h.interactor.List(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		errors.HandleHTTPError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.interactor.GetByID(ctx, id)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", id).Msg("failed to get user")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.interactor.Create(ctx, name)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create user")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		errors.HandleHTTPError(w, err)
		return
	}

	name, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.interactor.Rename(ctx, id, name)
	if err != nil {
		h.logger.Error().Err(err).Int("user_id", id).Msg("failed to update user")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		errors.HandleHTTPError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.interactor.Delete(ctx, id); err != nil {
		h.logger.Error().Err(err).Int("user_id", id).Msg("failed to delete user")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeName decodes the request body and enforces the single type check the
// user resource has: name must be a JSON string.
func (h *UserHandler) decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var dto dtos.UserDTO
	err := json.NewDecoder(r.Body).Decode(&dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return "", false
	}

	var name interface{}
	if dto.RawName != nil {
		err = json.Unmarshal(dto.RawName, &name)
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to unmarshal raw name")
		errors.HandleHTTPError(w, errors.NewBadRequestError("Invalid name"))
		return "", false
	}

	s, ok := name.(string)
	if !ok {
		h.logger.Error().Msg("name is not a string")
		errors.HandleHTTPError(w, errors.NewBadRequestError("Invalid name"))
		return "", false
	}

	dto.Name = s
	return dto.Name, true
}

func userIDFromRequest(r *http.Request) (int, error) {
	raw := chi.URLParam(r, http2.UserIDParam)
	if raw == "" {
		return 0, errors.NewBadRequestError(errors.ErrUserIDRequired)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError(errors.ErrInvalidUserID)
	}
	return id, nil
}
