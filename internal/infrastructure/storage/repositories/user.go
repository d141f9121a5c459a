package repositories

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/mufasadev/minibank/internal/domain/repositories"
	"github.com/mufasadev/minibank/internal/errors"
)

type UserRepositoryImpl struct {
	state *State
}

func NewUserRepositoryImpl(state *State) repositories.UserRepository {
	return &UserRepositoryImpl{
		state: state,
	}
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int) (*models.User, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	for i := range r.state.users {
		if r.state.users[i].ID == id {
			user := r.state.users[i]
			return &user, nil
		}
	}

	return nil, errors.NewNotFoundError(errors.ErrUserNotFound)
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]models.User, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]models.User, len(r.state.users))
	copy(out, r.state.users)
	return out, nil
}

// Insert assigns id = len(users)+1. Ids are reused after a delete followed by
// a create; duplicate ids are possible and deliberately not prevented.
func (r *UserRepositoryImpl) Insert(ctx context.Context, name string) (*models.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	user := models.User{ID: len(r.state.users) + 1, Name: name}
	r.state.users = append(r.state.users, user)
	return &user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *models.User) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i := range r.state.users {
		if r.state.users[i].ID == user.ID {
			r.state.users[i] = *user
			return nil
		}
	}

	return errors.NewNotFoundError(errors.ErrUserNotFound)
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	kept := r.state.users[:0]
	found := false
	for _, user := range r.state.users {
		if user.ID == id && !found {
			found = true
			continue
		}
		kept = append(kept, user)
	}
	r.state.users = kept

	if !found {
		return errors.NewNotFoundError(errors.ErrUserNotFound)
	}
	return nil
}
