package interactor

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/mufasadev/minibank/internal/domain/repositories"
)

type UserInteractor struct {
	userRepository repositories.UserRepository
}

func NewUserInteractor(Repository repositories.UserRepository) *UserInteractor {
	return &UserInteractor{userRepository: Repository}
}

func (u *UserInteractor) ExistsByID(ctx context.Context, id int) (bool, error) {
	_, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u *UserInteractor) GetByID(ctx context.Context, id int) (*models.User, error) {
	return u.userRepository.GetByID(ctx, id)
}

func (u *UserInteractor) List(ctx context.Context) ([]models.User, error) {
	return u.userRepository.List(ctx)
}

func (u *UserInteractor) Create(ctx context.Context, name string) (*models.User, error) {
	return u.userRepository.Insert(ctx, name)
}

func (u *UserInteractor) Rename(ctx context.Context, id int, name string) (*models.User, error) {
	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := u.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserInteractor) Delete(ctx context.Context, id int) error {
	return u.userRepository.Delete(ctx, id)
}
