package repositories

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, name string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
}
