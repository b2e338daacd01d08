package repo

import "github.com/rogerio-castellano/expiry-tracker/internal/models"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
	GetByID(id string) (models.User, error)
}
