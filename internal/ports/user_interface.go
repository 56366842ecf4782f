package ports

import (
	"context"

	"crm-web-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, uuid, newPasswordHash string) error
	ListUsers(ctx context.Context, exec sqlx.ExtContext, cursor string, limit int) ([]*model.User, string, error)
	Exists(ctx context.Context, exec sqlx.ExtContext, uuid string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, adminToken, email, name, password string) (*model.User, error)
	GetUser(ctx context.Context, auth model.AuthContext, uuid string) (*model.User, error)
	UpdatePassword(ctx context.Context, auth model.AuthContext, uuid, newPassword string) error
	ListUsers(ctx context.Context, adminToken, cursor string, limit int) ([]*model.User, string, error)
}
