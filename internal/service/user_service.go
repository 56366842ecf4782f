package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService : сотрудники панели. Регистрация и список только по токену администратора
type UserService struct {
	db             *config.Database
	userRepository ports.UserRepository
	adminToken     *config.AdminConfig
	clock          util.Clock
}

func NewUserService(
	db *config.Database,
	userRepository ports.UserRepository,
	adminToken *config.AdminConfig,
	clock util.Clock,
) *UserService {
	return &UserService{
		db:             db,
		userRepository: userRepository,
		adminToken:     adminToken,
		clock:          clock,
	}
}

func (s *UserService) isAdminToken(token string) bool {
	return s.adminToken != nil && s.adminToken.AdminToken != "" && token == s.adminToken.AdminToken
}

func (s *UserService) Register(ctx context.Context, adminToken, email, name, password string) (*model.User, error) {
	if !s.isAdminToken(adminToken) {
		return nil, fmt.Errorf("[UserService] неверный токен администратора: %w", model.ErrForbidden)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("[UserService] некорректный email: %w", model.ErrInvalidInput)
	}

	name = util.SanitizeText(name)
	if name == "" {
		return nil, fmt.Errorf("[UserService] имя обязательно: %w", model.ErrInvalidInput)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	created, err := s.userRepository.CreateUser(ctx, s.db, user)
	if err != nil {
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	util.Logger.Info("[UserService] пользователь зарегистрирован", zap.String("user_uuid", created.UUID))
	return created, nil
}

// validatePassword : минимум 8 символов, буквы и цифры
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("пароль должен содержать минимум 8 символов: %w", model.ErrInvalidInput)
	}

	var letters, digits int
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			letters++
		case unicode.IsDigit(c):
			digits++
		}
	}

	if letters == 0 {
		return fmt.Errorf("пароль должен содержать хотя бы одну букву: %w", model.ErrInvalidInput)
	}
	if digits == 0 {
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру: %w", model.ErrInvalidInput)
	}

	return nil
}

func (s *UserService) GetUser(ctx context.Context, auth model.AuthContext, uuid string) (*model.User, error) {
	if !auth.IsAdmin && auth.UserUUID != uuid {
		return nil, fmt.Errorf("[UserService] доступ запрещён: %w", model.ErrForbidden)
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, uuid)
	if err != nil {
		return nil, fmt.Errorf("[UserService] пользователь не найден: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, auth model.AuthContext, uuid, newPassword string) error {
	if auth.UserUUID != uuid {
		return fmt.Errorf("[UserService] доступ запрещён: %w", model.ErrForbidden)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("[UserService] %w", err)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePassword(ctx, s.db, uuid, hash)
}

func (s *UserService) ListUsers(ctx context.Context, adminToken string, cursor string, limit int) ([]*model.User, string, error) {
	if !s.isAdminToken(adminToken) {
		return nil, "", fmt.Errorf("[UserService] доступ запрещён: нужен токен администратора: %w", model.ErrForbidden)
	}

	_, limit = normalizePage(1, limit)
	return s.userRepository.ListUsers(ctx, s.db, cursor, limit)
}
