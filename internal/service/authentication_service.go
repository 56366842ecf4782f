package service

import (
	"context"
	"fmt"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/ports"
	"crm-web-server/internal/security"
	"crm-web-server/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthenticationService struct {
	db                  *config.Database
	jwtRepoInterface    ports.JWTRepositoryInterface
	jwtConfig           *config.JWTConfig
	jwtServiceInterface ports.JWTServiceInterface
	userRepository      ports.UserRepository
	clock               util.Clock
}

func NewAuthenticationService(
	db *config.Database,
	repo ports.JWTRepositoryInterface,
	jwtConfig *config.JWTConfig,
	service ports.JWTServiceInterface,
	userInterface ports.UserRepository,
	clock util.Clock,
) *AuthenticationService {
	return &AuthenticationService{
		db:                  db,
		jwtRepoInterface:    repo,
		jwtConfig:           jwtConfig,
		jwtServiceInterface: service,
		userRepository:      userInterface,
		clock:               clock,
	}
}

// Login : неизвестный email и неверный пароль неразличимы для клиента
func (s *AuthenticationService) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, s.db, email)
	if err != nil {
		util.Logger.Info("[AuthenticationService] вход с неизвестным email", zap.String("ip", ipAddress))
		return nil, fmt.Errorf("неверный email или пароль: %w", model.ErrUnauthorized)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		util.Logger.Info("[AuthenticationService] неверный пароль", zap.String("user_uuid", user.UUID), zap.String("ip", ipAddress))
		return nil, fmt.Errorf("неверный email или пароль: %w", model.ErrUnauthorized)
	}

	tokens, refreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(user.UUID)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	refreshToken.UserAgent = userAgent
	refreshToken.IpAddress = ipAddress

	if err := s.jwtRepoInterface.SaveRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("ошибка сохранения refresh токена: %w", err)
	}

	return tokens, nil
}

// RefreshToken обновляет пару токенов.
//  1. Обновление возможно только той парой токенов, которая была выдана вместе.
//  2. Смена User-Agent запрещает обновление и отзывает refresh-токен.
//  3. Смена IP только логируется.
func (s *AuthenticationService) RefreshToken(ctx context.Context, userAgent string, ipAddress string, accessToken string, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtServiceInterface.ValidateJWT(accessToken, []byte(s.jwtConfig.SecretKey))
	if err != nil {
		util.Logger.Info("[AuthenticationService] не удалось провалидировать токен", zap.Error(err))
		return nil, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized)
	}

	refreshTokenUUID := claims.RefreshTokenUUID
	userUUID := claims.UserUUID

	storedRefreshToken, err := s.jwtRepoInterface.FindByUUID(ctx, refreshTokenUUID)
	if err != nil {
		return nil, fmt.Errorf("refresh токен не найден: %w", model.ErrUnauthorized)
	}
	if storedRefreshToken.Used {
		// повторное предъявление погашенного токена: отзываем все сессии владельца
		revoked, err := s.jwtRepoInterface.RevokeAllForUser(ctx, storedRefreshToken.UserUUID)
		if err != nil {
			util.Logger.Error("не удалось отозвать сессии", zap.String("user_uuid", storedRefreshToken.UserUUID), zap.Error(err))
		}
		util.Logger.Warn("refresh token уже был использован",
			zap.String("refresh_uuid", refreshTokenUUID), zap.Int64("revoked_sessions", revoked))
		return nil, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized)
	}

	if s.clock.Now().After(storedRefreshToken.ExpireAt) {
		util.Logger.Info("refresh token просрочен", zap.String("refresh_uuid", refreshTokenUUID))
		return nil, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized)
	}

	if storedRefreshToken.UserAgent != userAgent {
		if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
			util.Logger.Error("не удалось пометить токен использованным", zap.String("refresh_uuid", refreshTokenUUID), zap.Error(err))
		}
		util.Logger.Warn("попытка обновления с другого User-Agent",
			zap.String("refresh_uuid", refreshTokenUUID), zap.String("user_uuid", userUUID))
		return nil, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized)
	}

	if storedRefreshToken.IpAddress != ipAddress {
		util.Logger.Warn("обновление токенов с нового ip адреса",
			zap.String("user_uuid", userUUID),
			zap.String("previous_ip", storedRefreshToken.IpAddress),
			zap.String("ip", ipAddress))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedRefreshToken.TokenHash), []byte(refreshToken)); err != nil {
		return nil, fmt.Errorf("невалидный токен: %w", model.ErrUnauthorized)
	}

	if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
		return nil, util.LogError("не удалось использовать токен", err)
	}

	tokensPair, newRefreshToken, err := s.jwtServiceInterface.GenerateAccessRefreshTokens(userUUID)
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	newRefreshToken.UserAgent = userAgent
	newRefreshToken.IpAddress = ipAddress
	if err := s.jwtRepoInterface.SaveRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, util.LogError("не удалось сохранить рефреш токен", err)
	}

	return tokensPair, nil
}

// Logout : помечает refresh-токен использованным
func (s *AuthenticationService) Logout(ctx context.Context, refreshTokenUUID string) error {
	if err := s.jwtRepoInterface.MarkRefreshTokenUsedByUUID(ctx, refreshTokenUUID); err != nil {
		return fmt.Errorf("не удалось использовать токен: %w", err)
	}
	return nil
}

// PurgeExpired : периодическая очистка таблицы refresh-токенов
func (s *AuthenticationService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.jwtRepoInterface.PurgeExpired(ctx, s.clock.Now())
}
