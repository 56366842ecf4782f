package security

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"crm-web-server/config"
	"crm-web-server/internal/model"
	"crm-web-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

type Claims struct {
	UserUUID         string `json:"user_uuid"`
	RefreshTokenUUID string `json:"refresh_token_id"`
	IsAdmin          bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

// JWTService : выпуск и проверка access-токенов, TTL разбираются один раз
type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

const (
	tokenIssuer       = "crm-web-server"
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secretKey:  []byte(cfg.SecretKey),
		accessTTL:  parseTTL("access_token_ttl", cfg.AccessTokenTTL, defaultAccessTTL),
		refreshTTL: parseTTL("refresh_token_ttl", cfg.RefreshTokenTTL, defaultRefreshTTL),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func parseTTL(name, value string, def time.Duration) time.Duration {
	ttl, err := time.ParseDuration(value)
	if err != nil || ttl <= 0 {
		util.Logger.Warn("некорректный TTL токена, используется значение по умолчанию",
			zap.String("name", name), zap.String("value", value), zap.Duration("default", def))
		return def
	}
	return ttl
}

// GenerateAccessRefreshTokens : access-токен несёт uuid refresh-токена, с которым выдан
func (service *JWTService) GenerateAccessRefreshTokens(userUUID string) (*model.TokensPair, *model.RefreshToken, error) {
	refreshToken, refreshTokenStr, err := GenerateRefreshToken()
	if err != nil {
		return nil, nil, err
	}

	now := service.now()
	refreshToken.UserUUID = userUUID
	refreshToken.CreatedAt = now
	refreshToken.ExpireAt = now.Add(service.refreshTTL)

	claims := Claims{
		UserUUID:         userUUID,
		RefreshTokenUUID: refreshToken.UUID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			ExpiresAt: jwt.NewNumericDate(now.Add(service.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(service.secretKey)
	if err != nil {
		return nil, nil, util.LogError("ошибка подписи токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenStr,
	}, refreshToken, nil
}

// GenerateRefreshToken : клиент получает строку, в БД уходит только её bcrypt-хэш
func GenerateRefreshToken() (*model.RefreshToken, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", util.LogError("ошибка генерации refresh токена", err)
	}
	refreshTokenStr := base64.RawURLEncoding.EncodeToString(raw)

	hashedToken, err := bcrypt.GenerateFromPassword([]byte(refreshTokenStr), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", util.LogError("ошибка хэширования refresh токена", err)
	}

	return &model.RefreshToken{
		UUID:      uuid.New().String(),
		TokenHash: string(hashedToken),
	}, refreshTokenStr, nil
}

func (service *JWTService) ValidateJWT(jwtTokenStr string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(jwtTokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("невалидный токен: %w", err)
	}
	if !token.Valid || claims.UserUUID == "" {
		return nil, fmt.Errorf("невалидный токен")
	}

	return claims, nil
}

// RefreshTokenFinder : поиск refresh-токена, которым подписан access-токен
type RefreshTokenFinder interface {
	FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error)
}

// JWTMiddleware : пропускает запрос с валидным access-токеном или токеном администратора
func JWTMiddleware(secretKey []byte, tokens RefreshTokenFinder, jwtService *JWTService, adminToken string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				util.HandleError(writer, "пользователь не авторизован", http.StatusUnauthorized)
				return
			}

			if isAdminToken(token, adminToken) {
				adminClaims := &Claims{UserUUID: "admin", IsAdmin: true}
				next.ServeHTTP(writer, request.WithContext(WithClaims(request.Context(), adminClaims)))
				return
			}

			claims, err := jwtService.ValidateJWT(token, secretKey)
			if err != nil {
				util.Logger.Info("невалидный токен", zap.Error(err))
				util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
				return
			}

			// сессия жива, пока не погашен refresh-токен, с которым выдан access
			refreshToken, err := tokens.FindByUUID(request.Context(), claims.RefreshTokenUUID)
			if err != nil {
				util.Logger.Info("рефреш токен не найден", zap.String("refresh_token_uuid", claims.RefreshTokenUUID), zap.Error(err))
				util.HandleError(writer, "пользователь не авторизован", http.StatusUnauthorized)
				return
			}
			if refreshToken.Used || refreshToken.UserUUID != claims.UserUUID {
				util.Logger.Info("сессия отозвана", zap.String("refresh_token_uuid", claims.RefreshTokenUUID))
				util.HandleError(writer, "пользователь не авторизован", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithClaims(request.Context(), claims)))
		})
	}
}

func bearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func isAdminToken(token, adminToken string) bool {
	return adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, model.ErrUnauthorized
	}
	return claims, nil
}

// AuthContextFromRequest : кто выполняет запрос, для явной передачи в сервисы
func AuthContextFromRequest(ctx context.Context) (model.AuthContext, error) {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return model.AuthContext{}, err
	}
	return model.AuthContext{UserUUID: claims.UserUUID, IsAdmin: claims.IsAdmin}, nil
}

// WithClaims : кладёт claims в контекст, используется в тестах обработчиков
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}
