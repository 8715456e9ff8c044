package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-hris-etl/internal/auth/errors"
	"go-hris-etl/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (TenantResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	repo   Repository
	cfg    config.AuthConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, cfg config.AuthConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (TenantResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return TenantResponse{}, err
	}

	tenant := &Tenant{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return TenantResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("tenant registered", zap.String("tenant_id", tenant.ID.String()))
	return TenantResponse{ID: tenant.ID.String(), Name: tenant.Name}, nil
}

// Login issues an HS256 token whose tenant_id claim scopes every later call.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	tenant, err := s.repo.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("load tenant failed", zap.Error(err))
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	token, err := s.generateToken(tenant, expiresAt)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed.WithCause(err)
	}

	return LoginResponse{Token: token, Expiration: expiresAt.UTC()}, nil
}

func (s *service) generateToken(tenant *Tenant, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"tenant_id": tenant.ID.String(),
		"name":      tenant.Name,
		"jti":       uuid.New().String(),
		"iss":       s.cfg.Issuer,
		"aud":       s.cfg.Audience,
		"iat":       s.now().Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
