package authenticating

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/price-monitor-api/internal/config"
	"github.com/vfg2006/price-monitor-api/internal/domain"
	"github.com/vfg2006/price-monitor-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Papéis de acesso do dashboard
const (
	RoleAdmin   = 1
	RoleManager = 2
)

const tokenLifetime = 24 * time.Hour

// Authenticator autentica o acesso ao dashboard. Os usuários vivem em
// memória, criados a partir da configuração na inicialização: não há
// persistência de usuários neste escopo.
type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
}

type Service struct {
	cfg *config.Config

	mu    sync.RWMutex
	users []*domain.User
}

// NewService cria o autenticador com o usuário administrador definido na
// configuração
func NewService(cfg *config.Config) (Authenticator, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.User{
		ID:           1,
		Name:         cfg.Auth.AdminName,
		Email:        handleEmail(cfg.Auth.AdminEmail),
		PasswordHash: string(hashedPassword),
		RoleID:       RoleAdmin,
		CreatedAt:    time.Now(),
	}

	return &Service{
		cfg:   cfg,
		users: []*domain.User{admin},
	}, nil
}

// LoginUser valida as credenciais e emite um token JWT
func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user := s.findByEmail(handleEmail(email))
	if user == nil {
		logrus.WithField("email", email).Warn("Tentativa de login com email desconhecido")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha inválidos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha inválidos")
	}

	claims := &domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar token JWT")
		return "", err
	}

	return signed, nil
}

// ValidateToken verifica a assinatura e a validade do token e retorna as claims
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}

// GetUserProfile retorna o perfil do usuário pelo ID presente no token
func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == userID {
			return user, nil
		}
	}

	return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrInvalidToken, "Usuário não encontrado")
}

func (s *Service) findByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user
		}
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
