package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-monitor-api/internal/config"
)

func newTestAuthenticator(t *testing.T) Authenticator {
	t.Helper()

	service, err := NewService(&config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			AdminName:     "Administrador",
			AdminEmail:    "Admin@PriceMonitor.local",
			AdminPassword: "senha-forte-123",
		},
	})
	require.NoError(t, err)

	return service
}

func TestService_LoginUser(t *testing.T) {
	t.Run("Login com credenciais válidas emite um token", func(t *testing.T) {
		service := newTestAuthenticator(t)

		token, err := service.LoginUser("admin@pricemonitor.local", "senha-forte-123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Email é normalizado antes da busca", func(t *testing.T) {
		service := newTestAuthenticator(t)

		token, err := service.LoginUser("  ADMIN@pricemonitor.local ", "senha-forte-123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Senha incorreta reporta credenciais inválidas", func(t *testing.T) {
		service := newTestAuthenticator(t)

		_, err := service.LoginUser("admin@pricemonitor.local", "senha-errada")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Email desconhecido reporta credenciais inválidas", func(t *testing.T) {
		service := newTestAuthenticator(t)

		_, err := service.LoginUser("outro@pricemonitor.local", "senha-forte-123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Campos vazios reportam dados obrigatórios ausentes", func(t *testing.T) {
		service := newTestAuthenticator(t)

		_, err := service.LoginUser("", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token emitido pelo próprio serviço é válido", func(t *testing.T) {
		service := newTestAuthenticator(t)

		token, err := service.LoginUser("admin@pricemonitor.local", "senha-forte-123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)

		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "Administrador", claims.UserName)
		assert.Equal(t, "admin@pricemonitor.local", claims.UserEmail)
		assert.Equal(t, RoleAdmin, claims.UserRoleID)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		service := newTestAuthenticator(t)

		_, err := service.ValidateToken("token-invalido")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		service := newTestAuthenticator(t)

		other, err := NewService(&config.Config{
			Auth: config.Auth{
				Secret:        "outro-segredo",
				AdminName:     "Administrador",
				AdminEmail:    "admin@pricemonitor.local",
				AdminPassword: "senha-forte-123",
			},
		})
		require.NoError(t, err)

		token, err := other.LoginUser("admin@pricemonitor.local", "senha-forte-123")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("Retorna o perfil do usuário administrador", func(t *testing.T) {
		service := newTestAuthenticator(t)

		user, err := service.GetUserProfile(1)
		require.NoError(t, err)

		assert.Equal(t, "Administrador", user.Name)
		assert.Equal(t, "admin@pricemonitor.local", user.Email)
		assert.Equal(t, RoleAdmin, user.RoleID)
	})

	t.Run("Usuário desconhecido reporta not-found", func(t *testing.T) {
		service := newTestAuthenticator(t)

		_, err := service.GetUserProfile(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
