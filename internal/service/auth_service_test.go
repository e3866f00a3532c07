package service

import (
	"context"
	"testing"

	"github.com/ingsebastiansierra/tiendaya/internal/config"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
		JWTRefreshHours:    720,
	}
	return NewAuthService(repo, cfg), repo
}

func TestRegistroYLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture()

	resp, err := svc.Registro(ctx, dto.RegistroRequest{
		Email:          "ana@example.com",
		Password:       "clave-segura",
		NombreCompleto: "Ana Gómez",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Empty(t, resp.Tiendas, "recién registrada, sin tiendas todavía")

	// la contraseña nunca se guarda en claro
	guardado, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-segura", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave-segura")))

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", login.User.Email)

	_, err = svc.Registro(ctx, dto.RegistroRequest{
		Email:          "ana@example.com",
		Password:       "otra-clave-123",
		NombreCompleto: "Ana Duplicada",
	})
	assert.Error(t, err, "el email es único")
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture()

	_, err := svc.Registro(ctx, dto.RegistroRequest{
		Email:          "luis@example.com",
		Password:       "clave-segura",
		NombreCompleto: "Luis Rojas",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "luis@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "clave-segura"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	// cuenta desactivada: credenciales correctas pero sin acceso
	u, err := repo.FindByEmail(ctx, "luis@example.com")
	require.NoError(t, err)
	u.Activo = false
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "luis@example.com", Password: "clave-segura"})
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	resp, err := svc.Registro(ctx, dto.RegistroRequest{
		Email:          "sara@example.com",
		Password:       "clave-segura",
		NombreCompleto: "Sara Medina",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "sara@example.com", renovado.User.Email)

	// un access token no sirve para renovar
	_, err = svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: resp.AccessToken})
	assert.Error(t, err)
}

func TestParseToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture()

	resp, err := svc.Registro(ctx, dto.RegistroRequest{
		Email:          "carlos@example.com",
		Password:       "clave-segura",
		NombreCompleto: "Carlos Niño",
	})
	require.NoError(t, err)

	claims, err := svc.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "carlos@example.com", claims.Email)
	assert.Equal(t, "access", claims.Tipo)
	assert.Equal(t, resp.User.ID, claims.UsuarioID)

	claims, err = svc.ParseToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Tipo)

	// un token firmado con otro secreto se rechaza
	otroRepo := newStubUsuarioRepo()
	otroSvc := NewAuthService(otroRepo, &config.Config{
		JWTSecret:          "otro-secreto",
		JWTExpirationHours: 8,
		JWTRefreshHours:    720,
	})
	ajeno, err := otroSvc.Registro(ctx, dto.RegistroRequest{
		Email:          "intruso@example.com",
		Password:       "clave-segura",
		NombreCompleto: "Intruso",
	})
	require.NoError(t, err)
	_, err = svc.ParseToken(ajeno.AccessToken)
	assert.Error(t, err)
}
