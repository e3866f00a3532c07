package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/config"
	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrCredencialesInvalidas = errors.New("credenciales inválidas")

// Claims is the JWT payload. Tipo distinguishes access from refresh tokens
// so a refresh token can never authorize an API call.
type Claims struct {
	UsuarioID string `json:"uid"`
	Email     string `json:"email"`
	Tipo      string `json:"tipo"` // access | refresh
	jwt.RegisteredClaims
}

type AuthService interface {
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
	ParseToken(tokenStr string) (*Claims, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.LoginResponse, error) {
	if existente, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existente != nil {
		return nil, errors.New("el email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := model.Usuario{
		Email:          req.Email,
		NombreCompleto: req.NombreCompleto,
		Telefono:       req.Telefono,
		PasswordHash:   string(hash),
		Activo:         true,
	}
	if err := s.repo.Create(ctx, &usuario); err != nil {
		return nil, err
	}
	return s.buildLoginResponse(ctx, &usuario)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if !usuario.Activo {
		return nil, errors.New("la cuenta está desactivada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	return s.buildLoginResponse(ctx, usuario)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errors.New("refresh token inválido")
	}
	if claims.Tipo != "refresh" {
		return nil, errors.New("el token no es un refresh token")
	}

	uid, err := uuid.Parse(claims.UsuarioID)
	if err != nil {
		return nil, errors.New("refresh token inválido")
	}
	usuario, err := s.repo.FindByID(ctx, uid)
	if err != nil || !usuario.Activo {
		return nil, errors.New("usuario no encontrado o desactivado")
	}
	return s.buildLoginResponse(ctx, usuario)
}

func (s *authService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}

func (s *authService) buildLoginResponse(ctx context.Context, usuario *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.signToken(usuario, "access", time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(usuario, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	membresias, err := s.repo.ListMembresias(ctx, usuario.ID)
	if err != nil {
		return nil, err
	}
	tiendas := make([]dto.MembresiaResponse, 0, len(membresias))
	for _, m := range membresias {
		nombre, slug := "", ""
		if m.Tienda != nil {
			nombre, slug = m.Tienda.Nombre, m.Tienda.Slug
		}
		tiendas = append(tiendas, dto.MembresiaResponse{
			TiendaID: m.TiendaID.String(),
			Nombre:   nombre,
			Slug:     slug,
			Rol:      m.Rol,
		})
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *usuarioToResponse(usuario),
		Tiendas:      tiendas,
	}, nil
}

func (s *authService) signToken(usuario *model.Usuario, tipo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UsuarioID: usuario.ID.String(),
		Email:     usuario.Email,
		Tipo:      tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		NombreCompleto: u.NombreCompleto,
		Telefono:       u.Telefono,
		AvatarURL:      u.AvatarURL,
		Activo:         u.Activo,
	}
}
