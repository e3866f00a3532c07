package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/apierror"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey   = "claims"
	TiendaIDKey = "tienda_id"
	RolKey      = "rol"

	membresiaCacheTTL = 5 * time.Minute
)

// JWTClaims are the custom claims embedded in every token issued at login.
type JWTClaims struct {
	UsuarioID string `json:"uid"`
	Email     string `json:"email"`
	Tipo      string `json:"tipo"` // access | refresh
	jwt.RegisteredClaims
}

// RolCache caches rol lookups so every request does not hit the membership
// table. Implemented by infra's Redis cache; nil disables caching.
type RolCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// JWTAuth validates the Bearer token on every protected route. Refresh
// tokens are rejected here: only access tokens authorize API calls.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.Tipo != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// TiendaAccess resolves the :tiendaId path param, checks that the user holds
// an active membership there, and stores the tienda id and rol in the
// context for downstream handlers.
func TiendaAccess(usuarioRepo repository.UsuarioRepository, cache RolCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		tiendaID, err := uuid.Parse(c.Param("tiendaId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("tiendaId inválido"))
			return
		}
		usuarioID, err := uuid.Parse(claims.UsuarioID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido"))
			return
		}

		cacheKey := "membresia:" + claims.UsuarioID + ":" + tiendaID.String()
		if cache != nil {
			if rol, ok := cache.Get(c.Request.Context(), cacheKey); ok {
				c.Set(TiendaIDKey, tiendaID)
				c.Set(RolKey, rol)
				c.Next()
				return
			}
		}

		membresia, err := usuarioRepo.FindMembresia(c.Request.Context(), usuarioID, tiendaID)
		if err != nil || !membresia.Activo {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Sin acceso a esta tienda"))
			return
		}

		if cache != nil {
			cache.Set(c.Request.Context(), cacheKey, membresia.Rol, membresiaCacheTTL)
		}
		c.Set(TiendaIDKey, tiendaID)
		c.Set(RolKey, membresia.Rol)
		c.Next()
	}
}

// RequireRolElevado rejects requests whose tienda rol may not perform
// destructive or price-changing operations.
func RequireRolElevado() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !model.RolElevado(c.GetString(RolKey)) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// GetTiendaID returns the tienda resolved by TiendaAccess.
func GetTiendaID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(TiendaIDKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

// GetUsuarioID parses the authenticated user's id from the claims.
func GetUsuarioID(c *gin.Context) uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	id, _ := uuid.Parse(claims.UsuarioID)
	return id
}
