package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Email          string  `json:"email"           validate:"required,email"`
	Password       string  `json:"password"        validate:"required,min=8"`
	NombreCompleto string  `json:"nombre_completo" validate:"required,min=3"`
	Telefono       *string `json:"telefono"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	NombreCompleto string  `json:"nombre_completo"`
	Telefono       *string `json:"telefono"`
	AvatarURL      *string `json:"avatar_url"`
	Activo         bool    `json:"activo"`
}

// MembresiaResponse is one usuario↔tienda association, returned on login so
// the client can pick its current tienda.
type MembresiaResponse struct {
	TiendaID string `json:"tienda_id"`
	Nombre   string `json:"nombre"`
	Slug     string `json:"slug"`
	Rol      string `json:"rol"`
}

type LoginResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"`
	User         UsuarioResponse     `json:"user"`
	Tiendas      []MembresiaResponse `json:"tiendas"`
}
