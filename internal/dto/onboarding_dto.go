package dto

// CategoriaOnboarding is one category chosen during onboarding.
type CategoriaOnboarding struct {
	Nombre string  `json:"nombre" validate:"required,min=2"`
	Icono  *string `json:"icono"`
}

// CompletarOnboardingRequest creates the tienda, its categorias and the
// requesting user's admin_general membership in one transaction.
type CompletarOnboardingRequest struct {
	Nombre     string                `json:"nombre"     validate:"required,min=3"`
	Direccion  *string               `json:"direccion"`
	Telefono   *string               `json:"telefono"`
	Email      *string               `json:"email"      validate:"omitempty,email"`
	Categorias []CategoriaOnboarding `json:"categorias" validate:"required,min=1,dive"`
}

type TiendaResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Slug      string  `json:"slug"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	LogoURL   *string `json:"logo_url"`
	Activa    bool    `json:"activa"`
}

type OnboardingResponse struct {
	Tienda     TiendaResponse      `json:"tienda"`
	Rol        string              `json:"rol"`
	Categorias []CategoriaResponse `json:"categorias"`
}
