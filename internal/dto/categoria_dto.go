package dto

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
	Icono       *string `json:"icono"`
	Orden       int     `json:"orden"  validate:"min=0"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2"`
	Descripcion *string `json:"descripcion"`
	Icono       *string `json:"icono"`
	Orden       *int    `json:"orden"`
	Activa      *bool   `json:"activa"`
}

type CategoriaResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Icono       *string `json:"icono"`
	Orden       int     `json:"orden"`
	Activa      bool    `json:"activa"`
}
