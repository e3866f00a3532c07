package dto

type AlertaResponse struct {
	ID         string  `json:"id"`
	Tipo       string  `json:"tipo"`
	Titulo     string  `json:"titulo"`
	Mensaje    string  `json:"mensaje"`
	ProductoID *string `json:"producto_id"`
	Prioridad  string  `json:"prioridad"`
	Leida      bool    `json:"leida"`
	CreatedAt  string  `json:"created_at"`
}

type MetodoPagoResponse struct {
	ID                 string  `json:"id"`
	Nombre             string  `json:"nombre"`
	Codigo             string  `json:"codigo"`
	Icono              *string `json:"icono"`
	Color              *string `json:"color"`
	RequiereReferencia bool    `json:"requiere_referencia"`
	EsCredito          bool    `json:"es_credito"`
	Orden              int     `json:"orden"`
}
