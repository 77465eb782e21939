package dto

// CreateClienteRequest defines the body for registering a cliente.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" binding:"required,max=255"`
	Telefono  string `json:"telefono" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
	Instagram string `json:"instagram" binding:"max=100"`
	Notas     string `json:"notas"`
}

// UpdateClienteRequest defines the data allowed for updating a cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre" binding:"omitempty,min=1,max=255"`
	Telefono  *string `json:"telefono" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Instagram *string `json:"instagram" binding:"omitempty,max=100"`
	Notas     *string `json:"notas"`
}

// ListClientesParams defines query parameters for listing clientes.
type ListClientesParams struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}
