package domain

// Cliente is a customer of the studio.
type Cliente struct {
	ClienteID string `json:"clienteID"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Notas     string `json:"notas,omitempty"`
	AuditFields
}
