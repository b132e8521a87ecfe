package domain

// Cliente is a customer account tied to a persona.
type Cliente struct {
	ID        int64
	Direccion string
	PersonaID int64
}

// ClienteDetail is a cliente joined with its persona, as shown in listings.
type ClienteDetail struct {
	ID        int64
	Direccion string
	Nombre    string
	Cedula    string
	Telefono  string
}
