package handler

// dateLayout is the calendar date format accepted and returned for
// facturas and rutas.
const dateLayout = "2006-01-02"

// errorResponse is the envelope for request and store failures.
type errorResponse struct {
	Error string `json:"error"`
}

// procedureResponse acknowledges a stored-procedure call and relays the lines
// the procedure printed.
type procedureResponse struct {
	Mensaje string   `json:"mensaje"`
	Salida  []string `json:"salida"`
}

// --- Personas ---

type createPersonaRequest struct {
	Nombre   string `json:"nombre_persona"   validate:"required"`
	Cedula   string `json:"cedula_persona"   validate:"required"`
	Telefono string `json:"telefono_persona"`
	Edad     int    `json:"edad"             validate:"gte=0"`
	Sexo     string `json:"sexo"`
}

type personaCreatedResponse struct {
	Mensaje   string `json:"mensaje"`
	IDPersona int64  `json:"id_persona"`
}

type updatePersonaRequest struct {
	Nombre   string `json:"nombre_persona"   validate:"required"`
	Telefono string `json:"telefono_persona"`
	Edad     int    `json:"edad"             validate:"gte=0"`
}

type personaResponse struct {
	ID       int64  `json:"id_persona"`
	Nombre   string `json:"nombre_persona"`
	Cedula   string `json:"cedula_persona"`
	Telefono string `json:"telefono_persona"`
	Edad     int    `json:"edad"`
	Sexo     string `json:"sexo"`
}

// --- Clientes ---

type createClienteRequest struct {
	Direccion string `json:"direccion_cliente" validate:"required"`
	PersonaID int64  `json:"id_persona"        validate:"required,gt=0"`
}

type clienteCreatedResponse struct {
	Mensaje   string `json:"mensaje"`
	IDCliente int64  `json:"id_cliente"`
}

type updateDireccionRequest struct {
	Direccion string `json:"direccion" validate:"required"`
}

type clienteResponse struct {
	ID        int64  `json:"id_cliente"`
	Direccion string `json:"direccion_cliente"`
	PersonaID int64  `json:"id_persona"`
}

type clienteDetailResponse struct {
	ID        int64  `json:"id_cliente"`
	Direccion string `json:"direccion_cliente"`
	Nombre    string `json:"nombre_persona"`
	Cedula    string `json:"cedula_persona"`
	Telefono  string `json:"telefono_persona"`
}

// --- Paquetes ---

type paqueteRequest struct {
	Peso        float64 `json:"peso"        validate:"required,gt=0"`
	Dimensiones string  `json:"dimensiones" validate:"required"`
	Contenido   string  `json:"contenido"   validate:"required"`
	Estado      int     `json:"estado"      validate:"gte=0"`
	ClienteID   int64   `json:"id_cliente"  validate:"required,gt=0"`
	CentroID    int64   `json:"id_centro"   validate:"required,gt=0"`
}

type updateEstadoRequest struct {
	NuevoEstado *int `json:"nuevo_estado" validate:"required"`
}

type paqueteResponse struct {
	ID          int64   `json:"id_paquete"`
	Peso        float64 `json:"peso"`
	Dimensiones string  `json:"dimensiones"`
	Contenido   string  `json:"contenido"`
	Estado      int     `json:"estado"`
	ClienteID   int64   `json:"id_cliente"`
	CentroID    int64   `json:"id_centro"`
}

type paqueteListResponse struct {
	Count    int               `json:"count"`
	Paquetes []paqueteResponse `json:"paquetes"`
}

// --- Facturas ---

type createFacturaRequest struct {
	Detalle    string  `json:"detalle"     validate:"required"`
	EstadoPago string  `json:"estadopago"  validate:"required"`
	MontoTotal float64 `json:"monto_total" validate:"gte=0"`
	Fecha      string  `json:"fecha"       validate:"required,datetime=2006-01-02"`
	MetodoPago string  `json:"metodo_pago" validate:"required"`
	IVA        float64 `json:"iva"         validate:"gte=0"`
	Descuento  float64 `json:"descuento"   validate:"gte=0"`
	PaqueteID  int64   `json:"id_paquete"  validate:"required,gt=0"`
}

type facturaResponse struct {
	ID         int64   `json:"id_factura"`
	Detalle    string  `json:"detalle"`
	EstadoPago string  `json:"estado_pago"`
	MontoTotal float64 `json:"monto_total"`
	Fecha      string  `json:"fecha_emision"`
	MetodoPago string  `json:"metodo_pago"`
	IVA        float64 `json:"iva"`
	Descuento  float64 `json:"descuento"`
	PaqueteID  int64   `json:"id_paquete"`
}

// --- Rutas ---

type createRutaRequest struct {
	Origen       string `json:"origen"        validate:"required"`
	Destino      string `json:"destino"       validate:"required"`
	FechaSalida  string `json:"fecha_salida"  validate:"required,datetime=2006-01-02"`
	FechaLlegada string `json:"fecha_llegada" validate:"required,datetime=2006-01-02"`
	Estado       string `json:"estado"        validate:"required"`
}

type rutaResponse struct {
	ID           int64  `json:"id_ruta"`
	Origen       string `json:"origen"`
	Destino      string `json:"destino"`
	FechaSalida  string `json:"fecha_salida"`
	FechaLlegada string `json:"fecha_llegada"`
	Estado       string `json:"estado"`
}

// --- Centros ---

type createCentroRequest struct {
	Ubicacion string `json:"ubicacion" validate:"required"`
	Capacidad int    `json:"capacidad" validate:"gt=0"`
}

type updateCentroRequest struct {
	Ubicacion string `json:"ubicacion"`
	Capacidad int    `json:"capacidad" validate:"gt=0"`
}

type centroResponse struct {
	ID        int64  `json:"id_centro"`
	Ubicacion string `json:"ubicacion"`
	Capacidad int    `json:"capacidad"`
}

type centroCreatedResponse struct {
	Mensaje  string `json:"mensaje"`
	IDCentro int64  `json:"id_centro"`
}

type centroUpdatedResponse struct {
	Mensaje string `json:"mensaje"`
	Detalle string `json:"detalle"`
}
