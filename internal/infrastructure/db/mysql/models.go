package mysql

import (
	"time"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

type personaModel struct {
	ID       int64  `gorm:"column:ID_PERSONA;primaryKey;autoIncrement"`
	Nombre   string `gorm:"column:NOMBRE_PERSONA"`
	Cedula   string `gorm:"column:CEDULA_PERSONA"`
	Telefono string `gorm:"column:TELEFONO_PERSONA"`
	Edad     int    `gorm:"column:EDAD"`
	Sexo     string `gorm:"column:SEXO"`
}

func (personaModel) TableName() string { return "PERSONA" }

func (m personaModel) toDomain() domain.Persona {
	return domain.Persona{ID: m.ID, Nombre: m.Nombre, Cedula: m.Cedula, Telefono: m.Telefono, Edad: m.Edad, Sexo: m.Sexo}
}

type clienteModel struct {
	ID        int64  `gorm:"column:ID_CLIENTE;primaryKey;autoIncrement"`
	Direccion string `gorm:"column:DIRECCION_CLIENTE"`
	PersonaID int64  `gorm:"column:ID_PERSONA"`
}

func (clienteModel) TableName() string { return "CLIENTE" }

type usuarioModel struct {
	ID           int64  `gorm:"column:ID_USUARIO;primaryKey;autoIncrement"`
	Username     string `gorm:"column:NOMBRE_USUARIO"`
	PasswordHash string `gorm:"column:PASSWORD_HASH"`
	Rol          string `gorm:"column:ROL"`
	PersonaID    int64  `gorm:"column:ID_PERSONA"`
}

func (usuarioModel) TableName() string { return "USUARIO" }

type paqueteModel struct {
	ID          int64   `gorm:"column:ID_PAQUETE;primaryKey"`
	Peso        float64 `gorm:"column:PESO"`
	Dimensiones string  `gorm:"column:DIMENSIONES"`
	Contenido   string  `gorm:"column:CONTENIDO"`
	Estado      int     `gorm:"column:ESTADO_PAQUETE"`
	ClienteID   int64   `gorm:"column:ID_CLIENTE"`
	CentroID    int64   `gorm:"column:ID_CENTRO_DISTRIBUCION"`
}

func (paqueteModel) TableName() string { return "PAQUETE" }

func (m paqueteModel) toDomain() domain.Paquete {
	return domain.Paquete{
		ID:          m.ID,
		Peso:        m.Peso,
		Dimensiones: m.Dimensiones,
		Contenido:   m.Contenido,
		Estado:      m.Estado,
		ClienteID:   m.ClienteID,
		CentroID:    m.CentroID,
	}
}

type facturaModel struct {
	ID         int64     `gorm:"column:ID_FACTURA;primaryKey"`
	Detalle    string    `gorm:"column:DETALLE"`
	EstadoPago string    `gorm:"column:ESTADO_PAGO"`
	MontoTotal float64   `gorm:"column:MONTO_TOTAL"`
	Fecha      time.Time `gorm:"column:FECHA_EMISION"`
	MetodoPago string    `gorm:"column:METODO_PAGO"`
	IVA        float64   `gorm:"column:IVA"`
	Descuento  float64   `gorm:"column:DESCUENTO"`
	PaqueteID  int64     `gorm:"column:ID_PAQUETE"`
}

func (facturaModel) TableName() string { return "FACTURA" }

func (m facturaModel) toDomain() domain.Factura {
	return domain.Factura{
		ID:         m.ID,
		Detalle:    m.Detalle,
		EstadoPago: m.EstadoPago,
		MontoTotal: m.MontoTotal,
		Fecha:      m.Fecha,
		MetodoPago: m.MetodoPago,
		IVA:        m.IVA,
		Descuento:  m.Descuento,
		PaqueteID:  m.PaqueteID,
	}
}

type rutaModel struct {
	ID           int64     `gorm:"column:ID_RUTA;primaryKey"`
	Origen       string    `gorm:"column:ORIGEN"`
	Destino      string    `gorm:"column:DESTINO"`
	FechaSalida  time.Time `gorm:"column:FECHA_SALIDA"`
	FechaLlegada time.Time `gorm:"column:FECHA_LLEGADA"`
	Estado       string    `gorm:"column:ESTADO_RUTA"`
}

func (rutaModel) TableName() string { return "RUTA" }

func (m rutaModel) toDomain() domain.Ruta {
	return domain.Ruta{
		ID:           m.ID,
		Origen:       m.Origen,
		Destino:      m.Destino,
		FechaSalida:  m.FechaSalida,
		FechaLlegada: m.FechaLlegada,
		Estado:       m.Estado,
	}
}

type centroModel struct {
	ID        int64  `gorm:"column:ID_CENTRO_DISTRIBUCION;primaryKey"`
	Ubicacion string `gorm:"column:UBICACION_CEN_DIST"`
	Capacidad int    `gorm:"column:CAPACIDAD_ALMACENAMIENTO"`
}

func (centroModel) TableName() string { return "CENTRO_DISTRIBUCION" }

func (m centroModel) toDomain() domain.Centro {
	return domain.Centro{ID: m.ID, Ubicacion: m.Ubicacion, Capacidad: m.Capacidad}
}
