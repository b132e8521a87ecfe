package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

type ClienteRepository struct {
	store
}

func NewClienteRepository(db *gorm.DB, queryTimeout time.Duration) ports.ClienteRepository {
	return &ClienteRepository{store: newStore(db, queryTimeout)}
}

type clienteDetailRow struct {
	ID        int64  `gorm:"column:ID_CLIENTE"`
	Direccion string `gorm:"column:DIRECCION_CLIENTE"`
	Nombre    string `gorm:"column:NOMBRE_PERSONA"`
	Cedula    string `gorm:"column:CEDULA_PERSONA"`
	Telefono  string `gorm:"column:TELEFONO_PERSONA"`
}

func (r *ClienteRepository) List(ctx context.Context) ([]domain.ClienteDetail, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var rows []clienteDetailRow
	err := db.Table("CLIENTE c").
		Select("c.ID_CLIENTE, c.DIRECCION_CLIENTE, p.NOMBRE_PERSONA, p.CEDULA_PERSONA, p.TELEFONO_PERSONA").
		Joins("JOIN PERSONA p ON c.ID_PERSONA = p.ID_PERSONA").
		Order("c.ID_CLIENTE").
		Scan(&rows).Error
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]domain.ClienteDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ClienteDetail(row))
	}
	return out, nil
}

func (r *ClienteRepository) FindByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m clienteModel
	if err := db.Where("ID_CLIENTE = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return &domain.Cliente{ID: m.ID, Direccion: m.Direccion, PersonaID: m.PersonaID}, nil
}

func (r *ClienteRepository) Create(ctx context.Context, c *domain.Cliente) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	m := clienteModel{Direccion: c.Direccion, PersonaID: c.PersonaID}
	if err := db.Create(&m).Error; err != nil {
		return mapError(err)
	}
	c.ID = m.ID
	return nil
}

func (r *ClienteRepository) UpdateDireccion(ctx context.Context, id int64, direccion string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Model(&clienteModel{}).Where("ID_CLIENTE = ?", id).
		Update("DIRECCION_CLIENTE", direccion))
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Where("ID_CLIENTE = ?", id).Delete(&clienteModel{}))
}
