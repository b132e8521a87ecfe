package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const colPaqueteID = "ID_PAQUETE"

type PaqueteRepository struct {
	store
}

func NewPaqueteRepository(db *gorm.DB, queryTimeout time.Duration) ports.PaqueteRepository {
	return &PaqueteRepository{store: newStore(db, queryTimeout)}
}

func (r *PaqueteRepository) Create(ctx context.Context, p domain.Paquete) (*domain.ProcedureResult, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callProcedure(db, "crear_paquete", p.Peso, p.Dimensiones, p.Contenido, p.Estado, p.ClienteID, p.CentroID)
}

func (r *PaqueteRepository) UpdateEstado(ctx context.Context, id int64, estado int) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callOnExisting(db, &paqueteModel{}, colPaqueteID, "actualizar_estado_paquete", id, estado)
}

func (r *PaqueteRepository) Update(ctx context.Context, p domain.Paquete) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Model(&paqueteModel{}).Where(colPaqueteID+" = ?", p.ID).Updates(map[string]any{
		"PESO":                   p.Peso,
		"DIMENSIONES":            p.Dimensiones,
		"CONTENIDO":              p.Contenido,
		"ESTADO_PAQUETE":         p.Estado,
		"ID_CLIENTE":             p.ClienteID,
		"ID_CENTRO_DISTRIBUCION": p.CentroID,
	}))
}

func (r *PaqueteRepository) List(ctx context.Context, filter domain.PaqueteFilter) ([]domain.Paquete, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	q := db.Model(&paqueteModel{})
	if filter.Estado != nil {
		q = q.Where("ESTADO_PAQUETE = ?", *filter.Estado)
	}
	if filter.ClienteID != nil {
		q = q.Where("ID_CLIENTE = ?", *filter.ClienteID)
	}
	if filter.CentroID != nil {
		q = q.Where("ID_CENTRO_DISTRIBUCION = ?", *filter.CentroID)
	}

	var rows []paqueteModel
	if err := q.Order(colPaqueteID).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]domain.Paquete, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *PaqueteRepository) FindByID(ctx context.Context, id int64) (*domain.Paquete, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m paqueteModel
	if err := db.Where(colPaqueteID+" = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *PaqueteRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callOnExisting(db, &paqueteModel{}, colPaqueteID, "eliminar_paquete", id)
}
