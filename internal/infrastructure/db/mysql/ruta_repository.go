package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

const colRutaID = "ID_RUTA"

type RutaRepository struct {
	store
}

func NewRutaRepository(db *gorm.DB, queryTimeout time.Duration) ports.RutaRepository {
	return &RutaRepository{store: newStore(db, queryTimeout)}
}

func (r *RutaRepository) Create(ctx context.Context, ruta domain.Ruta) (*domain.ProcedureResult, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callProcedure(db, "crear_ruta", ruta.Origen, ruta.Destino, ruta.FechaSalida, ruta.FechaLlegada, ruta.Estado)
}

func (r *RutaRepository) Complete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callOnExisting(db, &rutaModel{}, colRutaID, "marcar_ruta_completada", id)
}

func (r *RutaRepository) List(ctx context.Context) ([]domain.Ruta, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var rows []rutaModel
	if err := db.Order(colRutaID).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]domain.Ruta, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *RutaRepository) FindByID(ctx context.Context, id int64) (*domain.Ruta, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m rutaModel
	if err := db.Where(colRutaID+" = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	ruta := m.toDomain()
	return &ruta, nil
}

func (r *RutaRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return callOnExisting(db, &rutaModel{}, colRutaID, "eliminar_ruta", id)
}
