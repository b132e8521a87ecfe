package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

type PersonaRepository struct {
	store
}

func NewPersonaRepository(db *gorm.DB, queryTimeout time.Duration) ports.PersonaRepository {
	return &PersonaRepository{store: newStore(db, queryTimeout)}
}

func (r *PersonaRepository) List(ctx context.Context) ([]domain.Persona, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var rows []personaModel
	if err := db.Order("ID_PERSONA").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	out := make([]domain.Persona, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *PersonaRepository) FindByID(ctx context.Context, id int64) (*domain.Persona, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var m personaModel
	if err := db.Where("ID_PERSONA = ?", id).Take(&m).Error; err != nil {
		return nil, mapError(err)
	}
	p := m.toDomain()
	return &p, nil
}

func (r *PersonaRepository) Create(ctx context.Context, p *domain.Persona) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	m := personaModel{Nombre: p.Nombre, Cedula: p.Cedula, Telefono: p.Telefono, Edad: p.Edad, Sexo: p.Sexo}
	if err := db.Create(&m).Error; err != nil {
		return mapError(err)
	}
	p.ID = m.ID
	return nil
}

func (r *PersonaRepository) Update(ctx context.Context, id int64, u domain.PersonaUpdate) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Model(&personaModel{}).Where("ID_PERSONA = ?", id).Updates(map[string]any{
		"NOMBRE_PERSONA":   u.Nombre,
		"TELEFONO_PERSONA": u.Telefono,
		"EDAD":             u.Edad,
	}))
}

func (r *PersonaRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	return checkAffected(db.Where("ID_PERSONA = ?", id).Delete(&personaModel{}))
}
