package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
)

// AuthRepository implements ports.CredentialRepository over USUARIO and
// PERSONA.
type AuthRepository struct {
	store
}

func NewAuthRepository(db *gorm.DB, queryTimeout time.Duration) ports.CredentialRepository {
	return &AuthRepository{store: newStore(db, queryTimeout)}
}

type credentialRow struct {
	UserID       int64  `gorm:"column:ID_USUARIO"`
	PasswordHash string `gorm:"column:PASSWORD_HASH"`
	Rol          string `gorm:"column:ROL"`
	Nombre       string `gorm:"column:NOMBRE_PERSONA"`
	PersonaID    int64  `gorm:"column:ID_PERSONA"`
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var row credentialRow
	err := db.Table("USUARIO u").
		Select("u.ID_USUARIO, u.PASSWORD_HASH, u.ROL, p.NOMBRE_PERSONA, p.ID_PERSONA").
		Joins("JOIN PERSONA p ON u.ID_PERSONA = p.ID_PERSONA").
		Where("u.NOMBRE_USUARIO = ?", username).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find usuario: %w", mapError(err))
	}

	role, ok := domain.ParseRole(row.Rol)
	if !ok {
		return nil, fmt.Errorf("%w: usuario %d has unknown role %q", domain.ErrInternal, row.UserID, row.Rol)
	}

	return &domain.Credential{
		UserID:       row.UserID,
		Username:     username,
		PasswordHash: row.PasswordHash,
		Role:         role,
		PersonaID:    row.PersonaID,
		Nombre:       row.Nombre,
	}, nil
}

// Register inserts PERSONA, CLIENTE and USUARIO in one transaction. Any
// failure rolls back all three.
func (r *AuthRepository) Register(ctx context.Context, reg domain.Registration, passwordHash string) (*domain.RegistrationResult, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var res domain.RegistrationResult
	err := db.Transaction(func(tx *gorm.DB) error {
		persona := personaModel{
			Nombre:   reg.Nombre,
			Cedula:   reg.Cedula,
			Telefono: reg.Telefono,
			Edad:     reg.Edad,
			Sexo:     reg.Sexo,
		}
		if err := tx.Create(&persona).Error; err != nil {
			return err
		}

		cliente := clienteModel{Direccion: reg.Direccion, PersonaID: persona.ID}
		if err := tx.Create(&cliente).Error; err != nil {
			return err
		}

		usuario := usuarioModel{
			Username:     reg.Username,
			PasswordHash: passwordHash,
			Rol:          string(domain.RoleCliente),
			PersonaID:    persona.ID,
		}
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}

		res = domain.RegistrationResult{PersonaID: persona.ID, ClienteID: cliente.ID}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", mapError(err))
	}
	return &res, nil
}
