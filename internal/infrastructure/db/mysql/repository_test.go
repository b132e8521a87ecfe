package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/paqueteria/logistics-api/internal/core/domain"
)

// newMockDB opens GORM over sqlmock with the same settings Connect uses.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func anaRegistration() domain.Registration {
	return domain.Registration{
		Nombre:    "Ana Pérez",
		Cedula:    "0912345678",
		Telefono:  "0999999999",
		Edad:      30,
		Sexo:      "F",
		Direccion: "Av. Central 123",
		Username:  "ana",
		Password:  "pw123",
	}
}

func TestAuthRepository_Register_CommitsAllThreeInserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `PERSONA`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `CLIENTE`").WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO `USUARIO`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	res, err := repo.Register(context.Background(), anaRegistration(), "$2a$hash")
	require.NoError(t, err)
	assert.Equal(t, &domain.RegistrationResult{PersonaID: 7, ClienteID: 9}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_Register_DuplicateUsuarioRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `PERSONA`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `CLIENTE`").WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("INSERT INTO `USUARIO`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'ana' for key 'NOMBRE_USUARIO'"})
	mock.ExpectRollback()

	res, err := repo.Register(context.Background(), anaRegistration(), "$2a$hash")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrConflictDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet(), "persona and cliente inserts must be rolled back")
}

func TestAuthRepository_FindByUsername_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db, time.Second)

	mock.ExpectQuery("SELECT u.ID_USUARIO").
		WithArgs("nadie").
		WillReturnRows(sqlmock.NewRows([]string{"ID_USUARIO", "PASSWORD_HASH", "ROL", "NOMBRE_PERSONA", "ID_PERSONA"}))

	_, err := repo.FindByUsername(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallProcedure_CollectsEveryResultSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaqueteRepository(db, time.Second)

	first := sqlmock.NewRows([]string{"salida"}).
		AddRow("Paquete registrado con ID 15").
		AddRow(nil).
		AddRow("")
	second := sqlmock.NewRows([]string{"salida"}).
		AddRow("Capacidad restante del centro: 4")

	mock.ExpectQuery(regexp.QuoteMeta("CALL crear_paquete(?, ?, ?, ?, ?, ?)")).
		WithArgs(2.5, "30x20x10", "Libros", 0, int64(3), int64(1)).
		WillReturnRows(first, second)

	res, err := repo.Create(context.Background(), domain.Paquete{
		Peso:        2.5,
		Dimensiones: "30x20x10",
		Contenido:   "Libros",
		Estado:      0,
		ClienteID:   3,
		CentroID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paquete registrado con ID 15", "Capacidad restante del centro: 4"}, res.Lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallProcedure_SignalIsInvalidInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaqueteRepository(db, time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("CALL crear_paquete(")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1644, Message: "El centro no tiene capacidad disponible"})

	_, err := repo.Create(context.Background(), domain.Paquete{Peso: 1, ClienteID: 3, CentroID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	msg, _ := domain.MessageOf(err)
	assert.Equal(t, "El centro no tiene capacidad disponible", msg)
}

func TestCallOnExisting_MissingRowSkipsProcedure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaqueteRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `PAQUETE` WHERE ID_PAQUETE = \\?").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet(), "eliminar_paquete must not be called")
}

func TestCallOnExisting_ExistingRowRunsProcedure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaqueteRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `PAQUETE` WHERE ID_PAQUETE = \\?").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("CALL actualizar_estado_paquete(?, ?)")).
		WithArgs(int64(42), 2).
		WillReturnRows(sqlmock.NewRows([]string{"salida"}))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateEstado(context.Background(), 42, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaqueteRepository_Update_NoRowsIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaqueteRepository(db, time.Second)

	mock.ExpectExec("UPDATE `PAQUETE` SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), domain.Paquete{ID: 99, Peso: 1, ClienteID: 3, CentroID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
