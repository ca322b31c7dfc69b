package furniture

import (
	"context"
	"errors"
	"testing"

	"tooltips/core/integration"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestProvider_DatabaseErrorIsMiss(t *testing.T) {
	db, mock := setupMockDB(t)
	core, logs := observer.New(zapcore.WarnLevel)

	mock.ExpectQuery("SELECT \\* FROM `furniture_placements`").WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery("SELECT \\* FROM `furniture_placements`").WillReturnError(errors.New("connection reset"))

	p := NewProvider(db, "itemsadder", zap.New(core))

	_, ok := p.FurnitureAt(context.Background(), integration.Location{World: "world"})
	assert.False(t, ok)
	_, ok = p.FurnitureOf(context.Background(), integration.Entity{ID: uuid.New()})
	assert.False(t, ok)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "itemsadder", logs.All()[0].ContextMap()["provider"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvider_MySQLRows(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "source", "furniture_id", "world", "x", "y", "z", "entity_id", "attributes"}).
		AddRow(7, "oraxen", "throne", "world", 10, 64, -10, nil, `{"tier":"gold"}`)
	mock.ExpectQuery("SELECT \\* FROM `furniture_placements` WHERE").WillReturnRows(rows)

	p := NewProvider(db, "oraxen", nil)
	f, ok := p.FurnitureAt(context.Background(), integration.Location{World: "world", X: 10, Y: 64, Z: -10})

	require.True(t, ok)
	assert.Equal(t, "throne", f.ID)
	assert.Equal(t, map[string]string{"tier": "gold"}, f.Attributes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
