package checks

import (
	"testing"

	"property-engine/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCheckStoresSchema_NilDB(t *testing.T) {
	report, err := CheckStoresSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckStoresSchema_Match(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "varchar(64)", "NO", "PRI", nil, "").
		AddRow("name", "varchar(255)", "YES", "", nil, "").
		AddRow("company", "text", "YES", "", nil, "").
		AddRow("email", "varchar(255)", "YES", "", nil, "").
		AddRow("phone", "varchar(32)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `stores`").WillReturnRows(rows)

	report, err := CheckStoresSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["stores"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckStoresSchema_MissingAndMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "varchar(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `stores`").WillReturnRows(rows)

	report, err := CheckStoresSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["stores"]
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"company", "email", "phone"}, tbl.MissingColumns)
	assert.Equal(t, []string{"id: expected varchar(64), got int(11)"}, tbl.TypeMismatches)
}

func TestCheckStoresSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE stores (id varchar(64) PRIMARY KEY, name varchar(255), email TEXT)").Error)

	report, err := CheckStoresSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.ElementsMatch(t, []string{"company", "phone"}, report.Tables["stores"].MissingColumns)
	assert.Empty(t, report.Tables["stores"].TypeMismatches)
}

func TestCheckStoresSchema_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `stores`").WillReturnError(assert.AnError)

	report, err := CheckStoresSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.NotEmpty(t, report.Errors)
}
