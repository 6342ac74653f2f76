package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Items []string `json:"items"`
}

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mockDB
}

func TestStore_Load(t *testing.T) {
	t.Run("저장된 문서를 읽는다", func(t *testing.T) {
		store, mockDB := setupMockStore(t)

		mockDB.ExpectQuery(`SELECT doc FROM collections`).WithArgs("members").
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"items":["a"]}`)))

		var doc testDoc
		err := store.Load(context.Background(), "members", &doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, doc.Items)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("없는 컬렉션은 기본 문서를 만들어 넣는다", func(t *testing.T) {
		store, mockDB := setupMockStore(t)

		mockDB.ExpectQuery(`SELECT doc FROM collections`).WithArgs("members").
			WillReturnError(sql.ErrNoRows)
		mockDB.ExpectExec(`INSERT INTO collections`).WithArgs("members", []byte(`{"items":[]}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		doc := testDoc{Items: []string{}}
		err := store.Load(context.Background(), "members", &doc)

		require.NoError(t, err)
		assert.Empty(t, doc.Items)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("깨진 JSON은 오류를 낸다", func(t *testing.T) {
		store, mockDB := setupMockStore(t)

		mockDB.ExpectQuery(`SELECT doc FROM collections`).WithArgs("members").
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{broken`)))

		var doc testDoc
		err := store.Load(context.Background(), "members", &doc)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "members")
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("upsert로 문서를 교체한다", func(t *testing.T) {
		store, mockDB := setupMockStore(t)

		mockDB.ExpectExec(`INSERT INTO collections`).WithArgs("cells", []byte(`{"items":["a","b"]}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Save(context.Background(), "cells", testDoc{Items: []string{"a", "b"}})

		require.NoError(t, err)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestStore_EnsureSchema(t *testing.T) {
	store, mockDB := setupMockStore(t)

	mockDB.ExpectExec(`CREATE TABLE IF NOT EXISTS collections`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, mockDB.ExpectationsWereMet())
}
