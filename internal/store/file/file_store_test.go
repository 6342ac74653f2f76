package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Items []string `json:"items"`
}

func TestStore_Load(t *testing.T) {
	t.Run("없는 컬렉션은 기본 문서를 만들어 쓴다", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)

		doc := testDoc{Items: []string{}}
		err := store.Load(context.Background(), "members", &doc)

		require.NoError(t, err)
		assert.Empty(t, doc.Items)

		raw, err := os.ReadFile(filepath.Join(dir, "members.json"))
		require.NoError(t, err)

		var onDisk testDoc
		require.NoError(t, json.Unmarshal(raw, &onDisk))
		assert.Empty(t, onDisk.Items)
	})

	t.Run("저장한 문서를 다시 읽는다", func(t *testing.T) {
		store := NewStore(t.TempDir())
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "cells", testDoc{Items: []string{"a", "b"}}))

		var doc testDoc
		require.NoError(t, store.Load(ctx, "cells", &doc))
		assert.Equal(t, []string{"a", "b"}, doc.Items)
	})

	t.Run("깨진 JSON 파일은 오류를 낸다", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "members.json"), []byte("{broken"), 0o644))

		var doc testDoc
		err := store.Load(context.Background(), "members", &doc)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "members")
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("데이터 디렉터리가 없으면 만든다", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		store := NewStore(dir)

		err := store.Save(context.Background(), "members", testDoc{Items: []string{"x"}})

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "members.json"))
	})

	t.Run("저장 후 임시 파일이 남지 않는다", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)

		require.NoError(t, store.Save(context.Background(), "members", testDoc{}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "members.json", entries[0].Name())
	})

	t.Run("덮어쓰면 마지막 문서만 남는다", func(t *testing.T) {
		store := NewStore(t.TempDir())
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, "members", testDoc{Items: []string{"old"}}))
		require.NoError(t, store.Save(ctx, "members", testDoc{Items: []string{"new"}}))

		var doc testDoc
		require.NoError(t, store.Load(ctx, "members", &doc))
		assert.Equal(t, []string{"new"}, doc.Items)
	})
}
