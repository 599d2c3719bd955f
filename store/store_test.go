package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGateway(t *testing.T) *Gateway {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	g := New(db)
	require.NoError(t, Bootstrap(context.Background(), g))
	return g
}

func TestSelectEmptyResultIsNotAnError(t *testing.T) {
	g := setupGateway(t)

	type row struct {
		TaskID string
	}
	rows := []row{}
	err := g.Select(context.Background(), &rows, "SELECT task_id FROM tasks WHERE task_id = ?", "missing")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetReportsFound(t *testing.T) {
	g := setupGateway(t)
	ctx := context.Background()

	type row struct {
		TaskID string
	}
	var r row
	found, err := g.Get(ctx, &r, "SELECT task_id FROM tasks WHERE task_id = ?", "missing")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = g.Get(ctx, &r, "SELECT task_id FROM tasks WHERE task_id = ?", "seed-task-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "seed-task-1", r.TaskID)
}

func TestExecReturnsAffectedRows(t *testing.T) {
	g := setupGateway(t)
	ctx := context.Background()

	affected, err := g.Exec(ctx,
		"INSERT INTO tags (tag_id, user_id, name) VALUES (?, ?, ?)", "t1", "u1", "home")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = g.Exec(ctx, "DELETE FROM tags WHERE tag_id = ?", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = g.Exec(ctx, "DELETE FROM tags WHERE tag_id = ?", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestInTxRollsBackOnError(t *testing.T) {
	g := setupGateway(t)
	ctx := context.Background()

	sentinel := errors.New("abort")
	err := g.InTx(ctx, func(tx *Gateway) error {
		if _, err := tx.Exec(ctx,
			"INSERT INTO tags (tag_id, user_id, name) VALUES (?, ?, ?)", "t2", "u1", "work"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	count, err := g.Count(ctx, "SELECT COUNT(*) FROM tags WHERE tag_id = ?", "t2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUniquePairConstraintHoldsWithoutPreCheck(t *testing.T) {
	g := setupGateway(t)
	ctx := context.Background()

	_, err := g.Exec(ctx,
		"INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)", "seed-task-1", "x")
	require.NoError(t, err)
	_, err = g.Exec(ctx,
		"INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)", "seed-task-1", "x")
	assert.Error(t, err, "pair primary key must reject the duplicate")
}
