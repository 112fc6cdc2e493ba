package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockPostRepo(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return NewPostRepository(db), mock
}

// The aggregation query's shape is part of the contract: LEFT JOIN so
// zero-vote posts appear, GROUP BY the post id, a case-sensitive LIKE
// on the title, and an explicit ORDER BY posts.id so pagination never
// depends on database-default ordering.
const listWithVotesSQL = `SELECT posts\.\*, count\(votes\.post_id\) AS votes ` +
	`FROM "posts" LEFT JOIN votes ON votes\.post_id = posts\.id ` +
	`WHERE posts\.title LIKE \$1 GROUP BY posts\.id ` +
	`ORDER BY posts\.id LIMIT \$2 OFFSET \$3`

const getWithVotesSQL = `SELECT posts\.\*, count\(votes\.post_id\) AS votes ` +
	`FROM "posts" LEFT JOIN votes ON votes\.post_id = posts\.id ` +
	`WHERE posts\.id = \$1 GROUP BY posts\.id`

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "published", "owner_id", "created_at", "updated_at", "votes",
	})
}

func TestGormPostRepository_ListWithVotes(t *testing.T) {
	repo, mock := setupMockPostRepo(t)

	now := time.Now()
	mock.ExpectQuery(listWithVotesSQL).
		WithArgs("%go%", 2, 5).
		WillReturnRows(postRows().
			AddRow(6, "go post", "content", true, 1, now, now, 3).
			AddRow(7, "going on", "content", true, 2, now, now, 0))

	rows, err := repo.ListWithVotes(PostFilter{Search: "go", Limit: 2, Skip: 5})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, uint64(6), rows[0].ID)
	require.Equal(t, int64(3), rows[0].Votes)
	require.Equal(t, uint64(7), rows[1].ID)
	require.Equal(t, int64(0), rows[1].Votes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_GetWithVotes(t *testing.T) {
	repo, mock := setupMockPostRepo(t)

	now := time.Now()
	mock.ExpectQuery(getWithVotesSQL).
		WithArgs(6).
		WillReturnRows(postRows().
			AddRow(6, "go post", "content", true, 1, now, now, 3))

	row, err := repo.GetWithVotes(6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), row.ID)
	require.Equal(t, int64(3), row.Votes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPostRepository_GetWithVotes_NotFound(t *testing.T) {
	repo, mock := setupMockPostRepo(t)

	mock.ExpectQuery(getWithVotesSQL).
		WithArgs(999).
		WillReturnRows(postRows())

	_, err := repo.GetWithVotes(999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
