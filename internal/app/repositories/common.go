package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/tnp/internal/app/models"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql is the statement builder shared by all repositories
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func branchesToText(in []models.Branch) []string {
	out := make([]string, len(in))
	for i, b := range in {
		out[i] = string(b)
	}
	return out
}

func textToBranches(in []string) []models.Branch {
	out := make([]models.Branch, len(in))
	for i, s := range in {
		out[i] = models.Branch(s)
	}
	return out
}

func yearsToInt4(in []int) []int32 {
	out := make([]int32, len(in))
	for i, y := range in {
		out[i] = int32(y)
	}
	return out
}

func int4ToYears(in []int32) []int {
	out := make([]int, len(in))
	for i, y := range in {
		out[i] = int(y)
	}
	return out
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
