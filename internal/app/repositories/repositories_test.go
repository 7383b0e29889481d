package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/tnp/internal/app/models"
)

func TestArrayConversions(t *testing.T) {
	branches := []models.Branch{models.BranchCSE, models.BranchIT}
	if got := textToBranches(branchesToText(branches)); len(got) != 2 || got[1] != models.BranchIT {
		t.Fatalf("branch round trip failed: %v", got)
	}

	years := []int{2025, 2026}
	if got := int4ToYears(yearsToInt4(years)); len(got) != 2 || got[0] != 2025 {
		t.Fatalf("year round trip failed: %v", got)
	}

	if got := branchesToText(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil branches must encode as an empty array, got %#v", got)
	}
}

func TestFilterDataArg(t *testing.T) {
	v, err := filterDataArg(nil)
	if err != nil || v != nil {
		t.Fatalf("nil filter data should be NULL, got %v %v", v, err)
	}

	v, err = filterDataArg(&models.FilterData{Branches: []models.Branch{models.BranchECE}})
	if err != nil {
		t.Fatal(err)
	}
	if v != `{"branches":["ECE"]}` {
		t.Fatalf("unexpected json %v", v)
	}
}

func TestJobSelectUsesDollarPlaceholders(t *testing.T) {
	sql, args, err := jobSelect().Where(squirrel.Eq{"j.status": "OPEN"}).ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sql, "JOIN job_eligibilities e ON e.id = j.eligibility_id") {
		t.Fatalf("missing eligibility join: %s", sql)
	}
	if !strings.Contains(sql, "j.status = $1") || len(args) != 1 {
		t.Fatalf("unexpected where clause: %s %v", sql, args)
	}
}

// recordingQuerier captures the statements a repository issues and fails them.
type recordingQuerier struct {
	querier
	sql []string
}

var errStatementRecorded = errors.New("statement recorded")

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = append(q.sql, sql)
	return nil, errStatementRecorded
}

func TestAnnouncementListIsNewestFirst(t *testing.T) {
	q := &recordingQuerier{}
	repo := &AnnouncementRepository{db: q}

	if _, err := repo.List(context.Background()); !errors.Is(err, errStatementRecorded) {
		t.Fatalf("expected the recorded error, got %v", err)
	}
	if len(q.sql) != 1 {
		t.Fatalf("expected one statement, got %d", len(q.sql))
	}
	if !strings.HasSuffix(q.sql[0], "ORDER BY created_at DESC") {
		t.Fatalf("announcements must be listed newest first: %s", q.sql[0])
	}
}
