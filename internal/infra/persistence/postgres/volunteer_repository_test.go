package postgres

import (
	"context"
	"strings"
	"testing"

	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements with the postgres dialect without ever opening a connection.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=neighborly dbname=neighborly sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func explainMatchQuery(t *testing.T, criteria repository.MatchCriteria) string {
	t.Helper()

	db := newDryRunDB(t)
	var userModels []*model.UserModel
	stmt := matchQuery(db, criteria).Find(&userModels).Statement

	return db.Dialector.Explain(stmt.SQL.String(), stmt.Vars...)
}

func TestMatchQuery_Predicates(t *testing.T) {
	elderID := uuid.New()

	sql := explainMatchQuery(t, repository.MatchCriteria{
		ElderID:    elderID,
		ServiceIDs: []int64{1, 2},
		SlotKeys:   []string{"monday-morning", "friday-evening"},
		Gender:     "female",
		City:       "boston",
	})

	for _, fragment := range []string{
		"users.role = 'volunteer'",
		"users.id <> '" + elderID.String() + "'",
		"lower(trim(users.gender)) = 'female'",
		"lower(trim(users.city)) = 'boston'",
		"us.user_id = users.id AND us.selected AND us.service_id IN (1,2)",
		"a.user_id = users.id AND a.selected AND a.day_of_week || '-' || a.time_of_day IN ('monday-morning','friday-evening')",
	} {
		assert.Contains(t, sql, fragment)
	}
	assert.True(t, strings.HasSuffix(sql, "ORDER BY users.rating DESC NULLS LAST, users.review_count DESC, users.id"), sql)
}

func TestMatchQuery_OnlyTheElderCity(t *testing.T) {
	sql := explainMatchQuery(t, repository.MatchCriteria{
		ElderID:    uuid.New(),
		ServiceIDs: []int64{3},
		SlotKeys:   []string{"sunday-afternoon"},
		Gender:     "male",
		City:       "boston",
	})

	assert.Contains(t, sql, "lower(trim(users.city)) = 'boston'")
	assert.NotContains(t, sql, "cambridge")
	assert.Equal(t, 1, strings.Count(sql, "lower(trim(users.city))"))
}

func TestVolunteerRepository_FindMatches_IncompleteCriteria(t *testing.T) {
	repo := NewVolunteerRepository(newDryRunDB(t))
	complete := repository.MatchCriteria{
		ElderID:    uuid.New(),
		ServiceIDs: []int64{1},
		SlotKeys:   []string{"monday-morning"},
		Gender:     "female",
		City:       "boston",
	}

	tests := []struct {
		name   string
		mutate func(c *repository.MatchCriteria)
	}{
		{name: "no services", mutate: func(c *repository.MatchCriteria) { c.ServiceIDs = nil }},
		{name: "no slots", mutate: func(c *repository.MatchCriteria) { c.SlotKeys = nil }},
		{name: "no gender", mutate: func(c *repository.MatchCriteria) { c.Gender = "" }},
		{name: "no city", mutate: func(c *repository.MatchCriteria) { c.City = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := complete
			tt.mutate(&criteria)

			got, err := repo.FindMatches(context.Background(), criteria)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}
