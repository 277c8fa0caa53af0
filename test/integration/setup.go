//go:build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/freetime"
	"github.com/bagdasarian/freetime-finder/internal/repository/postgres"
	"github.com/bagdasarian/freetime-finder/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
	}
	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

type services struct {
	users      service.UserService
	groups     service.GroupService
	slots      service.SlotService
	scheduling service.SchedulingService
	stats      service.StatsService
}

func newServices(t *testing.T, db *sql.DB) services {
	logger := zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))

	userRepo := postgres.NewUserRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	slotRepo := postgres.NewSlotRepository(db)
	finder := freetime.NewFinder(
		freetime.WithLocation(time.UTC),
		freetime.WithParallelism(4),
		freetime.WithLogger(logger),
	)

	return services{
		users:      service.NewUserService(userRepo, logger),
		groups:     service.NewGroupService(groupRepo, userRepo, logger),
		slots:      service.NewSlotService(slotRepo, groupRepo, logger),
		scheduling: service.NewSchedulingService(postgres.NewSnapshotRepository(db), finder, 5, logger),
		stats:      service.NewStatsService(postgres.NewStatsRepository(db), groupRepo),
	}
}

func registerUsers(t *testing.T, svc services, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := svc.users.Register(context.Background(), &domain.User{ID: id, Username: "user", Timezone: "UTC"})
		require.NoError(t, err)
	}
}
