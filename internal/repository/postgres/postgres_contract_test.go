package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/maxviazov/mods-catalog-service/internal/model"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"github.com/maxviazov/mods-catalog-service/internal/repository/contract"
	"github.com/maxviazov/mods-catalog-service/migrations"
)

var (
	db     *sql.DB
	pool   *pgxpool.Pool
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// allow skipping contract tests unless explicitly enabled
		skippy = true
		os.Exit(m.Run())
	}

	dsn := buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] DATABASE_URL or APP_POSTGRES_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	var err error
	db, err = sql.Open("pgx", dsn)
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("[contract] pgxpool new error:", err)
		os.Exit(1)
	}

	code := m.Run()
	pool.Close()
	db.Close()
	os.Exit(code)
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func buildDSNFromEnv() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	user := firstNonEmpty(os.Getenv("APP_POSTGRES_USER"), os.Getenv("POSTGRES_USER"))
	pass := firstNonEmpty(os.Getenv("APP_POSTGRES_PASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	host := firstNonEmpty(os.Getenv("APP_POSTGRES_HOST"), os.Getenv("POSTGRES_HOST"), "localhost")
	port := firstNonEmpty(os.Getenv("APP_POSTGRES_PORT"), os.Getenv("POSTGRES_PORT"), "5432")
	name := firstNonEmpty(os.Getenv("APP_POSTGRES_DB"), os.Getenv("POSTGRES_DB"))
	ssl := firstNonEmpty(os.Getenv("APP_POSTGRES_SSLMODE"), os.Getenv("POSTGRES_SSLMODE"), "disable")
	if user == "" || pass == "" || name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateMods(t *testing.T) {
	t.Helper()
	if _, err := db.Exec("TRUNCATE TABLE mods"); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
}

func seedMods(ctx context.Context, mods ...model.Mod) error {
	const stmt = `INSERT INTO mods (id, title, icon, author, author_link, description, tags,
		mod_link, download_link, rating, reviews, downloads, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, m := range mods {
		var tags *string
		if m.Tags != nil {
			s := string(*m.Tags)
			tags = &s
		}
		if _, err := pool.Exec(ctx, stmt,
			m.ID, m.Title, m.Icon, m.Author, m.AuthorLink, m.Description, tags,
			m.ModLink, m.DownloadLink, m.Rating, m.Reviews, m.Downloads, m.LastUpdated,
		); err != nil {
			return err
		}
	}
	return nil
}

func TestModRepository_Contract(t *testing.T) {
	skipIfNeeded(t)
	contract.RunModRepositoryContract(t, func(t *testing.T) (repository.ModRepository, contract.SeedFunc, func()) {
		truncateMods(t)
		return NewModRepository(pool), seedMods, func() { truncateMods(t) }
	})
}

func TestStore_Ping(t *testing.T) {
	skipIfNeeded(t)
	if err := NewPinger(pool).Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNilPoolIsRejected(t *testing.T) {
	repo := NewModRepository(nil)
	if _, err := repo.Count(context.Background()); err == nil {
		t.Fatalf("expected error for nil pool")
	}
	if err := NewPinger(nil).Ping(context.Background()); err == nil {
		t.Fatalf("expected error for nil pool")
	}
}
