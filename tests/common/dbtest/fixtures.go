//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, code, name, category string, priceAdult, priceChild int64, perPerson bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO products (code, name, category, price_adult, price_child, per_person)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, category = EXCLUDED.category,
		    price_adult = EXCLUDED.price_adult, price_child = EXCLUDED.price_child,
		    per_person = EXCLUDED.per_person`,
		code, name, category, priceAdult, priceChild, perPerson)
	require.NoError(t, err)
}

func CreateTestPackage(t *testing.T, db DBLike, code, name string, productCodes ...string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO packages (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING", code, name)
	require.NoError(t, err)

	for _, pc := range productCodes {
		_, err := db.Exec(ctx, "INSERT INTO package_products (package_code, product_code) VALUES ($1, $2) ON CONFLICT DO NOTHING", code, pc)
		require.NoError(t, err)
	}
}

// inserts the catalog every e2e test prices against
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (code, name, category, price_adult, price_child, per_person) VALUES
		    ('habitacion_101', 'Room 101', 'alojamiento', 60000, 0, false),
		    ('habitacion_102', 'Room 102', 'alojamiento', 50000, 0, false),
		    ('desayuno', 'Breakfast', 'comida', 10000, 5000, true),
		    ('cena', 'Dinner', 'comida', 20000, 10000, true),
		    ('masaje', 'Relaxing massage', 'spa', 35000, 0, true)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO packages (code, name) VALUES
		    ('MEDIA_PENSION', 'Half board'),
		    ('SOLO_ALOJAMIENTO', 'Room only')
		ON CONFLICT (code) DO NOTHING;
		INSERT INTO package_products (package_code, product_code) VALUES
		    ('MEDIA_PENSION', 'desayuno'),
		    ('MEDIA_PENSION', 'cena')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
