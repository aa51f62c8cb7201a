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

	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain-text password of every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func CreateTestUser(t *testing.T, db sqlc.DBTX, email, role string) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPassword(DefaultPassword)
	})
	require.NoError(t, hashErr)

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, defaultHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func DeactivateUser(t *testing.T, db sqlc.DBTX, userID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db sqlc.DBTX, name, pricePerNight string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, category, price_per_night) VALUES ($1, $2, 'double', $3::numeric)",
		roomID, name, pricePerNight)
	require.NoError(t, err)

	return roomID
}

// CreateTestBooking inserts a booking directly, bypassing the overlap check.
func CreateTestBooking(t *testing.T, db sqlc.DBTX, roomID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, room_id, client_name, start_date, end_date, status, price_per_night)
		SELECT $1, r.id, 'Test Guest', $3::date, $4::date, $5, r.price_per_night
		FROM rooms r WHERE r.id = $2`,
		bookingID, roomID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
