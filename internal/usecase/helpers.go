package usecase

import (
	"context"
	"errors"
	"strings"

	"hospitrack/internal/delivery/http/middleware"
	"hospitrack/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// bedOccupancyCheck ties status Occupied to a non-null patient_id
const bedOccupancyCheck = "chk_beds_occupancy"

// isCheckViolation reports PostgreSQL check constraint failures (23514)
func isCheckViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23514" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// actorID is the authenticated user, nil for system calls
func actorID(ctx context.Context) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

// actorName prefers the explicit value and falls back to the caller's name
func actorName(ctx context.Context, explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	if name, ok := middleware.GetUserNameFromContext(ctx); ok && name != "" {
		return name
	}
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		return email
	}
	return ""
}

// invalidateStats drops cached dashboard snapshots after a committed write
func invalidateStats(ctx context.Context, cache service.StatsCache, log *logrus.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnf("Failed to invalidate dashboard stats: %+v", err)
	}
}
