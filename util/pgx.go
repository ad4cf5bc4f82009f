package util

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Int64ToPgxInt8 wraps pointer int64 to the pgtype.Int8.
func Int64ToPgxInt8(n *int64) pgtype.Int8 {
	if n == nil {
		return pgtype.Int8{Valid: false}
	}

	return pgtype.Int8{Int64: *n, Valid: true}
}

// UUIDToPgxUUID wraps pointer uuid to the pgtype.UUID.
func UUIDToPgxUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}

	return pgtype.UUID{Bytes: *id, Valid: true}
}

// PgxUUIDToUUID returns nil for a NULL uuid.
func PgxUUIDToUUID(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}

	u := uuid.UUID(id.Bytes)
	return &u
}

// PgxInt8ToInt64 returns nil for a NULL bigint.
func PgxInt8ToInt64(n pgtype.Int8) *int64 {
	if !n.Valid {
		return nil
	}

	v := n.Int64
	return &v
}
