package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
)

const userColumns = `id, username, display_name, role, credential_digest, permission_tags,
email, phone, department, created_by, created_at, last_access_at, active`

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) Create(ctx context.Context, u *domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, display_name, role, credential_digest, permission_tags,
                   email, phone, department, created_by, created_at, active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username,
		u.DisplayName,
		string(u.Role),
		u.CredentialDigest,
		u.PermissionTags,
		u.Email,
		u.Phone,
		u.Department,
		mapOptionalInt64(u.CreatedBy),
		u.CreatedAt,
		u.Active,
	)
	if err != nil {
		return mapUnique(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// Authenticate matches username, digest and the activity flag in a single
// lookup so no outward signal distinguishes which of the three failed.
func (r *usersRepo) Authenticate(ctx context.Context, username, digest string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE username = ? AND credential_digest = ? AND active = 1`,
		username, digest)
	return scanUser(row)
}

func (r *usersRepo) UpdateDigest(ctx context.Context, userID int64, newDigest string) error {
	return r.execAffectingOne(ctx,
		`UPDATE users SET credential_digest = ? WHERE id = ?`, newDigest, userID)
}

func (r *usersRepo) TouchLastAccess(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_access_at = ? WHERE id = ?`, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) SetActive(ctx context.Context, userID int64, active bool) error {
	return r.execAffectingOne(ctx,
		`UPDATE users SET active = ? WHERE id = ?`, active, userID)
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE active = 1`).Scan(&n)
	return n, err
}

// execAffectingOne maps "no row updated" to store.ErrNotFound.
func (r *usersRepo) execAffectingOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u          domain.User
		role       string
		createdBy  sql.NullInt64
		lastAccess sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&role,
		&u.CredentialDigest,
		&u.PermissionTags,
		&u.Email,
		&u.Phone,
		&u.Department,
		&createdBy,
		&u.CreatedAt,
		&lastAccess,
		&u.Active,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.CreatedBy = mapNullInt64Ptr(createdBy)
	u.LastAccessAt = mapNullTimePtr(lastAccess)
	return u, nil
}
