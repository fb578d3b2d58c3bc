package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"svokit/internal/domain"
	"svokit/internal/email"
	"svokit/internal/pagination"
)

type Contact struct {
	ID        string
	Name      string
	Email     email.Address
	Phone     string
	CreatedAt time.Time
}

// DBTX is satisfied by *pgxpool.Pool and *pgx.Conn. Only a pool is safe
// to share between concurrent requests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ContactRepo struct {
	db DBTX
}

func NewContactRepo(db DBTX) *ContactRepo {
	return &ContactRepo{db: db}
}

const contactColumns = `id::text, name, email, coalesce(phone, ''), created_at`

func scanContact(row pgx.Row) (Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	return c, err
}

func (r *ContactRepo) Create(ctx context.Context, c Contact) (Contact, error) {
	out, err := scanContact(r.db.QueryRow(ctx, `
		insert into contacts (id, name, email, phone)
		values ($1::uuid, $2, $3, nullif($4, ''))
		returning `+contactColumns,
		c.ID, c.Name, c.Email, c.Phone))

	if err != nil {
		if isUniqueViolation(err, "contacts_email_key") {
			return Contact{}, domain.ErrContactEmailTaken
		}
		return Contact{}, err
	}
	return out, nil
}

func (r *ContactRepo) GetByEmail(ctx context.Context, addr email.Address) (Contact, error) {
	c, err := scanContact(r.db.QueryRow(ctx, `
		select `+contactColumns+`
		from contacts
		where email = $1
	`, addr))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contact{}, domain.ErrContactNotFound
		}
		return Contact{}, err
	}
	return c, nil
}

func (r *ContactRepo) Delete(ctx context.Context, addr email.Address) error {
	tag, err := r.db.Exec(ctx, `delete from contacts where email = $1`, addr)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepo) List(ctx context.Context, limit int, cursor *pagination.Cursor) ([]Contact, *pagination.Cursor, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	// Ordered by canonical address; collate "C" keeps the order byte-wise
	// and independent of the database locale.
	var rows pgx.Rows
	var err error

	if cursor == nil {
		rows, err = r.db.Query(ctx, `
			select `+contactColumns+`
			from contacts
			order by email collate "C"
			limit $1
		`, limit)
	} else {
		rows, err = r.db.Query(ctx, `
			select `+contactColumns+`
			from contacts
			where email collate "C" > $1
			order by email collate "C"
			limit $2
		`, cursor.After, limit)
	}
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]Contact, 0, limit)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// next cursor = last row (if we returned a full page)
	if len(items) == limit {
		next := &pagination.Cursor{After: items[len(items)-1].Email}
		return items, next, nil
	}

	return items, nil, nil
}
