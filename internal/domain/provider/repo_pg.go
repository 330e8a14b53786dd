package provider

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinrec/clinrec/internal/platform/db"
	"github.com/clinrec/clinrec/internal/platform/errs"
	"github.com/clinrec/clinrec/internal/platform/query"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const providerCols = `provider_id, full_name, specialty`

func scanProvider(row pgx.Row) (*Provider, error) {
	var p Provider
	err := row.Scan(&p.ID, &p.FullName, &p.Specialty)
	return &p, err
}

func (r *repoPG) List(ctx context.Context, searchTerm string) ([]*Provider, error) {
	b := query.New(providerCols, "provider")
	if searchTerm != "" {
		b.WhereAny(
			b.ContainsFold("full_name", searchTerm),
			b.ContainsFold("specialty", searchTerm),
		)
	}
	b.OrderBy("provider_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list providers", err)
	}
	defer rows.Close()

	out := []*Provider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, errs.Wrap("scan provider", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list providers", err)
	}
	return out, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Provider, error) {
	p, err := scanProvider(r.conn(ctx).QueryRow(ctx,
		`SELECT `+providerCols+` FROM provider WHERE provider_id = $1`, id))
	if err != nil {
		return nil, errs.Wrap("get provider", err)
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Provider) (int64, error) {
	var id int64
	err := db.InTx(ctx, r.pool, func(ctx context.Context) error {
		row := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO provider (full_name, specialty)
			VALUES ($1,$2)
			RETURNING provider_id`,
			p.FullName, p.Specialty)
		if err := row.Scan(&id); err != nil {
			return errs.Wrap("create provider", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	return db.InTx(ctx, r.pool, func(ctx context.Context) error {
		tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM provider WHERE provider_id = $1`, id)
		if err != nil {
			return errs.Wrap("delete provider", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("delete provider: %w", errs.ErrNotFound)
		}
		return nil
	})
}
