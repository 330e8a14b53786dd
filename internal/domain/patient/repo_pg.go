package patient

import (
	"context"
	"fmt"
	"strings"

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

const patientCols = `patient_id, firstname, lastname, birthdate, sex,
	contact_phone, contact_email, emergency_contact_name, emergency_contact_phone`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Birthdate, &p.Sex,
		&p.ContactPhone, &p.ContactEmail, &p.EmergencyContactName, &p.EmergencyContactPhone)
	return &p, err
}

func (r *repoPG) List(ctx context.Context, searchTerm string) ([]*Patient, error) {
	b := query.New(patientCols, "patient")
	if searchTerm != "" {
		b.WhereAny(
			b.ContainsFold("firstname", searchTerm),
			b.ContainsFold("lastname", searchTerm),
			b.ContainsFold("contact_email", searchTerm),
			b.ContainsFold("contact_phone", searchTerm),
		)
	}
	b.OrderBy("patient_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list patients", err)
	}
	defer rows.Close()

	out := []*Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, errs.Wrap("scan patient", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list patients", err)
	}
	return out, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE patient_id = $1`, id))
	if err != nil {
		return nil, errs.Wrap("get patient", err)
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) (int64, error) {
	var id int64
	err := db.InTx(ctx, r.pool, func(ctx context.Context) error {
		row := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO patient (firstname, lastname, birthdate, sex,
				contact_phone, contact_email, emergency_contact_name, emergency_contact_phone)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING patient_id`,
			p.FirstName, p.LastName, p.Birthdate, p.Sex,
			p.ContactPhone, p.ContactEmail, p.EmergencyContactName, p.EmergencyContactPhone)
		if err := row.Scan(&id); err != nil {
			return errs.Wrap("create patient", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

func (r *repoPG) Update(ctx context.Context, id int64, u *UpdateInput) error {
	// Column names are fixed here; only values travel as parameters.
	sets := []string{}
	args := []interface{}{}
	bind := func(col, val string) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.FirstName != "" {
		bind("firstname", u.FirstName)
	}
	if u.LastName != "" {
		bind("lastname", u.LastName)
	}
	if u.ContactPhone != "" {
		bind("contact_phone", u.ContactPhone)
	}
	if u.ContactEmail != "" {
		bind("contact_email", u.ContactEmail)
	}
	if len(sets) == 0 {
		return errs.Invalid("no updatable fields provided")
	}

	return db.InTx(ctx, r.pool, func(ctx context.Context) error {
		args = append(args, id)
		tag, err := r.conn(ctx).Exec(ctx, fmt.Sprintf(
			"UPDATE patient SET %s WHERE patient_id = $%d",
			strings.Join(sets, ", "), len(args)), args...)
		if err != nil {
			return errs.Wrap("update patient", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("update patient: %w", errs.ErrNotFound)
		}
		return nil
	})
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	return db.InTx(ctx, r.pool, func(ctx context.Context) error {
		tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE patient_id = $1`, id)
		if err != nil {
			return errs.Wrap("delete patient", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("delete patient: %w", errs.ErrNotFound)
		}
		return nil
	})
}
