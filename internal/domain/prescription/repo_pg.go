package prescription

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

const rxCols = `p.rx_id, p.provider_id, pr.full_name AS provider_name,
	p.visit_id, v.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
	p.dose, p.route, p.frequency, p.quantity, p.start_date, p.end_date`

const rxFrom = `prescription p
	JOIN provider pr ON p.provider_id = pr.provider_id
	JOIN visit v ON p.visit_id = v.visit_id
	JOIN patient pt ON v.patient_id = pt.patient_id`

func scanRx(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.RxID, &p.ProviderID, &p.ProviderName,
		&p.VisitID, &p.PatientID, &p.PatientName,
		&p.Dose, &p.Route, &p.Frequency, &p.Quantity, &p.StartDate, &p.EndDate)
	return &p, err
}

func (r *repoPG) List(ctx context.Context) ([]*Prescription, error) {
	b := query.New(rxCols, rxFrom)
	b.OrderBy("p.rx_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list prescriptions", err)
	}
	defer rows.Close()

	out := []*Prescription{}
	for rows.Next() {
		p, err := scanRx(rows)
		if err != nil {
			return nil, errs.Wrap("scan prescription", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list prescriptions", err)
	}
	return out, nil
}

func (r *repoPG) GetByID(ctx context.Context, rxID int64) (*Prescription, error) {
	b := query.New(rxCols, rxFrom)
	b.Where(b.Eq("p.rx_id", rxID))

	p, err := scanRx(r.conn(ctx).QueryRow(ctx, b.SQL(), b.Args()...))
	if err != nil {
		return nil, errs.Wrap("get prescription", err)
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Prescription, medIDs []int64) (int64, error) {
	var rxID int64
	err := db.InTx(ctx, r.pool, func(ctx context.Context) error {
		row := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO prescription (provider_id, visit_id, dose, route, frequency, quantity, start_date, end_date)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING rx_id`,
			p.ProviderID, p.VisitID, p.Dose, p.Route, p.Frequency, p.Quantity, p.StartDate, p.EndDate)
		if err := row.Scan(&rxID); err != nil {
			return errs.Wrap("create prescription", err)
		}
		for _, medID := range medIDs {
			if _, err := r.conn(ctx).Exec(ctx, `
				INSERT INTO prescription_medication (rx_id, med_id)
				VALUES ($1,$2)`, rxID, medID); err != nil {
				return errs.Wrap("link prescription medication", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	p.RxID = rxID
	return rxID, nil
}

func (r *repoPG) Delete(ctx context.Context, rxID int64) error {
	return db.InTx(ctx, r.pool, func(ctx context.Context) error {
		if _, err := r.conn(ctx).Exec(ctx,
			`DELETE FROM prescription_medication WHERE rx_id = $1`, rxID); err != nil {
			return errs.Wrap("unlink prescription medications", err)
		}
		tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescription WHERE rx_id = $1`, rxID)
		if err != nil {
			return errs.Wrap("delete prescription", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("delete prescription: %w", errs.ErrNotFound)
		}
		return nil
	})
}
