package visit

import (
	"context"

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

const visitCols = `visit_id, patient_id, provider_id, visit_date_time, location, visit_type, reason, status`

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.ProviderID, &v.DateTime,
		&v.Location, &v.VisitType, &v.Reason, &v.Status)
	return &v, err
}

func (r *repoPG) List(ctx context.Context) ([]*Visit, error) {
	b := query.New(visitCols, "visit")
	b.OrderBy("visit_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list visits", err)
	}
	defer rows.Close()

	out := []*Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, errs.Wrap("scan visit", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list visits", err)
	}
	return out, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Visit, error) {
	v, err := scanVisit(r.conn(ctx).QueryRow(ctx,
		`SELECT `+visitCols+` FROM visit WHERE visit_id = $1`, id))
	if err != nil {
		return nil, errs.Wrap("get visit", err)
	}
	return v, nil
}

func (r *repoPG) ListDiagnoses(ctx context.Context) ([]*Diagnosis, error) {
	b := query.New("v.visit_id, d.dx_code, d.dx_name",
		`visit v
		JOIN visit_diagnosis vd ON v.visit_id = vd.visit_id
		JOIN diagnosis d ON vd.dx_code = d.dx_code`)
	b.OrderBy("v.visit_id, d.dx_code")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list diagnoses", err)
	}
	defer rows.Close()

	out := []*Diagnosis{}
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.VisitID, &d.DxCode, &d.DxName); err != nil {
			return nil, errs.Wrap("scan diagnosis", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list diagnoses", err)
	}
	return out, nil
}
