package medication

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

const medCols = `med_id, drug_name, brand_name, dosage_form`

func scanMed(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.DrugName, &m.BrandName, &m.DosageForm)
	return &m, err
}

func (r *repoPG) ListCatalog(ctx context.Context, searchTerm string) ([]*Medication, error) {
	b := query.New(medCols, "medication")
	if searchTerm != "" {
		b.WhereAny(
			b.ContainsFold("drug_name", searchTerm),
			b.ContainsFold("brand_name", searchTerm),
		)
	}
	b.OrderBy("med_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list medications", err)
	}
	defer rows.Close()

	out := []*Medication{}
	for rows.Next() {
		m, err := scanMed(rows)
		if err != nil {
			return nil, errs.Wrap("scan medication", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list medications", err)
	}
	return out, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Medication, error) {
	m, err := scanMed(r.conn(ctx).QueryRow(ctx,
		`SELECT `+medCols+` FROM medication WHERE med_id = $1`, id))
	if err != nil {
		return nil, errs.Wrap("get medication", err)
	}
	return m, nil
}

func (r *repoPG) Create(ctx context.Context, m *Medication) (int64, error) {
	var id int64
	err := db.InTx(ctx, r.pool, func(ctx context.Context) error {
		row := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO medication (drug_name, brand_name, dosage_form)
			VALUES ($1,$2,$3)
			RETURNING med_id`,
			m.DrugName, m.BrandName, m.DosageForm)
		if err := row.Scan(&id); err != nil {
			return errs.Wrap("create medication", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}

func (r *repoPG) ListDispensed(ctx context.Context) ([]*Dispensed, error) {
	b := query.New(`m.med_id, m.drug_name, m.brand_name, m.dosage_form,
		p.rx_id, pt.firstname || ' ' || pt.lastname AS patient_name, pr.full_name AS provider_name`,
		`medication m
		JOIN prescription_medication pm ON m.med_id = pm.med_id
		JOIN prescription p ON pm.rx_id = p.rx_id
		JOIN visit v ON p.visit_id = v.visit_id
		JOIN patient pt ON v.patient_id = pt.patient_id
		JOIN provider pr ON p.provider_id = pr.provider_id`)
	b.OrderBy("p.rx_id, m.med_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list dispensed medications", err)
	}
	defer rows.Close()

	out := []*Dispensed{}
	for rows.Next() {
		var d Dispensed
		if err := rows.Scan(&d.MedID, &d.DrugName, &d.BrandName, &d.DosageForm,
			&d.RxID, &d.PatientName, &d.ProviderName); err != nil {
			return nil, errs.Wrap("scan dispensed medication", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list dispensed medications", err)
	}
	return out, nil
}
