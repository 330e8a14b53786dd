package report

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

func providerRxCountsQuery(drugQuery string) *query.Builder {
	b := query.New("pr.provider_id, pr.full_name, COUNT(*) AS rx_count",
		`prescription p
		JOIN provider pr ON pr.provider_id = p.provider_id
		JOIN prescription_medication pm ON pm.rx_id = p.rx_id
		JOIN medication m ON m.med_id = pm.med_id`)
	b.WhereAny(
		b.ContainsFold("m.drug_name", drugQuery),
		b.ContainsFold("m.brand_name", drugQuery),
	)
	b.GroupBy("pr.provider_id, pr.full_name")
	b.OrderBy("rx_count DESC, pr.full_name")
	return b
}

func (r *repoPG) PrescriptionCountsByProvider(ctx context.Context, drugQuery string) ([]*ProviderRxCount, error) {
	b := providerRxCountsQuery(drugQuery)
	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("provider rx counts", err)
	}
	defer rows.Close()

	out := []*ProviderRxCount{}
	for rows.Next() {
		var row ProviderRxCount
		if err := rows.Scan(&row.ProviderID, &row.ProviderName, &row.RxCount); err != nil {
			return nil, errs.Wrap("scan provider rx count", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("provider rx counts", err)
	}
	return out, nil
}

func untreatedDiagnosesQuery(dxQuery string) *query.Builder {
	b := query.New(`pt.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
		d.dx_code, d.dx_name`,
		`visit v
		JOIN patient pt ON pt.patient_id = v.patient_id
		JOIN visit_diagnosis vd ON vd.visit_id = v.visit_id
		JOIN diagnosis d ON d.dx_code = vd.dx_code
		LEFT JOIN prescription p ON p.visit_id = v.visit_id`)
	b.Distinct()
	b.WhereAny(
		b.Fold("d.dx_code", dxQuery),
		b.ContainsFold("d.dx_name", dxQuery),
	)
	// Anti-join: visits that never produced a prescription.
	b.Where("p.rx_id IS NULL")
	b.OrderBy("pt.patient_id")
	return b
}

func (r *repoPG) UntreatedDiagnoses(ctx context.Context, dxQuery string) ([]*UntreatedDiagnosis, error) {
	b := untreatedDiagnosesQuery(dxQuery)
	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("untreated diagnoses", err)
	}
	defer rows.Close()

	out := []*UntreatedDiagnosis{}
	for rows.Next() {
		var row UntreatedDiagnosis
		if err := rows.Scan(&row.PatientID, &row.PatientName, &row.DxCode, &row.DxName); err != nil {
			return nil, errs.Wrap("scan untreated diagnosis", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("untreated diagnoses", err)
	}
	return out, nil
}

func patientRxCountsQuery(minCount int) *query.Builder {
	b := query.New(`pt.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
		COUNT(p.rx_id) AS rx_count`,
		`patient pt
		JOIN visit v ON v.patient_id = pt.patient_id
		JOIN prescription p ON p.visit_id = v.visit_id`)
	b.GroupBy("pt.patient_id, patient_name")
	b.Having(b.Gte("COUNT(p.rx_id)", minCount))
	b.OrderBy("rx_count DESC, patient_name")
	return b
}

func (r *repoPG) PrescriptionCountsByPatient(ctx context.Context, minCount int) ([]*PatientRxCount, error) {
	b := patientRxCountsQuery(minCount)
	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("patient rx counts", err)
	}
	defer rows.Close()

	out := []*PatientRxCount{}
	for rows.Next() {
		var row PatientRxCount
		if err := rows.Scan(&row.PatientID, &row.PatientName, &row.RxCount); err != nil {
			return nil, errs.Wrap("scan patient rx count", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("patient rx counts", err)
	}
	return out, nil
}
