package allergy

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

func (r *repoPG) ListPatientAllergies(ctx context.Context) ([]*PatientAllergy, error) {
	b := query.New(`pa.allergy_id, p.patient_id, p.firstname || ' ' || p.lastname AS patient_name,
		pa.substance, pa.reaction, pa.severity`,
		`patient p
		JOIN patient_allergy pa ON p.patient_id = pa.patient_id`)
	b.OrderBy("pa.allergy_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list patient allergies", err)
	}
	defer rows.Close()

	out := []*PatientAllergy{}
	for rows.Next() {
		var a PatientAllergy
		if err := rows.Scan(&a.AllergyID, &a.PatientID, &a.PatientName,
			&a.Substance, &a.Reaction, &a.Severity); err != nil {
			return nil, errs.Wrap("scan patient allergy", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list patient allergies", err)
	}
	return out, nil
}

func (r *repoPG) ListConflicts(ctx context.Context) ([]*Conflict, error) {
	b := query.New(`pt.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
		pa.substance, pa.reaction, pa.severity,
		m.med_id, m.drug_name, m.brand_name, m.dosage_form`,
		`patient pt
		JOIN patient_allergy pa ON pt.patient_id = pa.patient_id
		JOIN allergyconflict ac ON pa.allergy_id = ac.allergy_id
		JOIN medication m ON ac.med_id = m.med_id`)
	b.OrderBy("pt.patient_id, m.med_id")

	rows, err := r.conn(ctx).Query(ctx, b.SQL(), b.Args()...)
	if err != nil {
		return nil, errs.Wrap("list allergy conflicts", err)
	}
	defer rows.Close()

	out := []*Conflict{}
	for rows.Next() {
		var c Conflict
		if err := rows.Scan(&c.PatientID, &c.PatientName,
			&c.Substance, &c.Reaction, &c.Severity,
			&c.MedID, &c.DrugName, &c.BrandName, &c.DosageForm); err != nil {
			return nil, errs.Wrap("scan allergy conflict", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("list allergy conflicts", err)
	}
	return out, nil
}

// FindRuleMatches is a cross match: every allergy with the rule substance
// pairs with every catalog drug carrying the rule name. Written raw because
// the bound drug name lives in the join condition.
func (r *repoPG) FindRuleMatches(ctx context.Context, substance, drug string) ([]ConflictKey, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT pa.allergy_id, m.med_id
		FROM patient_allergy pa
		JOIN medication m ON LOWER(m.drug_name) = LOWER($2)
		WHERE LOWER(pa.substance) = LOWER($1)`, substance, drug)
	if err != nil {
		return nil, errs.Wrap("find rule matches", err)
	}
	defer rows.Close()

	out := []ConflictKey{}
	for rows.Next() {
		var k ConflictKey
		if err := rows.Scan(&k.AllergyID, &k.MedID); err != nil {
			return nil, errs.Wrap("scan rule match", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap("find rule matches", err)
	}
	return out, nil
}

func (r *repoPG) InsertConflict(ctx context.Context, key ConflictKey) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO allergyconflict (allergy_id, med_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING`, key.AllergyID, key.MedID)
	if err != nil {
		return false, errs.Wrap("insert allergy conflict", err)
	}
	return tag.RowsAffected() == 1, nil
}
