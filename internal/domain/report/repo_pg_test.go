package report

import (
	"reflect"
	"strings"
	"testing"
)

// collapse normalizes the whitespace the multi-line FROM clauses introduce so
// statements can be compared as single lines.
func collapse(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestProviderRxCountsStatement(t *testing.T) {
	b := providerRxCountsQuery("ibu")

	want := collapse(`SELECT pr.provider_id, pr.full_name, COUNT(*) AS rx_count
		FROM prescription p
		JOIN provider pr ON pr.provider_id = p.provider_id
		JOIN prescription_medication pm ON pm.rx_id = p.rx_id
		JOIN medication m ON m.med_id = pm.med_id
		WHERE (LOWER(m.drug_name) LIKE LOWER($1) OR LOWER(m.brand_name) LIKE LOWER($2))
		GROUP BY pr.provider_id, pr.full_name
		ORDER BY rx_count DESC, pr.full_name`)
	if got := collapse(b.SQL()); got != want {
		t.Errorf("SQL = %q\nwant %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []interface{}{"%ibu%", "%ibu%"}) {
		t.Errorf("Args = %v", got)
	}
}

func TestProviderRxCountsTieBreakOrdering(t *testing.T) {
	sql := collapse(providerRxCountsQuery("x").SQL())
	if !strings.HasSuffix(sql, "ORDER BY rx_count DESC, pr.full_name") {
		t.Errorf("ordering is count descending then name ascending, got %q", sql)
	}
}

func TestUntreatedDiagnosesStatement(t *testing.T) {
	b := untreatedDiagnosesQuery("J20")

	want := collapse(`SELECT DISTINCT pt.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
		d.dx_code, d.dx_name
		FROM visit v
		JOIN patient pt ON pt.patient_id = v.patient_id
		JOIN visit_diagnosis vd ON vd.visit_id = v.visit_id
		JOIN diagnosis d ON d.dx_code = vd.dx_code
		LEFT JOIN prescription p ON p.visit_id = v.visit_id
		WHERE (LOWER(d.dx_code) = LOWER($1) OR LOWER(d.dx_name) LIKE LOWER($2))
		AND p.rx_id IS NULL
		ORDER BY pt.patient_id`)
	if got := collapse(b.SQL()); got != want {
		t.Errorf("SQL = %q\nwant %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []interface{}{"J20", "%J20%"}) {
		t.Errorf("Args = %v", got)
	}
}

func TestUntreatedDiagnosesAntiJoin(t *testing.T) {
	sql := collapse(untreatedDiagnosesQuery("asthma").SQL())
	if !strings.Contains(sql, "LEFT JOIN prescription p ON p.visit_id = v.visit_id") {
		t.Error("prescription join is not a LEFT JOIN")
	}
	if !strings.Contains(sql, "AND p.rx_id IS NULL") {
		t.Error("null check on rx_id missing; query would keep treated visits")
	}
	if !strings.Contains(sql, "SELECT DISTINCT") {
		t.Error("DISTINCT missing; multi-diagnosis visits would duplicate patients")
	}
}

func TestPatientRxCountsStatement(t *testing.T) {
	b := patientRxCountsQuery(3)

	want := collapse(`SELECT pt.patient_id, pt.firstname || ' ' || pt.lastname AS patient_name,
		COUNT(p.rx_id) AS rx_count
		FROM patient pt
		JOIN visit v ON v.patient_id = pt.patient_id
		JOIN prescription p ON p.visit_id = v.visit_id
		GROUP BY pt.patient_id, patient_name
		HAVING COUNT(p.rx_id) >= $1
		ORDER BY rx_count DESC, patient_name`)
	if got := collapse(b.SQL()); got != want {
		t.Errorf("SQL = %q\nwant %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []interface{}{3}) {
		t.Errorf("Args = %v, want the bound floor", got)
	}
}
