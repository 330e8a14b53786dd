package query

import (
	"reflect"
	"testing"
)

func TestNoCriteriaSelectsEverything(t *testing.T) {
	b := New("id, name", "patient")
	b.OrderBy("id")

	want := "SELECT id, name FROM patient ORDER BY id"
	if got := b.SQL(); got != want {
		t.Errorf("SQL() = %q, want %q", got, want)
	}
	if len(b.Args()) != 0 {
		t.Errorf("Args() = %v, want none", b.Args())
	}
}

func TestValuesNeverEnterSQLText(t *testing.T) {
	hostile := "'; DROP TABLE patient; --"
	b := New("id", "patient")
	b.Where(b.Eq("name", hostile))

	sql := b.SQL()
	if want := "SELECT id FROM patient WHERE name = $1"; sql != want {
		t.Errorf("SQL() = %q, want %q", sql, want)
	}
	args := b.Args()
	if len(args) != 1 || args[0] != hostile {
		t.Errorf("Args() = %v, want the raw value bound", args)
	}
}

func TestContainsFoldWrapsPattern(t *testing.T) {
	b := New("id", "medication")
	b.Where(b.ContainsFold("drug_name", "ibu"))

	if want := "SELECT id FROM medication WHERE LOWER(drug_name) LIKE LOWER($1)"; b.SQL() != want {
		t.Errorf("SQL() = %q", b.SQL())
	}
	if got := b.Args()[0]; got != "%ibu%" {
		t.Errorf("bound pattern = %v, want %%ibu%%", got)
	}
}

func TestWhereAnyCombinesWithOr(t *testing.T) {
	b := New("id", "patient")
	b.WhereAny(
		b.ContainsFold("firstname", "ann"),
		b.ContainsFold("lastname", "ann"),
	)
	b.Where(b.Eq("sex", "F"))

	want := "SELECT id FROM patient WHERE (LOWER(firstname) LIKE LOWER($1) OR LOWER(lastname) LIKE LOWER($2)) AND sex = $3"
	if got := b.SQL(); got != want {
		t.Errorf("SQL() = %q, want %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []interface{}{"%ann%", "%ann%", "F"}) {
		t.Errorf("Args() = %v", got)
	}
}

func TestAggregateClauses(t *testing.T) {
	b := New("provider_id, COUNT(*) AS rx_count", "prescription")
	b.GroupBy("provider_id")
	b.Having(b.Gte("COUNT(*)", 3))
	b.OrderBy("rx_count DESC")

	want := "SELECT provider_id, COUNT(*) AS rx_count FROM prescription GROUP BY provider_id HAVING COUNT(*) >= $1 ORDER BY rx_count DESC"
	if got := b.SQL(); got != want {
		t.Errorf("SQL() = %q, want %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []interface{}{3}) {
		t.Errorf("Args() = %v, want [3]", got)
	}
}

func TestDistinct(t *testing.T) {
	b := New("patient_id", "visit")
	b.Distinct()

	if want := "SELECT DISTINCT patient_id FROM visit"; b.SQL() != want {
		t.Errorf("SQL() = %q", b.SQL())
	}
}

func TestPlaceholderNumberingAcrossPredicates(t *testing.T) {
	b := New("id", "visit")
	b.Where(b.Eq("patient_id", 7))
	b.Where(b.Fold("status", "Completed"))
	b.Where(b.Eq("location", "Clinic A"))

	want := "SELECT id FROM visit WHERE patient_id = $1 AND LOWER(status) = LOWER($2) AND location = $3"
	if got := b.SQL(); got != want {
		t.Errorf("SQL() = %q, want %q", got, want)
	}
}
