package allergy

import (
	"context"
	"strings"
	"testing"
)

// -- Mock Repository --
//
// The mock mirrors the storage contract in memory: rule matching is
// case-insensitive equality and conflict insertion is set semantics.

type mockRepo struct {
	allergies map[int64]*PatientAllergy // allergy_id -> record
	drugs     map[int64]string          // med_id -> drug_name
	conflicts map[ConflictKey]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		allergies: make(map[int64]*PatientAllergy),
		drugs:     make(map[int64]string),
		conflicts: make(map[ConflictKey]bool),
	}
}

func (m *mockRepo) ListPatientAllergies(_ context.Context) ([]*PatientAllergy, error) {
	out := []*PatientAllergy{}
	for _, a := range m.allergies {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockRepo) ListConflicts(_ context.Context) ([]*Conflict, error) {
	out := []*Conflict{}
	for key := range m.conflicts {
		a := m.allergies[key.AllergyID]
		out = append(out, &Conflict{
			PatientID: a.PatientID,
			Substance: a.Substance,
			MedID:     key.MedID,
			DrugName:  m.drugs[key.MedID],
		})
	}
	return out, nil
}

func (m *mockRepo) FindRuleMatches(_ context.Context, substance, drug string) ([]ConflictKey, error) {
	out := []ConflictKey{}
	for aid, a := range m.allergies {
		if !strings.EqualFold(a.Substance, substance) {
			continue
		}
		for mid, name := range m.drugs {
			if strings.EqualFold(name, drug) {
				out = append(out, ConflictKey{AllergyID: aid, MedID: mid})
			}
		}
	}
	return out, nil
}

func (m *mockRepo) InsertConflict(_ context.Context, key ConflictKey) (bool, error) {
	if m.conflicts[key] {
		return false, nil
	}
	m.conflicts[key] = true
	return true, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func fixtureRepo() *mockRepo {
	repo := newMockRepo()
	// Substance and drug casing deliberately disagree with the rule table.
	repo.allergies[1] = &PatientAllergy{AllergyID: 1, PatientID: 10, Substance: "penicillin"}
	repo.allergies[2] = &PatientAllergy{AllergyID: 2, PatientID: 11, Substance: "NSAIDS"}
	repo.allergies[3] = &PatientAllergy{AllergyID: 3, PatientID: 12, Substance: "Latex"}
	repo.drugs[100] = "AMOXICILLIN"
	repo.drugs[101] = "Ibuprofen"
	repo.drugs[102] = "Metformin"
	return repo
}

// -- Tests --

func TestSeedConflictsDerivesRuleMatches(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, passthroughTx)

	inserted, err := svc.SeedConflicts(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("inserted = %d, want 2", inserted)
	}
	if !repo.conflicts[ConflictKey{AllergyID: 1, MedID: 100}] {
		t.Error("missing penicillin/amoxicillin conflict despite casing differences")
	}
	if !repo.conflicts[ConflictKey{AllergyID: 2, MedID: 101}] {
		t.Error("missing NSAIDs/ibuprofen conflict")
	}
}

func TestSeedConflictsNoExtraneousRows(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, passthroughTx)

	if _, err := svc.SeedConflicts(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for key := range repo.conflicts {
		if key.AllergyID == 3 {
			t.Errorf("latex allergy matched no rule yet produced conflict %+v", key)
		}
		if key.MedID == 102 {
			t.Errorf("metformin appears in no rule yet produced conflict %+v", key)
		}
	}
}

func TestSeedConflictsIdempotent(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, passthroughTx)

	first, err := svc.SeedConflicts(context.Background())
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	before := len(repo.conflicts)

	for i := 0; i < 3; i++ {
		again, err := svc.SeedConflicts(context.Background())
		if err != nil {
			t.Fatalf("reseed %d: %v", i, err)
		}
		if again != 0 {
			t.Errorf("reseed %d inserted %d rows, want 0", i, again)
		}
	}
	if len(repo.conflicts) != before {
		t.Errorf("conflict set grew from %d to %d across reruns", before, len(repo.conflicts))
	}
	if first != before {
		t.Errorf("first run reported %d inserts for %d rows", first, before)
	}
}

func TestSeedConflictsPicksUpNewData(t *testing.T) {
	repo := fixtureRepo()
	svc := NewService(repo, passthroughTx)

	if _, err := svc.SeedConflicts(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A new sulfa allergy arrives after the first sweep.
	repo.allergies[4] = &PatientAllergy{AllergyID: 4, PatientID: 13, Substance: "sulfa"}
	repo.drugs[103] = "Sulfamethoxazole"

	inserted, err := svc.SeedConflicts(context.Background())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1", inserted)
	}
	if !repo.conflicts[ConflictKey{AllergyID: 4, MedID: 103}] {
		t.Error("new sulfa conflict not derived")
	}
}

func TestRuleTableComplete(t *testing.T) {
	want := []Rule{
		{"Penicillin", "Amoxicillin"},
		{"Penicillin", "Penicillin V"},
		{"NSAIDs", "Ibuprofen"},
		{"NSAIDs", "Naproxen"},
		{"Sulfa", "Sulfamethoxazole"},
		{"Sulfa", "Trimethoprim-Sulfamethoxazole"},
		{"Aspirin", "Aspirin"},
		{"Cephalosporins", "Ceftriaxone"},
		{"Tetracycline", "Doxycycline"},
		{"Macrolides", "Azithromycin"},
		{"ACE inhibitors", "Lisinopril"},
		{"Codeine", "Morphine"},
	}
	if len(Rules) != len(want) {
		t.Fatalf("rule table has %d entries, want %d", len(Rules), len(want))
	}
	for i, r := range want {
		if Rules[i] != r {
			t.Errorf("rule %d = %+v, want %+v", i, Rules[i], r)
		}
	}
}
