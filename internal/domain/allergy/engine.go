package allergy

import "context"

// Rules is the static substance/drug conflict table the inference engine
// applies. Matching is case-insensitive; rows it derives are inserted at most
// once, so re-running the engine is safe.
var Rules = []Rule{
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

// TxRunner runs fn inside a single transaction. Production wiring backs it
// with db.InTx; tests pass fn through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// SeedConflicts walks the rule table and records every derived conflict not
// already present. The whole sweep shares one transaction, so a failure on
// any rule leaves the conflict table exactly as it was. Returns the number of
// rows actually inserted; rerunning against an unchanged database returns 0.
func (s *Service) SeedConflicts(ctx context.Context) (int, error) {
	inserted := 0
	err := s.inTx(ctx, func(ctx context.Context) error {
		for _, rule := range Rules {
			keys, err := s.allergies.FindRuleMatches(ctx, rule.Substance, rule.Drug)
			if err != nil {
				return err
			}
			for _, key := range keys {
				added, err := s.allergies.InsertConflict(ctx, key)
				if err != nil {
					return err
				}
				if added {
					inserted++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
