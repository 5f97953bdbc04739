package evaluation

import "testing"

func TestCreditTableAnchors(t *testing.T) {
	table := DefaultCreditTable()
	cases := []struct {
		code    string
		section string
		points  float64
	}{
		{"patent_international", SectionPublications, 7},
		{"book_single_tertiary_national", SectionPublications, 7},
		{"training_international", SectionTrainings, 5},
		{"org_member_full", SectionOrganizations, 2},
		{"award_international", SectionAwards, 5},
		{"community_service", SectionOutreach, 1},
		{"licensure_exam", SectionExams, 5},
	}
	for _, tc := range cases {
		credit, ok := table.Lookup(tc.code)
		if !ok {
			t.Errorf("Lookup(%q): missing", tc.code)
			continue
		}
		if credit.Section != tc.section {
			t.Errorf("Lookup(%q) section = %q, want %q", tc.code, credit.Section, tc.section)
		}
		if credit.Points != tc.points {
			t.Errorf("Lookup(%q) points = %v, want %v", tc.code, credit.Points, tc.points)
		}
	}
}

func TestCreditTableUnknown(t *testing.T) {
	if _, ok := DefaultCreditTable().Lookup("not_a_code"); ok {
		t.Fatal("unknown code must not resolve")
	}
}

func TestCreditTableSections(t *testing.T) {
	known := map[string]bool{
		SectionPublications:  true,
		SectionTrainings:     true,
		SectionOrganizations: true,
		SectionAwards:        true,
		SectionOutreach:      true,
		SectionExams:         true,
	}
	for code, credit := range DefaultCreditTable() {
		if !known[credit.Section] {
			t.Errorf("%s: unexpected section %q", code, credit.Section)
		}
		if credit.Points <= 0 {
			t.Errorf("%s: non-positive points %v", code, credit.Points)
		}
		if credit.Description == "" {
			t.Errorf("%s: empty description", code)
		}
	}
}
