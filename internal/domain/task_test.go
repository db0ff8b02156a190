package domain

import "testing"

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"To Do", "In Progress", "Done"} {
		s, ok := ParseStatus(valid)
		if !ok || string(s) != valid {
			t.Fatalf("expected %q to parse, got %q ok=%v", valid, s, ok)
		}
	}
	for _, invalid := range []string{"", "all", "done", "todo", "ARCHIVED"} {
		if _, ok := ParseStatus(invalid); ok {
			t.Fatalf("expected %q not to parse", invalid)
		}
	}
}

func TestParseSortPermissive(t *testing.T) {
	if ParseSort("deadline_asc") != SortDeadlineAsc {
		t.Fatal("deadline_asc not recognized")
	}
	if ParseSort("deadline_desc") != SortDeadlineDesc {
		t.Fatal("deadline_desc not recognized")
	}
	// Unknown sorts fall back to the default, they are not an error.
	for _, unknown := range []string{"", "created", "DEADLINE_ASC", "bogus"} {
		if ParseSort(unknown) != SortDefault {
			t.Fatalf("expected %q to fall back to default sort", unknown)
		}
	}
}
