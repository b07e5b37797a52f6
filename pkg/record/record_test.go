package record

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/vtable/pkg/sorting"
)

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(7).Generate(100)
	b := NewGenerator(7).Generate(100)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different data (-a +b):\n%s", diff)
	}
	c := NewGenerator(8).Generate(100)
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical data")
	}
}

func TestGeneratorIDsIncreaseAcrossRefreshes(t *testing.T) {
	g := NewGenerator(1)
	first := g.Generate(10)
	second := g.Generate(5)
	for i, r := range first {
		if r.ID != i {
			t.Errorf("first batch: expected id %d, got %d", i, r.ID)
		}
	}
	for i, r := range second {
		if r.ID != 10+i {
			t.Errorf("second batch: expected id %d, got %d", 10+i, r.ID)
		}
	}
}

func TestGeneratorRanges(t *testing.T) {
	for _, r := range NewGenerator(3).Generate(2000) {
		if r.Age < 0 || r.Age >= 40 {
			t.Fatalf("age out of range: %d", r.Age)
		}
		if r.Visits < 0 || r.Visits >= 1000 {
			t.Fatalf("visits out of range: %d", r.Visits)
		}
		if r.Progress < 0 || r.Progress > 99 {
			t.Fatalf("progress out of range: %d", r.Progress)
		}
		if r.Status.Rank() >= len(statusRank) {
			t.Fatalf("unknown status %d", r.Status)
		}
		if r.CreatedAt.After(referenceTime) || r.CreatedAt.Before(referenceTime.Add(-createdAtSpan)) {
			t.Fatalf("createdAt out of range: %v", r.CreatedAt)
		}
		if r.FirstName == "" || r.LastName == "" {
			t.Fatal("empty name")
		}
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	g := NewGenerator(1)
	if got := g.Generate(0); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
	if got := g.Generate(-5); len(got) != 0 {
		t.Errorf("expected empty slice for negative count, got %d", len(got))
	}
}

func TestStatusRankAndString(t *testing.T) {
	if !(StatusRelationship.Rank() < StatusComplicated.Rank() && StatusComplicated.Rank() < StatusSingle.Rank()) {
		t.Error("status ranks are not in declared order")
	}
	if Status(42).Rank() <= StatusSingle.Rank() {
		t.Error("unknown status should rank last")
	}
	if StatusSingle.String() != "single" {
		t.Errorf("unexpected name %q", StatusSingle.String())
	}
	if !strings.HasPrefix(Status(42).String(), "status(") {
		t.Errorf("unexpected name for unknown status %q", Status(42).String())
	}
}

func TestColumnsFormatting(t *testing.T) {
	cols := Columns()
	want := []string{KeyID, KeyFirstName, KeyLastName, KeyAge, KeyVisits, KeyStatus, KeyProgress, KeyCreatedAt}
	if diff := cmp.Diff(want, cols.Keys()); diff != "" {
		t.Fatalf("column keys (-want +got):\n%s", diff)
	}

	r := Record{
		ID: 12, FirstName: "Ada", LastName: "Lovelace", Age: 36, Visits: 7,
		Progress: 55, Status: StatusComplicated,
		CreatedAt: time.Date(2020, 2, 3, 4, 5, 6, 0, time.Local),
	}
	tests := map[string]string{
		KeyID:        "12",
		KeyFirstName: "Ada",
		KeyLastName:  "Lovelace",
		KeyAge:       "36",
		KeyVisits:    "7",
		KeyStatus:    "complicated",
		KeyProgress:  "55%",
		KeyCreatedAt: "2020-02-03 04:05:06",
	}
	for key, want := range tests {
		c, ok := cols.Lookup(key)
		if !ok {
			t.Fatalf("missing column %q", key)
		}
		if got := c.Format(r); got != want {
			t.Errorf("%s: expected %q, got %q", key, want, got)
		}
	}
}

func TestStatusColumnSortsByRank(t *testing.T) {
	recs := []Record{
		{Status: StatusSingle},
		{Status: StatusRelationship},
		{Status: StatusComplicated},
		{Status: StatusRelationship},
	}
	order, err := Columns().Sort(recs, sorting.Spec{Key: KeyStatus, Direction: sorting.Ascending})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 3, 2, 0}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}
