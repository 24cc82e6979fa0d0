package property

import "testing"

func seedSummaries() []Summary {
	props := DefaultSeed()
	out := make([]Summary, 0, len(props))
	for _, p := range props {
		out = append(out, p.Summary())
	}
	return out
}

func ids(summaries []Summary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []Summary, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterByType_ReturnsVillasInOriginalOrder(t *testing.T) {
	crit := NewCriteria()
	crit.Type = "Villa"

	got := Filter(seedSummaries(), crit)
	assertIDs(t, got, "2", "7", "8")
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, NewCriteria())
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}

	crit := NewCriteria()
	crit.Type = "Villa"
	got = Filter([]Summary{}, crit)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestFilterPassAllCriteriaReturnsEverything(t *testing.T) {
	all := seedSummaries()
	got := Filter(all, NewCriteria())
	if len(got) != len(all) {
		t.Fatalf("expected all %d items, got %d", len(all), len(got))
	}
}

func TestPriceBucketBoundaries(t *testing.T) {
	// adjacent buckets share the 20000/40000/60000 boundaries; a listing
	// priced exactly at a boundary belongs to both neighbours
	cases := []struct {
		bucket PriceBucket
		price  int
		want   bool
	}{
		{BucketUnder20K, 19999, true},
		{BucketUnder20K, 20000, false},
		{Bucket20K40K, 20000, true},
		{Bucket20K40K, 40000, true},
		{Bucket20K40K, 40001, false},
		{Bucket40K60K, 40000, true},
		{Bucket40K60K, 60000, true},
		{Bucket40K60K, 39999, false},
		{BucketOver60K, 60000, false},
		{BucketOver60K, 60001, true},
		{BucketAny, 1, true},
		{BucketAny, 999999, true},
	}
	for _, tc := range cases {
		if got := tc.bucket.Contains(tc.price); got != tc.want {
			t.Errorf("bucket %q price %d: expected %v, got %v", tc.bucket, tc.price, tc.want, got)
		}
	}
}

func TestPriceBucketBoundaryOverlapOnListings(t *testing.T) {
	all := []Summary{
		{ID: "a", Name: "A", Location: "Bangkok Central", Price: 20000},
		{ID: "b", Name: "B", Location: "Bangkok Central", Price: 40000},
		{ID: "c", Name: "C", Location: "Bangkok Central", Price: 60000},
	}

	lower := NewCriteria()
	lower.Bucket = Bucket20K40K
	assertIDs(t, Filter(all, lower), "a", "b")

	upper := NewCriteria()
	upper.Bucket = Bucket40K60K
	// 40000 satisfies both adjacent buckets
	assertIDs(t, Filter(all, upper), "b", "c")
}

func TestFreeTextQuery(t *testing.T) {
	all := []Summary{
		{ID: "1", Name: "Ocean View Villa", Location: "Pattaya Beach"},
		{ID: "2", Name: "Modern City Condo", Location: "Bangkok Central"},
	}

	crit := NewCriteria()
	crit.Query = "bangkok"
	assertIDs(t, Filter(all, crit), "2")

	crit.Query = "villa"
	assertIDs(t, Filter(all, crit), "1")

	crit.Query = ""
	assertIDs(t, Filter(all, crit), "1", "2")

	crit.Query = "VILLA"
	assertIDs(t, Filter(all, crit), "1")
}

func TestMinBedsInclusive(t *testing.T) {
	crit := NewCriteria()
	crit.MinBeds = 4
	assertIDs(t, Filter(seedSummaries(), crit), "2", "5", "8")
}

func TestFilterCriteriaCombineWithAND(t *testing.T) {
	crit := NewCriteria()
	crit.Type = "Villa"
	crit.Location = "Pattaya Beach"
	crit.Bucket = Bucket40K60K
	assertIDs(t, Filter(seedSummaries(), crit), "2")
}

func TestFilterMonotonicity(t *testing.T) {
	all := seedSummaries()

	crit := NewCriteria()
	prev := Filter(all, crit)

	steps := []func(*Criteria){
		func(c *Criteria) { c.Location = "Chiang Mai" },
		func(c *Criteria) { c.Type = "Villa" },
		func(c *Criteria) { c.MinBeds = 3 },
		func(c *Criteria) { c.Bucket = Bucket40K60K },
		func(c *Criteria) { c.Query = "mountain" },
	}
	for i, step := range steps {
		step(&crit)
		next := Filter(all, crit)
		if len(next) > len(prev) {
			t.Fatalf("step %d: adding a criterion grew the result set from %d to %d", i, len(prev), len(next))
		}
		if !isSubsequence(ids(next), ids(prev)) {
			t.Fatalf("step %d: %v is not a subsequence of %v", i, ids(next), ids(prev))
		}
		prev = next
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	all := seedSummaries()
	crit := NewCriteria()
	crit.MinBeds = 2

	got := Filter(all, crit)
	if !isSubsequence(ids(got), ids(all)) {
		t.Fatalf("filtered ids %v are not a subsequence of input ids %v", ids(got), ids(all))
	}
}

func TestUnknownCriteriaValuesMatchNothing(t *testing.T) {
	all := seedSummaries()

	crit := NewCriteria()
	crit.Bucket = PriceBucket("luxury")
	if got := Filter(all, crit); len(got) != 0 {
		t.Fatalf("unknown bucket matched %d listings", len(got))
	}

	crit = NewCriteria()
	crit.Location = "Atlantis"
	if got := Filter(all, crit); len(got) != 0 {
		t.Fatalf("unknown location matched %d listings", len(got))
	}

	crit = NewCriteria()
	crit.Type = "Castle"
	if got := Filter(all, crit); len(got) != 0 {
		t.Fatalf("unknown type matched %d listings", len(got))
	}
}

func TestCriteriaActiveCount(t *testing.T) {
	crit := NewCriteria()
	if n := crit.Active(); n != 0 {
		t.Fatalf("expected 0 active criteria, got %d", n)
	}
	crit.Type = "Condo"
	crit.Query = "city"
	if n := crit.Active(); n != 2 {
		t.Fatalf("expected 2 active criteria, got %d", n)
	}
}

func isSubsequence(sub, full []string) bool {
	j := 0
	for _, v := range sub {
		for j < len(full) && full[j] != v {
			j++
		}
		if j == len(full) {
			return false
		}
		j++
	}
	return true
}
