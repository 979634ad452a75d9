package domain

import (
	"testing"
	"time"
)

func TestGranularity_Label(t *testing.T) {
	ts := time.Date(2023, 12, 11, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		granularity Granularity
		expected    string
	}{
		{GranularityYear, "2023"},
		{GranularityMonth, "2023-12"},
		{GranularityDay, "2023-12-11"},
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			if got := tt.granularity.Label(ts, time.UTC); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGranularity_LabelUsesLocation(t *testing.T) {
	ts := time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC)
	east := time.FixedZone("east", 2*60*60)

	if got := GranularityDay.Label(ts, east); got != "2024-01-01" {
		t.Errorf("Label() = %q, want %q", got, "2024-01-01")
	}
}

func TestParseGranularityAndField(t *testing.T) {
	if _, err := ParseGranularity("week"); err == nil {
		t.Error("expected error for unknown granularity")
	}
	if g, err := ParseGranularity("day"); err != nil || g != GranularityDay {
		t.Errorf("ParseGranularity(day) = %q, %v", g, err)
	}
	if _, err := ParseTimeField("changed"); err == nil {
		t.Error("expected error for unknown field")
	}
	if f, err := ParseTimeField("created"); err != nil || f.Kind() != EventCreation {
		t.Errorf("ParseTimeField(created) = %q, %v", f, err)
	}
}

func TestTimeBucketTable_OrderAndSeries(t *testing.T) {
	table := NewTimeBucketTable(map[BucketKey]int{
		{Kind: EventModification, Extension: ".txt", Period: "2023-02"}: 1,
		{Kind: EventModification, Extension: ".png", Period: "2023-01"}: 2,
		{Kind: EventCreation, Extension: ".txt", Period: "2023-03"}:     4,
		{Kind: EventModification, Extension: ".txt", Period: "2023-01"}: 3,
	})

	want := []BucketKey{
		{Kind: EventCreation, Extension: ".txt", Period: "2023-03"},
		{Kind: EventModification, Extension: ".png", Period: "2023-01"},
		{Kind: EventModification, Extension: ".txt", Period: "2023-01"},
		{Kind: EventModification, Extension: ".txt", Period: "2023-02"},
	}
	if len(table.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(table.Entries), len(want))
	}
	for i, k := range want {
		if table.Entries[i].BucketKey != k {
			t.Errorf("entry %d = %+v, want %+v", i, table.Entries[i].BucketKey, k)
		}
	}

	periods := table.Periods()
	if len(periods) != 3 || periods[0] != "2023-01" || periods[2] != "2023-03" {
		t.Errorf("Periods() = %v", periods)
	}

	series := table.Series(EventModification, ".txt")
	wantSeries := []int{3, 1, 0}
	for i := range wantSeries {
		if series[i] != wantSeries[i] {
			t.Errorf("Series()[%d] = %d, want %d", i, series[i], wantSeries[i])
		}
	}

	if table.Count(EventCreation, ".txt", "2023-03") != 4 {
		t.Error("Count() mismatch")
	}
	if table.Total() != 10 {
		t.Errorf("Total() = %d, want 10", table.Total())
	}
}

func TestMerge(t *testing.T) {
	a := NewTimeBucketTable(map[BucketKey]int{
		{Kind: EventCreation, Period: "2023-01-01"}: 1,
	})
	b := NewTimeBucketTable(map[BucketKey]int{
		{Kind: EventModification, Period: "2023-01-01"}: 2,
		{Kind: EventCreation, Period: "2023-01-01"}:     1,
	})

	merged := Merge(a, b)
	if merged.Count(EventCreation, "", "2023-01-01") != 2 {
		t.Error("expected creation tallies to be summed")
	}
	if kinds := merged.Kinds(); len(kinds) != 2 {
		t.Errorf("Kinds() = %v", kinds)
	}
	if Merge().IsEmpty() != true {
		t.Error("merging nothing should be empty")
	}
}

func TestAggregationTable_Helpers(t *testing.T) {
	table := AggregationTable{Entries: []TypeCount{
		{Extension: ".txt", Count: 3},
		{Extension: ".png", Count: 1},
	}}

	if table.Total() != 4 {
		t.Errorf("Total() = %d, want 4", table.Total())
	}
	shares := table.Shares()
	if shares[0] != 0.75 || shares[1] != 0.25 {
		t.Errorf("Shares() = %v", shares)
	}
	if n, ok := table.Get(".png"); !ok || n != 1 {
		t.Errorf("Get(.png) = %d, %v", n, ok)
	}
	if _, ok := table.Get(".gif"); ok {
		t.Error("Get(.gif) should miss")
	}
	if top := table.Top(1); top.Len() != 1 || top.Entries[0].Extension != ".txt" {
		t.Errorf("Top(1) = %+v", top)
	}
	if len(AggregationTable{}.Shares()) != 0 {
		t.Error("empty table should have no shares")
	}
}
