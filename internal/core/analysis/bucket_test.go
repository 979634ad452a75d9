package analysis

import (
	"testing"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

func TestBucket_EmptyFilterYieldsEmptyTable(t *testing.T) {
	ts := day(2023, 12, 11)
	records := []domain.FileRecord{
		newRecord("a.txt", 1, ts),
		newRecord("b.txt", 1, ts),
		newRecord("c.png", 1, ts),
	}
	empty := domain.NewExtensionFilter()

	table := Bucket(records, empty, BucketOptions{
		Field:       domain.TimeModified,
		Granularity: domain.GranularityMonth,
		Location:    time.UTC,
	})
	if !table.IsEmpty() {
		t.Errorf("expected empty table, got %+v", table.Entries)
	}

	// The aggregator treats the same filter as "everything"
	if AggregateTypes(records, empty).Total() != 3 {
		t.Error("aggregator should count all records with an empty filter")
	}
}

func TestBucket_MonthBySplitExtension(t *testing.T) {
	records := []domain.FileRecord{
		newRecord("a.txt", 1, day(2023, 11, 3)),
		newRecord("b.txt", 1, day(2023, 11, 28)),
		newRecord("c.txt", 1, day(2023, 12, 1)),
		newRecord("d.png", 1, day(2023, 11, 15)),
		newRecord("e.gif", 1, day(2023, 11, 15)),
	}
	filter := domain.NewExtensionFilter(".txt", ".png")

	table := Bucket(records, filter, BucketOptions{
		Field:            domain.TimeAccessed,
		Granularity:      domain.GranularityMonth,
		Location:         time.UTC,
		SplitByExtension: true,
	})

	want := []domain.BucketCount{
		{BucketKey: domain.BucketKey{Kind: domain.EventAccess, Extension: ".png", Period: "2023-11"}, Count: 1},
		{BucketKey: domain.BucketKey{Kind: domain.EventAccess, Extension: ".txt", Period: "2023-11"}, Count: 2},
		{BucketKey: domain.BucketKey{Kind: domain.EventAccess, Extension: ".txt", Period: "2023-12"}, Count: 1},
	}
	if len(table.Entries) != len(want) {
		t.Fatalf("got %+v, want %+v", table.Entries, want)
	}
	for i := range want {
		if table.Entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, table.Entries[i], want[i])
		}
	}
}

func TestBucket_UsesSelectedField(t *testing.T) {
	rec := newRecord("a.txt", 1, day(2023, 1, 1))
	rec.CreatedAt = day(2020, 6, 1)
	filter := domain.NewExtensionFilter(".txt")

	table := Bucket([]domain.FileRecord{rec}, filter, BucketOptions{
		Field:       domain.TimeCreated,
		Granularity: domain.GranularityYear,
		Location:    time.UTC,
	})
	if table.Count(domain.EventCreation, "", "2020") != 1 {
		t.Errorf("expected created year bucket, got %+v", table.Entries)
	}
}

func TestTrend_MergesCreationAndModification(t *testing.T) {
	a := newRecord("a.txt", 1, day(2023, 12, 11))
	a.CreatedAt = day(2023, 12, 10)
	b := newRecord("b.txt", 1, day(2023, 12, 11))
	b.CreatedAt = day(2023, 12, 11)
	c := newRecord("c.png", 1, day(2023, 12, 12))

	table := Trend([]domain.FileRecord{a, b, c}, domain.NewExtensionFilter(".txt"), domain.GranularityDay, time.UTC)

	periods := table.Periods()
	if len(periods) != 2 || periods[0] != "2023-12-10" || periods[1] != "2023-12-11" {
		t.Fatalf("Periods() = %v", periods)
	}

	creation := table.Series(domain.EventCreation, "")
	if creation[0] != 1 || creation[1] != 1 {
		t.Errorf("creation series = %v, want [1 1]", creation)
	}
	modification := table.Series(domain.EventModification, "")
	if modification[0] != 0 || modification[1] != 2 {
		t.Errorf("modification series = %v, want [0 2]", modification)
	}
	if kinds := table.Kinds(); len(kinds) != 2 {
		t.Errorf("Kinds() = %v", kinds)
	}
}

func TestTrend_EmptyFilter(t *testing.T) {
	records := []domain.FileRecord{newRecord("a.txt", 1, day(2023, 1, 1))}
	if table := Trend(records, domain.NewExtensionFilter(), domain.GranularityDay, time.UTC); !table.IsEmpty() {
		t.Errorf("expected empty trend, got %+v", table.Entries)
	}
}
