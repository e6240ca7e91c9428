package bench

import (
	"testing"
	"time"
)

func TestRunFileSolvesEachLevel(t *testing.T) {
	text := "Title: Pack\n" +
		"Title: One\n#####\n#@$.#\n#####\n" +
		"Title: Two\n####\n#@*#\n####\n"
	report, err := RunFile(text, 1000, time.Second, nil)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if report.Total != 2 || !report.AllSolved() {
		t.Fatalf("expected both levels solved: %+v", report)
	}
	if report.Levels[0].Title != "One" || report.Levels[1].Title != "Two" {
		t.Fatalf("unexpected titles: %+v", report.Levels)
	}
}

func TestRunFileRecordsUnsolvableLevelWithoutAbortingTheRun(t *testing.T) {
	text := "Title: Pack\n" +
		"Title: Sealed\n#######\n#.#@$ #\n#######\n" +
		"Title: Fine\n#####\n#@$.#\n#####\n"
	report, err := RunFile(text, 1000, time.Second, nil)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if report.Total != 2 {
		t.Fatalf("expected both levels recorded, got %d", report.Total)
	}
	if report.AllSolved() {
		t.Fatalf("expected AllSolved false with one sealed level")
	}
	if report.Levels[0].Solved {
		t.Fatalf("expected the sealed level to be recorded as unsolved")
	}
	if !report.Levels[1].Solved {
		t.Fatalf("expected the second, solvable level to still run and solve")
	}
}

func TestRunFileRejectsBadCollectionText(t *testing.T) {
	if _, err := RunFile("not a valid level", 1000, time.Second, nil); err == nil {
		t.Fatalf("expected an error for unparsable collection text")
	}
}
