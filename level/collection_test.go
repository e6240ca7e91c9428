package level

import "testing"

func TestParseCollectionSingleLevel(t *testing.T) {
	text := "Title: Corner\nDescription: one box\nAuthor: tester\n#####\n#@$.#\n#####\n"
	c, err := ParseCollection(text)
	if err != nil {
		t.Fatalf("ParseCollection: %v", err)
	}
	if c.LevelCount() != 1 {
		t.Fatalf("levels = %d, want 1", c.LevelCount())
	}
	title, lvl := c.Level(0)
	if title != "Corner" {
		t.Fatalf("title = %q, want %q", title, "Corner")
	}
	if lvl.Width != 5 || lvl.Height != 3 {
		t.Fatalf("level dimensions %dx%d, want 5x3", lvl.Width, lvl.Height)
	}
}

func TestParseCollectionMultipleLevelsAndMetadata(t *testing.T) {
	text := "Title: Demo Pack\nDescription: a small pack\nAuthor: tester\n" +
		"Title: One\n#####\n#@$.#\n#####\n" +
		"Title: Two\n#####\n#@$.#\n#####\n"
	c, err := ParseCollection(text)
	if err != nil {
		t.Fatalf("ParseCollection: %v", err)
	}
	if c.Title != "Demo Pack" || c.Description != "a small pack" || c.Author != "tester" {
		t.Fatalf("collection metadata wrong: %+v", c)
	}
	if c.LevelCount() != 2 {
		t.Fatalf("levels = %d, want 2", c.LevelCount())
	}
	first, _ := c.Level(0)
	second, _ := c.Level(1)
	if first != "One" || second != "Two" {
		t.Fatalf("titles = %q, %q", first, second)
	}
}

func TestParseCollectionPerLevelHeaderDoesNotLeakToCollection(t *testing.T) {
	text := "Title: First\nDescription: only for First\n#####\n#@$.#\n#####\n"
	c, err := ParseCollection(text)
	if err != nil {
		t.Fatalf("ParseCollection: %v", err)
	}
	if c.Description != "" {
		t.Fatalf("per-level Description leaked into collection metadata: %q", c.Description)
	}
}

func TestParseCollectionRejectsEmptyText(t *testing.T) {
	if _, err := ParseCollection(""); err == nil {
		t.Fatalf("expected an error for a collection with no levels")
	}
}

func TestParseCollectionRejectsBadLevel(t *testing.T) {
	text := "Title: Broken\n#####\n#@$$#\n#####\n"
	if _, err := ParseCollection(text); err == nil {
		t.Fatalf("expected the inner level's parse error to propagate")
	}
}
