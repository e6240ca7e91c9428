package level

import (
	"strings"

	"github.com/pkg/errors"
)

// Collection is a set of levels sharing one text file, separated by
// `Title:` headers with optional `Description:`/`Author:` lines, as
// read by the original Python tool's level_collection_parser and
// exercised by its test_level_collection_parser.py.
type Collection struct {
	Title       string
	Description string
	Author      string
	entries     []entry
}

type entry struct {
	title string
	level *Level
}

// LevelCount returns the number of levels in the collection.
func (c *Collection) LevelCount() int {
	return len(c.entries)
}

// Level returns the title and parsed Level at the given zero-based index.
func (c *Collection) Level(i int) (string, *Level) {
	e := c.entries[i]
	return e.title, e.level
}

// ParseCollection splits text into one or more titled levels. The
// collection's Title is the first Title: line in the file. Its
// Description/Author come from lines before any Title:, or from a
// header-only Title: block (one with no map lines) ahead of the first
// level. Description:/Author: lines inside a level's own block are
// not recorded.
func ParseCollection(text string) (*Collection, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	c := &Collection{}
	var curTitle, curDesc, curAuthor string
	var curLines []string
	seenAnyTitle := false

	flush := func() error {
		// A Title: header immediately followed by another Title: header
		// (zero map lines in between) is a header-only marker, not an
		// empty level — most commonly the collection's own Title/
		// Description/Author block ahead of the first real level.
		if len(curLines) == 0 {
			if len(c.entries) == 0 {
				if curDesc != "" {
					c.Description = curDesc
				}
				if curAuthor != "" {
					c.Author = curAuthor
				}
			}
			return nil
		}
		body := strings.TrimRight(strings.Join(curLines, "\n"), "\n")
		if strings.TrimSpace(body) == "" {
			return errors.Errorf("level %q has no map data", curTitle)
		}
		lvl, err := Parse(body)
		if err != nil {
			return errors.WithMessagef(err, "level %q", curTitle)
		}
		c.entries = append(c.entries, entry{title: curTitle, level: lvl})
		return nil
	}

	for _, raw := range lines {
		switch {
		case strings.HasPrefix(raw, "Title:"):
			if err := flush(); err != nil {
				return nil, err
			}
			curTitle = strings.TrimSpace(strings.TrimPrefix(raw, "Title:"))
			curDesc, curAuthor = "", ""
			curLines = nil
			if !seenAnyTitle {
				c.Title = curTitle
			}
			seenAnyTitle = true
		case strings.HasPrefix(raw, "Description:"):
			desc := strings.TrimSpace(strings.TrimPrefix(raw, "Description:"))
			curDesc = desc
			if !seenAnyTitle {
				c.Description = desc
			}
		case strings.HasPrefix(raw, "Author:"):
			author := strings.TrimSpace(strings.TrimPrefix(raw, "Author:"))
			curAuthor = author
			if !seenAnyTitle {
				c.Author = author
			}
		default:
			curLines = append(curLines, raw)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(c.entries) == 0 {
		return nil, errors.New("collection contains no levels")
	}
	return c, nil
}
