// Package checkpoint persists song lookup results in an append-only
// tab-separated file so the scraper can resume after an interruption.
package checkpoint

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const headline = "artist_name\ttrack_title\tid\tpopularity"

// Entry is one resolved (or missed) song lookup.
type Entry struct {
	Artist     string
	Title      string
	ID         string
	Popularity int

	// Matched is false when the song could not be found. Missed songs are
	// still written so they are not retried on the next run.
	Matched bool
}

// Store is the checkpoint file plus an in-memory index of its entries.
// Appends go straight to disk; a crash loses at most the in-flight song.
type Store struct {
	log  *zap.SugaredLogger
	file *os.File
	seen map[string]Entry
}

func key(artist, title string) string {
	return artist + "\t" + title
}

var writeHeadline = func(f *os.File) error {
	_, err := fmt.Fprintln(f, headline)
	return err
}

// Open reads an existing checkpoint file into memory, creating it with
// the headline row when absent.
func Open(log *zap.SugaredLogger, path string) (*Store, error) {
	s := &Store{
		log:  log,
		seen: make(map[string]Entry),
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}

	fresh := os.IsNotExist(err)

	s.file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint: %w", err)
	}

	if fresh {
		if err := writeHeadline(s.file); err != nil {
			s.file.Close()
			return nil, fmt.Errorf("write headline: %w", err)
		}
		return s, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(string(existing)))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 || text == "" {
			continue
		}
		entry, ok := parseLine(text)
		if !ok {
			log.Warnw("skipping malformed checkpoint line", "line", line)
			continue
		}
		s.seen[key(entry.Artist, entry.Title)] = entry
	}

	return s, nil
}

func parseLine(text string) (Entry, bool) {
	fields := strings.Split(text, "\t")
	if len(fields) != 4 {
		return Entry{}, false
	}
	e := Entry{
		Artist: fields[0],
		Title:  fields[1],
		ID:     fields[2],
	}
	if e.ID == "" {
		return e, true
	}
	pop, err := strconv.Atoi(fields[3])
	if err != nil {
		// Old files recorded misses as "nan".
		return Entry{Artist: e.Artist, Title: e.Title}, true
	}
	e.Popularity = pop
	e.Matched = true
	return e, true
}

// Seen reports whether a song was already looked up, matched or not.
func (s *Store) Seen(artist, title string) bool {
	_, ok := s.seen[key(artist, title)]
	return ok
}

// Append records a lookup result, writing it to disk immediately.
func (s *Store) Append(e Entry) error {
	id, pop := "", ""
	if e.Matched {
		id = e.ID
		pop = strconv.Itoa(e.Popularity)
	}
	if _, err := fmt.Fprintf(s.file, "%s\t%s\t%s\t%s\n", e.Artist, e.Title, id, pop); err != nil {
		return fmt.Errorf("append checkpoint: %w", err)
	}
	s.seen[key(e.Artist, e.Title)] = e
	return nil
}

// Resolved returns all matched entries, deduplicated by track ID.
func (s *Store) Resolved() []Entry {
	byID := make(map[string]struct{}, len(s.seen))
	entries := make([]Entry, 0, len(s.seen))
	for _, e := range s.seen {
		if !e.Matched {
			continue
		}
		if _, dup := byID[e.ID]; dup {
			continue
		}
		byID[e.ID] = struct{}{}
		entries = append(entries, e)
	}
	return entries
}

// Len returns the number of recorded lookups.
func (s *Store) Len() int {
	return len(s.seen)
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}
