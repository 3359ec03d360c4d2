package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const chunkBucket = "chunks"

// Chunking mirrors the splitter settings used for the reference document
// corpus: ~1000-character chunks with 150 characters of overlap.
const (
	chunkSize    = 1000
	chunkOverlap = 150
)

// Chunk is one stored slice of a source document.
type Chunk struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// SearchHit pairs a chunk with its relevance score in [0, 1].
type SearchHit struct {
	Chunk Chunk
	Score float64
}

// TextLoader yields the text content of a document file.
type TextLoader interface {
	LoadText(path string) (string, error)
}

// Store persists document chunks in a local bbolt database and serves
// term-overlap relevance search over them.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(chunkBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddDocument chunks the document text and stores every chunk under a fresh
// id. Returns the number of chunks stored.
func (s *Store) AddDocument(source, text string) (int, error) {
	chunks := splitText(text, chunkSize, chunkOverlap)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(chunkBucket))
		for i, chunkText := range chunks {
			chunk := Chunk{
				ID:      uuid.NewString(),
				Source:  source,
				Ordinal: i,
				Text:    chunkText,
			}
			data, err := json.Marshal(chunk)
			if err != nil {
				return fmt.Errorf("marshaling chunk: %w", err)
			}
			if err := bucket.Put([]byte(chunk.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// IngestDirectory walks dir, loads every supported document through the
// loader, and stores its chunks. Unreadable files are logged and skipped.
// Returns the number of files ingested and chunks stored.
func (s *Store) IngestDirectory(dir string, loader TextLoader) (int, int, error) {
	supported := map[string]bool{".txt": true, ".md": true, ".pdf": true}

	var files, chunks int
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supported[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		text, err := loader.LoadText(path)
		if err != nil {
			log.Printf("Skipping unreadable file: %s (%v)", path, err)
			return nil
		}

		stored, err := s.AddDocument(path, text)
		if err != nil {
			return fmt.Errorf("storing %s: %w", path, err)
		}
		files++
		chunks += stored
		return nil
	})
	if err != nil {
		return files, chunks, err
	}
	return files, chunks, nil
}

// Count returns the number of stored chunks.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket([]byte(chunkBucket)).Stats().KeyN
		return nil
	})
	return count, err
}

// Search scores every chunk by query-term overlap (the fraction of query
// terms present in the chunk) and returns the top k hits with a positive
// score, best first. Ties are broken by source then ordinal so results are
// stable.
func (s *Store) Search(query string, k int) ([]SearchHit, error) {
	terms := queryTerms(query)
	if len(terms) == 0 || k < 1 {
		return nil, nil
	}

	var hits []SearchHit
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(chunkBucket)).ForEach(func(_, value []byte) error {
			var chunk Chunk
			if err := json.Unmarshal(value, &chunk); err != nil {
				return fmt.Errorf("unmarshaling chunk: %w", err)
			}
			if score := scoreChunk(terms, chunk.Text); score > 0 {
				hits = append(hits, SearchHit{Chunk: chunk, Score: score})
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		if hits[i].Chunk.Source != hits[j].Chunk.Source {
			return hits[i].Chunk.Source < hits[j].Chunk.Source
		}
		return hits[i].Chunk.Ordinal < hits[j].Chunk.Ordinal
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// queryTerms lowercases the query and keeps distinct terms of three or more
// letters/digits, in order.
func queryTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	seen := make(map[string]bool)
	var terms []string
	for _, field := range fields {
		if len(field) < 3 || seen[field] {
			continue
		}
		seen[field] = true
		terms = append(terms, field)
	}
	return terms
}

func scoreChunk(terms []string, text string) float64 {
	lower := strings.ToLower(text)
	matched := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

// splitText cuts text into chunks of roughly size characters with the given
// overlap, preferring to cut on whitespace so terms stay intact.
func splitText(text string, size, overlap int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			if chunk := strings.TrimSpace(string(runes[start:])); chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := end
		for cut > start && !isSpaceRune(runes[cut]) {
			cut--
		}
		if cut == start {
			cut = end
		}

		if chunk := strings.TrimSpace(string(runes[start:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
