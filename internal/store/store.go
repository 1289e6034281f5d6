package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"agronomy-services-api-server/internal/logger"

	"go.uber.org/zap"
)

var (
	// ErrDuplicateID is returned when inserting a document whose id already exists.
	ErrDuplicateID = errors.New("document id already exists")
	// ErrNotFound is returned when updating a document whose id is absent.
	ErrNotFound = errors.New("document not found")
)

// Document is one record: a mapping of field name to value.
type Document map[string]any

// Predicate selects documents during scans.
type Predicate func(Document) bool

// FindOptions controls sorting and pagination for FindMany.
type FindOptions struct {
	SortKey  string
	SortDesc bool
	Page     int
	PageSize int
}

// PageResult is the pagination envelope returned by FindMany.
type PageResult struct {
	Items      []Document `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

// Store holds all collections in memory and rewrites them to a single JSON
// file after every mutation. All mutations are serialized behind one mutex;
// the process is the only writer of the backing file.
type Store struct {
	mu          sync.Mutex
	path        string
	collections map[string][]Document
}

// New creates a store backed by the JSON file at path. Call Load before use.
func New(path string) *Store {
	return &Store{
		path:        path,
		collections: make(map[string][]Document),
	}
}

// Load reads the entire backing file into memory. A missing or unreadable
// file is not fatal: the store starts with empty collections.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read store file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		s.collections = make(map[string][]Document)
		return
	}

	var collections map[string][]Document
	if err := json.Unmarshal(data, &collections); err != nil {
		logger.Warn("could not parse store file, starting empty",
			zap.String("path", s.path), zap.Error(err))
		s.collections = make(map[string][]Document)
		return
	}
	if collections == nil {
		// A file holding the literal `null` unmarshals into a nil map.
		collections = make(map[string][]Document)
	}
	s.collections = collections
	logger.Info("store loaded", zap.String("path", s.path), zap.Int("collections", len(collections)))
}

// Insert appends a document to the named collection. The document must carry
// an "id" field unique within the collection.
func (s *Store) Insert(collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := docID(doc)
	for _, existing := range s.collections[collection] {
		if docID(existing) == id {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateID, collection, id)
		}
	}

	s.collections[collection] = append(s.collections[collection], doc)
	s.persist()
	return doc, nil
}

// FindOne returns the first document matching pred, or nil if none matches.
// Zero matches is not an error; the caller decides not-found handling.
func (s *Store) FindOne(collection string, pred Predicate) Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if pred(doc) {
			return doc
		}
	}
	return nil
}

// FindMany filters the collection, optionally sorts by a named field, then
// slices out one page. Page and PageSize below 1 default to 1 and the full
// result set; an out-of-range page yields empty items, not an error.
func (s *Store) FindMany(collection string, pred Predicate, opts FindOptions) PageResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Document
	for _, doc := range s.collections[collection] {
		if pred == nil || pred(doc) {
			matched = append(matched, doc)
		}
	}

	if opts.SortKey != "" {
		key := opts.SortKey
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i][key], matched[j][key])
			if opts.SortDesc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(matched)
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = total
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := matched[start:end]
	if items == nil {
		items = []Document{}
	}

	return PageResult{Items: items, Total: total, Page: page, TotalPages: totalPages}
}

// Count returns the number of documents in the collection.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// Update shallow-merges patch into the document with the given id. Patch keys
// overwrite top-level keys; nested objects in the patch replace the stored
// nested object wholesale. Stamps updatedAt and persists.
func (s *Store) Update(collection, id string, patch Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if docID(doc) != id {
			continue
		}
		for k, v := range patch {
			doc[k] = v
		}
		doc["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
		s.persist()
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
}

// Delete removes the document with the given id and reports whether a removal
// occurred. Deleting an absent id is not an error.
func (s *Store) Delete(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if docID(doc) == id {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Persist forces a write of the whole store to the backing file.
func (s *Store) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist()
}

// persist serializes every collection and rewrites the backing file via a
// temp file + rename. A write failure is logged, never propagated: the
// in-memory mutation stands for the remainder of the process lifetime.
// Callers must hold s.mu.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		logger.Error("store serialize failed", zap.Error(err))
		return
	}

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Error("store write failed", zap.String("path", tmp), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Error("store rename failed", zap.String("path", s.path), zap.Error(err))
	}
}

func docID(doc Document) string {
	id, _ := doc["id"].(string)
	return id
}

// compareValues orders two document field values for sorting. Numbers compare
// numerically, everything else by its string form; missing values sort first.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := fmt.Sprintf("%v", a)
	bs := fmt.Sprintf("%v", b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Encode converts a typed model into a Document via its JSON form.
func Encode(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode converts a Document back into a typed model via its JSON form.
func Decode(doc Document, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
