// Package shelf keeps a reader's book list in memory and mirrors it to a
// local storage slot after every change. It never talks to the API server.
package shelf

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/snnyvrz/readinglist/internal/model"
)

// SlotKey names the storage slot holding the serialized list.
const SlotKey = "personalBooks"

type Book struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Author string       `json:"author"`
	Genre  string       `json:"genre"`
	Rating int          `json:"rating"`
	Status model.Status `json:"status"`
	Notes  string       `json:"notes"`
}

// Shelf is not safe for concurrent use.
type Shelf struct {
	storage Storage
	logger  *log.Logger
	now     func() time.Time
	books   []Book
	lastID  int64
}

type Option func(*Shelf)

func WithLogger(l *log.Logger) Option {
	return func(s *Shelf) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Shelf) { s.now = now }
}

// New builds a shelf and loads the list from storage. Storage or decode
// failures are logged and leave the shelf empty.
func New(storage Storage, opts ...Option) *Shelf {
	s := &Shelf{
		storage: storage,
		logger:  log.New(os.Stderr, "shelf: ", log.LstdFlags),
		now:     time.Now,
		books:   []Book{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load()
	return s
}

func (s *Shelf) load() {
	raw, ok, err := s.storage.GetItem(SlotKey)
	if err != nil {
		s.logger.Printf("error loading books: %v", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Printf("error loading books: %v", err)
		return
	}
	if _, isArray := decoded.([]any); !isArray {
		return
	}

	var books []Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		s.logger.Printf("error loading books: %v", err)
		return
	}

	s.books = books
	for _, b := range books {
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}
}

func (s *Shelf) save() {
	b, err := json.Marshal(s.books)
	if err != nil {
		s.logger.Printf("error saving books: %v", err)
		return
	}
	if err := s.storage.SetItem(SlotKey, string(b)); err != nil {
		s.logger.Printf("error saving books: %v", err)
	}
}

// Books returns a copy of the list in insertion order.
func (s *Shelf) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Shelf) Len() int {
	return len(s.books)
}

func (s *Shelf) Find(id int64) (Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// Add appends a book built from the form and resets the form. It does
// nothing and returns false when the title or author is blank.
func (s *Shelf) Add(f *Form) (Book, bool) {
	title := strings.TrimSpace(f.Title)
	author := strings.TrimSpace(f.Author)
	if title == "" || author == "" {
		return Book{}, false
	}

	book := Book{
		ID:     s.nextID(),
		Title:  title,
		Author: author,
		Genre:  f.Genre,
		Rating: f.Rating,
		Status: f.Status,
		Notes:  strings.TrimSpace(f.Notes),
	}

	s.books = append(s.books, book)
	s.save()

	f.Reset()
	return book, true
}

// nextID derives an id from the clock in milliseconds, moving past the last
// issued id when two adds land in the same millisecond.
func (s *Shelf) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Remove drops the book with the given id. Unknown ids leave the list as is.
func (s *Shelf) Remove(id int64) {
	kept := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.books = kept
	s.save()
}

// Toggle flips a book between Want to Read and Read. Currently Reading
// collapses to Want to Read.
func (s *Shelf) Toggle(id int64) {
	next := make([]Book, len(s.books))
	for i, b := range s.books {
		if b.ID == id {
			b.Status = ToggledStatus(b.Status)
		}
		next[i] = b
	}
	s.books = next
	s.save()
}

func ToggledStatus(st model.Status) model.Status {
	if st == model.StatusWantToRead {
		return model.StatusRead
	}
	return model.StatusWantToRead
}

// Filter returns the books whose title, author or genre contains term,
// ignoring case. An empty term matches every book.
func (s *Shelf) Filter(term string) []Book {
	needle := strings.ToLower(term)

	out := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		if matches(b, needle) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Book, needle string) bool {
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Author), needle) ||
		strings.Contains(strings.ToLower(b.Genre), needle)
}

// EmptyMessage explains an empty listing: either nothing has been added yet
// or the search matched nothing. It returns "" when something is shown.
func EmptyMessage(total, shown int) string {
	switch {
	case shown > 0:
		return ""
	case total == 0:
		return "Your book collection is empty. Add your first book to get started!"
	default:
		return "No books match your search. Try different keywords."
	}
}
