package shelf

import "github.com/snnyvrz/readinglist/internal/model"

// Form holds the values of the add-book form.
type Form struct {
	Title  string
	Author string
	Genre  string
	Rating int
	Status model.Status
	Notes  string
}

func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *Form) Reset() {
	f.Title = ""
	f.Author = ""
	f.Genre = model.DefaultGenre
	f.Rating = model.DefaultRating
	f.Status = model.StatusWantToRead
	f.Notes = ""
}
