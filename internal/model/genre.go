package model

const DefaultGenre = "Fiction"

var genres = []string{
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Fantasy",
	"Mystery",
	"Biography",
	"Self-Help",
	"History",
	"Science",
	"Technology",
}

// Genres returns the genres offered when adding a book. The store itself
// accepts any genre text.
func Genres() []string {
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}

func KnownGenre(g string) bool {
	for _, v := range genres {
		if v == g {
			return true
		}
	}
	return false
}
