package model

// Status is the reading state of a book.
type Status string

const (
	StatusWantToRead       Status = "Want to Read"
	StatusCurrentlyReading Status = "Currently Reading"
	StatusRead             Status = "Read"
)

var statuses = []Status{StatusWantToRead, StatusCurrentlyReading, StatusRead}

// Statuses returns the valid statuses in the order a form offers them.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
