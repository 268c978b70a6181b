package domain

import "strconv"

// FirstEmployeeNumber is the number assigned to the first hire of a company.
const FirstEmployeeNumber = 101

// IDSequence hands out employee IDs of the form <prefix><n>. The counter only
// ever moves forward, so IDs are unique for the life of the sequence.
type IDSequence struct {
	next int
}

func NewIDSequence(start int) *IDSequence {
	return &IDSequence{next: start}
}

// Next returns prefix+counter and advances the counter.
func (s *IDSequence) Next(prefix string) string {
	id := prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

// Peek returns the number the next call to Next will use.
func (s *IDSequence) Peek() int {
	return s.next
}
