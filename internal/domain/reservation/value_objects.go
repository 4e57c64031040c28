package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

const DateLayout = "2006-01-02"

// StayRange is a half-open date interval [checkIn, checkOut). The check-out
// date itself is not occupied, so back-to-back stays on the same unit do not
// collide.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayRange{}, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayRange{}, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	return NewStayRange(in, out)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / (24 * time.Hour))
}

// Overlaps reports whether the two half-open intervals share any night.
// Adjacency (one ending exactly when the other starts) is not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s StayRange) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(DateLayout), s.checkOut.Format(DateLayout))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}
