package service

import (
	"math/rand"
	"time"
)

// Clock supplies the current time. Services take one so tests can pin dates.
type Clock func() time.Time

// SequenceSource yields the numeric part of generated bill numbers, patient
// registration numbers and doctor codes. Next returns a value in [1, max].
type SequenceSource interface {
	Next(max int) int
}

type randomSequence struct{}

// NewRandomSequence returns the default SequenceSource backed by math/rand
func NewRandomSequence() SequenceSource {
	return randomSequence{}
}

func (randomSequence) Next(max int) int {
	return rand.Intn(max) + 1
}
