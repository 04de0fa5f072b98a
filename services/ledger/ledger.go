package ledger

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"tripdesk/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrBookingNotFound is returned when a booking id matches no ledger entry.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidPatch is returned when a patch document fails to decode.
	ErrInvalidPatch = errors.New("invalid booking patch")
)

// Ledger is the process-lifetime store of bookings and reviews for one
// catalog domain. It is constructed once and injected into handlers; nothing
// here survives a restart. The display sequence number comes from a counter
// incremented under the same lock as the append, so two interleaved
// creations can never observe the same value.
type Ledger struct {
	mu         sync.Mutex
	codePrefix string
	refPrefix  string
	seq        int
	bookings   []*models.Booking
	reviews    map[string][]models.Review
}

// NewLedger creates an empty ledger. codePrefix feeds the sequence display
// code (e.g. "GDB-" yields "GDB-001"); refPrefix feeds booking references.
func NewLedger(codePrefix, refPrefix string) *Ledger {
	return &Ledger{
		codePrefix: codePrefix,
		refPrefix:  refPrefix,
		reviews:    make(map[string][]models.Review),
	}
}

// AppendBooking assigns identity, reference and creation time, then appends
// the entry. The caller has already validated the payload and snapshotted
// the subject record.
func (l *Ledger) AppendBooking(b *models.Booking, date string) *models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	b.BookingID = fmt.Sprintf("%s%03d", l.codePrefix, l.seq)
	b.BookingReference = NewBookingReference(l.refPrefix, date)
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	l.bookings = append(l.bookings, b)
	return b
}

// ListBookings returns entries matching an exact status and an inclusive
// date range; empty filters match everything.
func (l *Ledger) ListBookings(status, dateFrom, dateTo string) []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []models.Booking{}
	for _, b := range l.bookings {
		if status != "" && b.Status != status {
			continue
		}
		if dateFrom != "" && b.Date() < dateFrom {
			continue
		}
		if dateTo != "" && b.Date() > dateTo {
			continue
		}
		out = append(out, *b)
	}
	return out
}

// GetBooking returns one entry by its display id.
func (l *Ledger) GetBooking(id string) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.bookings {
		if b.BookingID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBookingNotFound
}

// UpdateBooking merges the patch document into the entry and stamps the
// update time. Unknown patch fields are discarded. The merge is applied to a
// deep copy and swapped in only when the whole patch decodes, so a rejected
// patch never leaves the entry half-mutated.
func (l *Ledger) UpdateBooking(id string, patch []byte) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.bookings {
		if b.BookingID != id {
			continue
		}
		snapshot, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		var updated models.Booking
		if err := json.Unmarshal(snapshot, &updated); err != nil {
			return nil, err
		}
		if len(patch) > 0 {
			if err := json.Unmarshal(patch, &updated); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
			}
		}
		updated.BookingID = id // identity is not patchable
		updated.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		*b = updated
		copied := updated
		return &copied, nil
	}
	return nil, ErrBookingNotFound
}

// DeleteBooking removes the entry entirely; a deleted booking is simply
// absent, not marked cancelled.
func (l *Ledger) DeleteBooking(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, b := range l.bookings {
		if b.BookingID == id {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// BookingCount reports the current ledger size.
func (l *Ledger) BookingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

// ReviewsFor returns a subject's reviews, seeding one synthetic entry on the
// first read when none exist yet.
func (l *Ledger) ReviewsFor(subjectID string, seed func() models.Review) []models.Review {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reviewsLocked(subjectID, seed)
}

// AddReview appends a review for the subject, seeding first if needed.
func (l *Ledger) AddReview(subjectID string, seed func() models.Review, review models.Review) models.Review {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reviewsLocked(subjectID, seed)
	l.reviews[subjectID] = append(l.reviews[subjectID], review)
	return review
}

func (l *Ledger) reviewsLocked(subjectID string, seed func() models.Review) []models.Review {
	if _, ok := l.reviews[subjectID]; !ok && seed != nil {
		l.reviews[subjectID] = []models.Review{seed()}
	}
	return l.reviews[subjectID]
}

// Summarize aggregates reviews into the response shape: average rating plus
// a 1-5 distribution bucketed by rounded rating.
func Summarize(reviews []models.Review) models.ReviewSummary {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := 0.0
	for _, review := range reviews {
		sum += review.Rating
		bucket := int(math.Round(review.Rating))
		if _, ok := distribution[bucket]; ok {
			distribution[bucket]++
		}
	}

	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(sum/float64(len(reviews))*100) / 100
	}

	return models.ReviewSummary{
		Reviews:            reviews,
		TotalReviews:       len(reviews),
		AverageRating:      average,
		RatingDistribution: distribution,
	}
}
