// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Comment is a customer review of a product: free text plus a 1-5 star rating.
type Comment struct {
	ID        uuid.UUID // The unique ID of this comment.
	UserID    uuid.UUID // The author's user ID.
	ProductID uuid.UUID // The reviewed product's ID.
	Text      string    // The review body.
	Rating    int       // Star rating, 1 to 5.
	CreatedAt time.Time // Timestamp of when the comment was posted.

	// Author display fields, denormalized from the users table on read.
	AuthorFirstName string
	AuthorLastName  string
}

// IsRatingValid reports whether the star rating is within the allowed 1-5 range.
func (c *Comment) IsRatingValid() bool {
	return c.Rating >= 1 && c.Rating <= 5
}

// RoundRating rounds an average rating to one decimal place, the precision
// stored on the product row and shown in listings.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// AverageRating computes the mean of the given star ratings rounded to one
// decimal. An empty slice yields 0, the "unrated" value.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}

	return RoundRating(float64(sum) / float64(len(ratings)))
}
