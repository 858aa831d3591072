// Package seed fills an empty database with a starter book catalog so a
// fresh deployment has a browsable marketplace.
package seed

import (
	"context"
	"fmt"

	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// seedSellerID is the synthetic platform account that owns seeded listings
const seedSellerID = 1

var starterBooks = []models.Book{
	{Title: "Concepts of Physics Vol 1", Author: "H.C. Verma", Subject: "Physics", Condition: models.BookConditionGood, PriceRupees: 250, MRPRupees: 460, City: "Delhi", Description: "Standard JEE preparation text, lightly annotated."},
	{Title: "Concepts of Physics Vol 2", Author: "H.C. Verma", Subject: "Physics", Condition: models.BookConditionLikeNew, PriceRupees: 300, MRPRupees: 475, City: "Delhi"},
	{Title: "Mathematics for Class 12", Author: "R.D. Sharma", Subject: "Mathematics", Condition: models.BookConditionGood, PriceRupees: 350, MRPRupees: 650, City: "Mumbai"},
	{Title: "Objective NCERT at your Fingertips - Biology", Author: "MTG Editorial Board", Subject: "Biology", Condition: models.BookConditionNew, PriceRupees: 500, MRPRupees: 750, City: "Kota", Description: "NEET revision companion, current edition."},
	{Title: "Modern ABC of Chemistry Class 11", Author: "S.P. Jauhar", Subject: "Chemistry", Condition: models.BookConditionFair, PriceRupees: 150, MRPRupees: 525, City: "Pune"},
	{Title: "Wren & Martin High School English Grammar", Author: "P.C. Wren", Subject: "English", Condition: models.BookConditionGood, PriceRupees: 120, MRPRupees: 290, City: "Chennai"},
}

// Books inserts the starter catalog when the books table is empty. Reruns
// on a populated database do nothing.
func Books(ctx context.Context, bookRepo *repositories.BookRepository) error {
	count, err := bookRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check book count: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range starterBooks {
		book := starterBooks[i]
		book.SellerID = seedSellerID
		if _, err := bookRepo.Create(ctx, &book); err != nil {
			return fmt.Errorf("failed to seed book %q: %w", book.Title, err)
		}
	}

	logger.Info().Int("count", len(starterBooks)).Msg("Seeded starter book catalog")
	return nil
}
