package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidateProducts checks the dataset invariants: non-empty unique ids,
// finite non-negative price, finite rating and non-negative review count. All violations are joined.
func ValidateProducts(ps []Product) error {
	var errs []error
	seen := make(map[string]struct{}, len(ps))

	for i, p := range ps {
		if strings.TrimSpace(p.ID) == "" {
			errs = append(errs, fmt.Errorf("product #%d: %w", i, ErrEmptyProductID))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateProductID))
		}
		seen[p.ID] = struct{}{}

		switch {
		case !isFinite(p.Price):
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, ErrNonFinitePrice))
		case p.Price < 0:
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, ErrNegativePrice))
		}
		if !isFinite(p.Rating) {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, ErrNonFiniteRating))
		}
		if p.Reviews < 0 {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, ErrNegativeReviews))
		}
	}

	return errors.Join(errs...)
}

// ValidateCategories checks that every descriptor carries an id.
func ValidateCategories(cs []Category) error {
	var errs []error
	for i, c := range cs {
		if strings.TrimSpace(c.ID) == "" {
			errs = append(errs, fmt.Errorf("category #%d: %w", i, ErrEmptyCategoryID))
		}
	}
	return errors.Join(errs...)
}

// UnknownCategories returns the category keys referenced by products that no
// descriptor declares, in first-seen order.
func UnknownCategories(ps []Product, cs []Category) []string {
	known := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		known[c.ID] = struct{}{}
	}

	var out []string
	reported := make(map[string]struct{})
	for _, p := range ps {
		if _, ok := known[p.Category]; ok {
			continue
		}
		if _, ok := reported[p.Category]; ok {
			continue
		}
		reported[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
