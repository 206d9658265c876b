package services

import (
	"eats/internal/core/domain/model/restaurant"
)

// PriceCalculator computes the line total for one dish with customer selections.
//
// Pricing rules:
//   - The total starts at the dish's base price.
//   - A selection whose name matches no declared option contributes zero.
//     Matching is deliberately permissive: unknown names are ignored, not rejected.
//   - If the matched option carries a flat price, that price is added and any
//     selected choice is ignored.
//   - Otherwise, if the selection names a choice, a matching declared choice
//     with a price adds that price; a missing or unpriced choice contributes zero.
//
// Example:
//
//	calc := services.NewPriceCalculator()
//	total, err := calc.LineTotal(dish, []restaurant.SelectedOption{
//	    {Name: "Spicy"},
//	    {Name: "Size", Choice: "L"},
//	})
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// LineTotal computes the price of one order line in minor currency units.
// The dish must be a properly constructed aggregate.
func (PriceCalculator) LineTotal(dish *restaurant.Dish, selections []restaurant.SelectedOption) (int64, error) {
	if err := dish.Validate(); err != nil {
		return 0, err
	}

	total := dish.Price()
	options := dish.Options()

	for _, selection := range selections {
		declared := findOption(options, selection.Name)
		if declared == nil {
			continue
		}

		if declared.Price != nil {
			total += *declared.Price
			continue
		}

		if selection.Choice == "" {
			continue
		}

		choice := findChoice(declared.Choices, selection.Choice)
		if choice == nil || choice.Price == nil {
			continue
		}
		total += *choice.Price
	}

	return total, nil
}

func findOption(options []restaurant.Option, name string) *restaurant.Option {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

func findChoice(choices []restaurant.Choice, name string) *restaurant.Choice {
	for i := range choices {
		if choices[i].Name == name {
			return &choices[i]
		}
	}
	return nil
}
