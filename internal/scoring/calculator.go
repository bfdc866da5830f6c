package scoring

// WeightedScore turns one ticket's category-name -> rating map into a
// single 0-100 percentage using the category weights from the snapshot.
// Only categories present in both the input and the snapshot contribute.
// A zero total weight yields 0, which callers treat as a degenerate case,
// not an error.
func WeightedScore(ratings map[string]int, categories []Category) (float64, error) {
	if len(ratings) == 0 {
		return 0, InvalidInputf("ratings map must not be nil or empty")
	}
	for name, rating := range ratings {
		if rating < 1 || rating > 5 {
			return 0, InvalidInputf("invalid rating %d for category %q, must be within [1,5]", rating, name)
		}
	}

	var totalWeight, weightedSum float64
	for _, c := range categories {
		rating, ok := ratings[c.Name]
		if !ok {
			continue
		}
		totalWeight += c.Weight
		weightedSum += float64(rating) * c.Weight
	}

	if totalWeight == 0 {
		return 0, nil
	}
	return Round2((weightedSum / (totalWeight * 5)) * 100), nil
}
