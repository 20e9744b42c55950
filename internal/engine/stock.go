package engine

// ValidateStock checks the draft's aggregated demand per product against
// availability.
//
// Demand is summed across ALL line items first: two lines requesting 3 units
// of a 5-unit product are both oversold even though neither exceeds the
// limit alone. Every line referencing an oversold product is annotated with
// the true available count; lines referencing other products are left
// untouched. Line items with no product selected or a non-positive quantity
// do not contribute demand.
//
// An empty result means the draft is within availability and submittable.
func ValidateStock(items []DraftLineItem, catalog CatalogSnapshot) []StockError {
	demand := make(map[string]int64, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}
		demand[item.ProductID] += int64(item.Quantity)
	}

	oversold := make(map[string]int32, len(demand))
	for productID, requested := range demand {
		product, ok := catalog[productID]
		if !ok {
			continue
		}
		if requested > int64(product.StockAvailable) {
			oversold[productID] = product.StockAvailable
		}
	}
	if len(oversold) == 0 {
		return nil
	}

	// Emit annotations in line order so results are independent of map
	// iteration.
	var errs []StockError
	for i, item := range items {
		if available, ok := oversold[item.ProductID]; ok && item.Quantity > 0 {
			errs = append(errs, StockError{LineIndex: i, ProductID: item.ProductID, Available: available})
		}
	}
	return errs
}
