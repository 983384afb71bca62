package catalog

// defaultPerfumes is the built-in product set served when no training data
// file exists, so the service stays conversational instead of failing.
func defaultPerfumes() []Perfume {
	return []Perfume{
		{ID: 1, Name: "Floral Dream", Price: 45.99, Category: "floral"},
		{ID: 2, Name: "Woody Essence", Price: 59.99, Category: "woody"},
		{ID: 3, Name: "Citrus Splash", Price: 39.99, Category: "citrus"},
	}
}
