package catalog

// SampleData returns the canonical sample training document used by the seed
// command and as a known-good fixture.
func SampleData() TrainingData {
	return TrainingData{
		Perfumes: []Perfume{
			{
				Name:        "Floral Dream",
				Category:    "floral",
				Notes:       []string{"Rose", "Jasmine", "Lily", "Peony"},
				Price:       45.99,
				Description: "A delicate floral bouquet perfect for daytime wear",
			},
			{
				Name:        "Woody Essence",
				Category:    "woody",
				Notes:       []string{"Sandalwood", "Cedar", "Patchouli", "Vetiver"},
				Price:       59.99,
				Description: "Rich woody fragrance with warm undertones",
			},
		},
		FAQs: []FAQ{
			{
				Question: "How long does perfume last?",
				Answer:   "Perfume longevity depends on concentration: Eau de Toilette lasts 3-4 hours, Eau de Parfum lasts 4-6 hours, and Parfum lasts 8+ hours.",
			},
			{
				Question: "What's the difference between EDP and EDT?",
				Answer:   "EDP (Eau de Parfum) has 15-20% fragrance oil and lasts longer. EDT (Eau de Toilette) has 5-15% oil and is lighter.",
			},
			{
				Question: "How should I store perfume?",
				Answer:   "Store perfume in a cool, dark place away from direct sunlight and temperature changes to preserve its scent.",
			},
		},
		Intents: []IntentDefinition{
			{
				Name:     "greeting",
				Patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon", "greetings"},
				Responses: []string{
					"Hello! Welcome to our perfume store! How can I help you today?",
					"Hi there! Looking for a new fragrance today?",
					"Welcome! I'm here to help you find the perfect perfume.",
				},
			},
			{
				Name: "recommendation",
				Patterns: []string{
					"recommend a perfume",
					"suggest a fragrance",
					"what should I buy",
					"help me choose",
					"what perfume is best",
					"can you recommend",
				},
				Responses: []string{
					"I'd be happy to recommend a perfume! What type of scents do you prefer?",
					"Let me suggest some fragrances for you. Do you like floral, woody, or citrus scents?",
					"I can help you choose! Tell me about your scent preferences.",
				},
			},
			{
				Name: "price_inquiry",
				Patterns: []string{
					"how much is",
					"price of",
					"cost",
					"what's the price",
					"how expensive is",
					"price for",
				},
				Responses: []string{
					"I can check the price for you. Which perfume are you interested in?",
					"Let me look up the price. Which fragrance would you like to know about?",
					"I'll check the cost for you. What's the name of the perfume?",
				},
			},
			{
				Name: "category_query",
				Patterns: []string{
					"floral perfumes",
					"woody fragrances",
					"citrus scents",
					"show me floral",
					"what woody perfumes",
					"oriental perfumes",
				},
				Responses: []string{
					"Let me show you those perfumes. Here's what we have in that category...",
					"I'll find those fragrances for you. Let me check our collection.",
					"Here are the perfumes in that category that we offer.",
				},
			},
		},
	}
}
