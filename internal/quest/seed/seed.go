// Package seed holds the built-in reference data: the culture catalog, its
// question bank, and the achievement definitions. The memory store loads it at
// boot; cmd/seed writes it into a durable database.
package seed

import (
	"github.com/GenKoKo/culture-quest/internal/quest/models"
	"github.com/GenKoKo/culture-quest/internal/quest/storage"
)

// Apply inserts the full catalog into the given store.
func Apply(store storage.Store) error {
	cultures := Cultures()
	for i := range cultures {
		if err := store.CreateCulture(&cultures[i]); err != nil {
			return err
		}
	}

	questions := Questions()
	for i := range questions {
		if err := store.CreateQuestion(&questions[i]); err != nil {
			return err
		}
	}

	achievements := Achievements()
	for i := range achievements {
		if err := store.CreateAchievement(&achievements[i]); err != nil {
			return err
		}
	}
	return nil
}

// Cultures returns the culture catalog. Culture ids are assigned by the store.
func Cultures() []models.Culture {
	return []models.Culture{
		{
			Name:           "Japanese",
			Country:        "Japan",
			Flag:           "🇯🇵",
			ImageURL:       "https://images.unsplash.com/photo-1528164344705-47542687000d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Explore traditions, cuisine, festivals, and modern culture of Japan",
			TotalQuestions: 8,
			EstimatedTime:  15,
		},
		{
			Name:           "Indian",
			Country:        "India",
			Flag:           "🇮🇳",
			ImageURL:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Discover diverse traditions, languages, festivals, and rich heritage",
			TotalQuestions: 8,
			EstimatedTime:  18,
		},
		{
			Name:           "Brazilian",
			Country:        "Brazil",
			Flag:           "🇧🇷",
			ImageURL:       "https://images.unsplash.com/photo-1516306580123-e6e52b1b7b5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Experience carnival, music, dance, cuisine, and vibrant lifestyle",
			TotalQuestions: 8,
			EstimatedTime:  12,
		},
		{
			Name:           "Egyptian",
			Country:        "Egypt",
			Flag:           "🇪🇬",
			ImageURL:       "https://images.unsplash.com/photo-1568322445389-f64ac2515020?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Uncover ancient history, pharaohs, pyramids, and modern Egypt",
			TotalQuestions: 8,
			EstimatedTime:  20,
		},
		{
			Name:           "Chinese",
			Country:        "China",
			Flag:           "🇨🇳",
			ImageURL:       "https://images.unsplash.com/photo-1508804185872-d7badad00f7d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Learn about dynasties, philosophy, arts, cuisine, and traditions",
			TotalQuestions: 8,
			EstimatedTime:  16,
		},
		{
			Name:           "Mexican",
			Country:        "Mexico",
			Flag:           "🇲🇽",
			ImageURL:       "https://images.unsplash.com/photo-1518638150340-f706e86654de?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Description:    "Explore festivals, cuisine, art, history, and vibrant traditions",
			TotalQuestions: 8,
			EstimatedTime:  14,
		},
	}
}

// Questions returns the question bank. CultureID values index into the catalog
// order returned by Cultures, starting at 1.
func Questions() []models.Question {
	return []models.Question{
		// Japanese
		{
			CultureID:     1,
			Type:          models.QuestionVisual,
			Question:      "Which traditional Japanese art form is shown in this image?",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Options:       models.OptionList{"Origami (Paper Folding)", "Ikebana (Flower Arranging)", "Shodō (Calligraphy)", "Raku (Pottery)"},
			CorrectAnswer: "Origami (Paper Folding)",
			CulturalFact:  "Origami, meaning 'folding paper,' is a traditional Japanese art form that transforms flat sheets of paper into beautiful sculptures without cuts or glue. The practice dates back to the 6th century and teaches patience, precision, and creativity.",
			Difficulty:    1,
		},
		{
			CultureID:     1,
			Type:          models.QuestionTrivia,
			Question:      "What is the traditional Japanese tea ceremony called?",
			Options:       models.OptionList{"Chanoyu", "Sushi", "Kabuki", "Haiku"},
			CorrectAnswer: "Chanoyu",
			CulturalFact:  "Chanoyu, also known as the Way of Tea, is a Japanese cultural activity involving the ceremonial preparation and presentation of matcha tea. It embodies the principles of harmony, respect, purity, and tranquility.",
			Difficulty:    2,
		},
		{
			CultureID:     1,
			Type:          models.QuestionTrivia,
			Question:      "Which Japanese festival celebrates the cherry blossom season?",
			Options:       models.OptionList{"Hanami", "Obon", "Tanabata", "Shichi-Go-San"},
			CorrectAnswer: "Hanami",
			CulturalFact:  "Hanami literally means 'flower viewing' and is the Japanese traditional custom of enjoying the transient beauty of flowers, particularly cherry blossoms. People gather for picnics under blooming sakura trees.",
			Difficulty:    1,
		},
		{
			CultureID:     1,
			Type:          models.QuestionVisual,
			Question:      "What type of traditional Japanese architecture is shown?",
			ImageURL:      "https://images.unsplash.com/photo-1480796927426-f609979314bd?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Options:       models.OptionList{"Buddhist Temple", "Shinto Shrine", "Imperial Palace", "Tea House"},
			CorrectAnswer: "Shinto Shrine",
			CulturalFact:  "Shinto shrines are sacred spaces in Japanese Shintoism, characterized by their distinctive torii gates, clean architectural lines, and natural settings. They serve as dwelling places for kami (spirits or gods).",
			Difficulty:    2,
		},

		// Indian
		{
			CultureID:     2,
			Type:          models.QuestionVisual,
			Question:      "Which famous Indian monument is shown in this image?",
			ImageURL:      "https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Options:       models.OptionList{"Red Fort", "Taj Mahal", "Hawa Mahal", "Qutub Minar"},
			CorrectAnswer: "Taj Mahal",
			CulturalFact:  "The Taj Mahal is a white marble mausoleum built by Mughal emperor Shah Jahan for his wife Mumtaz Mahal. It's considered one of the finest examples of Mughal architecture and is a UNESCO World Heritage Site.",
			Difficulty:    1,
		},
		{
			CultureID:     2,
			Type:          models.QuestionTrivia,
			Question:      "What is the festival of lights called in India?",
			Options:       models.OptionList{"Holi", "Diwali", "Durga Puja", "Navratri"},
			CorrectAnswer: "Diwali",
			CulturalFact:  "Diwali, also known as Deepavali, is the Hindu festival of lights celebrated across India. It symbolizes the victory of light over darkness and good over evil, lasting five days with oil lamps, fireworks, and sweets.",
			Difficulty:    1,
		},

		// Brazilian
		{
			CultureID:     3,
			Type:          models.QuestionTrivia,
			Question:      "What is Brazil's most famous carnival celebration city?",
			Options:       models.OptionList{"São Paulo", "Rio de Janeiro", "Salvador", "Recife"},
			CorrectAnswer: "Rio de Janeiro",
			CulturalFact:  "Rio de Janeiro's Carnival is the world's largest carnival celebration, attracting millions of participants and spectators. It features elaborate parades, samba schools, colorful costumes, and street parties called 'blocos'.",
			Difficulty:    1,
		},
		{
			CultureID:     3,
			Type:          models.QuestionTrivia,
			Question:      "Which dance originated in Brazil?",
			Options:       models.OptionList{"Tango", "Samba", "Salsa", "Flamenco"},
			CorrectAnswer: "Samba",
			CulturalFact:  "Samba is a Brazilian dance and music genre with African and European influences. It became the signature dance of Brazilian Carnival and represents the joyful, rhythmic spirit of Brazilian culture.",
			Difficulty:    1,
		},

		// Egyptian
		{
			CultureID:     4,
			Type:          models.QuestionVisual,
			Question:      "Which ancient Egyptian structure is shown?",
			ImageURL:      "https://images.unsplash.com/photo-1539650116574-75c0c6d73f6e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Options:       models.OptionList{"Great Pyramid of Giza", "Temple of Karnak", "Abu Simbel", "Valley of the Kings"},
			CorrectAnswer: "Great Pyramid of Giza",
			CulturalFact:  "The Great Pyramid of Giza is the oldest and largest of the three pyramids in the Giza pyramid complex. Built around 2580-2510 BC for Pharaoh Khufu, it was the tallest man-made structure in the world for over 3,800 years.",
			Difficulty:    1,
		},
		{
			CultureID:     4,
			Type:          models.QuestionTrivia,
			Question:      "What was the ancient Egyptian writing system called?",
			Options:       models.OptionList{"Cuneiform", "Hieroglyphics", "Sanskrit", "Phoenician"},
			CorrectAnswer: "Hieroglyphics",
			CulturalFact:  "Egyptian hieroglyphics were a formal writing system used by ancient Egyptians, combining logographic and alphabetic elements. The word 'hieroglyph' comes from Greek meaning 'sacred carving'.",
			Difficulty:    2,
		},

		// Chinese
		{
			CultureID:     5,
			Type:          models.QuestionVisual,
			Question:      "What famous Chinese landmark is shown?",
			ImageURL:      "https://images.unsplash.com/photo-1508804185872-d7badad00f7d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Options:       models.OptionList{"Forbidden City", "Great Wall of China", "Temple of Heaven", "Terracotta Army"},
			CorrectAnswer: "Great Wall of China",
			CulturalFact:  "The Great Wall of China is a series of fortifications built to protect Chinese states from northern invasions. Stretching over 13,000 miles, it's one of the most impressive architectural feats in human history.",
			Difficulty:    1,
		},
		{
			CultureID:     5,
			Type:          models.QuestionTrivia,
			Question:      "What is the Chinese New Year also known as?",
			Options:       models.OptionList{"Dragon Festival", "Spring Festival", "Lantern Festival", "Moon Festival"},
			CorrectAnswer: "Spring Festival",
			CulturalFact:  "Chinese New Year, also called Spring Festival, is the most important traditional Chinese holiday. It marks the beginning of the lunar new year and is celebrated with family reunions, fireworks, and red decorations for good luck.",
			Difficulty:    1,
		},

		// Mexican
		{
			CultureID:     6,
			Type:          models.QuestionTrivia,
			Question:      "What is the Day of the Dead called in Spanish?",
			Options:       models.OptionList{"Cinco de Mayo", "Día de los Muertos", "Las Posadas", "Quinceañera"},
			CorrectAnswer: "Día de los Muertos",
			CulturalFact:  "Día de los Muertos (Day of the Dead) is a Mexican holiday celebrating deceased loved ones. Families create altars (ofrendas) with photos, favorite foods, and marigold flowers to welcome spirits back to the world of the living.",
			Difficulty:    1,
		},
		{
			CultureID:     6,
			Type:          models.QuestionTrivia,
			Question:      "Which ancient civilization built the pyramid at Chichen Itza?",
			Options:       models.OptionList{"Aztecs", "Maya", "Olmecs", "Zapotecs"},
			CorrectAnswer: "Maya",
			CulturalFact:  "Chichen Itza was built by the Maya civilization and is one of the New Seven Wonders of the World. The main pyramid, El Castillo, demonstrates the Maya's advanced knowledge of astronomy and mathematics.",
			Difficulty:    2,
		},
	}
}

// Achievements returns the achievement definitions.
func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			Title:       "Cultural Explorer",
			Description: "Complete your first cultural challenge",
			Points:      100,
			Icon:        "🌍",
			Requirement: models.RequireFirstChallenge,
		},
		{
			Title:       "Perfect Score",
			Description: "Get 100% accuracy on any culture quiz",
			Points:      250,
			Icon:        "🌟",
			Requirement: models.RequirePerfectScore,
		},
		{
			Title:       "Culture Master",
			Description: "Complete all challenges for any culture",
			Points:      500,
			Icon:        "🏆",
			Requirement: models.RequireCompleteCulture,
		},
		{
			Title:       "Global Citizen",
			Description: "Explore 5 different cultures",
			Points:      750,
			Icon:        "🌏",
			Requirement: models.RequireFiveCultures,
		},
		{
			Title:       "Speed Learner",
			Description: "Complete a quiz in under 5 minutes",
			Points:      200,
			Icon:        "⚡",
			Requirement: models.RequireSpeedCompletion,
		},
	}
}
