package catalog

import (
	"github.com/desertthunder/cinevault/internal/models"
	"github.com/shopspring/decimal"
)

// Seed returns the built-in catalog. Each call returns fresh slices.
func Seed() []models.Movie {
	return []models.Movie{
		{
			ID:           1,
			Title:        "Dune: Part Two",
			Overview:     "Follow the mythic journey of Paul Atreides as he unites with Chani and the Fremen while on a path of revenge against the conspirators who destroyed his family.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/8b8R8l88Qje9dn9OE8PY05Nxl1X.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/oUQjm6oEDsb5wVYjuZUH1GnvITC.jpg",
			ReleaseDate:  "2024-03-01",
			VoteAverage:  8.4,
			Price:        decimal.RequireFromString("19.99"),
			Genres:       []string{"Science Fiction", "Adventure"},
			Runtime:      166,
			Director:     "Denis Villeneuve",
			Starring:     []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson"},
			TrailerKey:   "Way3Dmt3ZxQ",
		},
		{
			ID:           2,
			Title:        "The Batman",
			Overview:     "When a sadistic serial killer begins murdering key political figures in Gotham, Batman is forced to investigate the city's hidden corruption and question his family's involvement.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/74xTEgt7R36Fpooo50r9T25onhq.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/5P8SmMzSNYikXpxil6BYzJ16611.jpg",
			ReleaseDate:  "2022-03-01",
			VoteAverage:  7.8,
			Price:        decimal.RequireFromString("14.99"),
			Genres:       []string{"Crime", "Mystery", "Thriller"},
			Runtime:      176,
			Director:     "Matt Reeves",
			Starring:     []string{"Robert Pattinson", "Zoë Kravitz", "Paul Dano"},
			TrailerKey:   "mqqft2x_Aa4",
		},
		{
			ID:           3,
			Title:        "Oppenheimer",
			Overview:     "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/rLb2cwF3Pazuxaj0sRXQ037tGI1.jpg",
			ReleaseDate:  "2023-07-19",
			VoteAverage:  8.2,
			Price:        decimal.RequireFromString("17.99"),
			Genres:       []string{"Drama", "History", "Thriller"},
			Runtime:      180,
			Director:     "Christopher Nolan",
			Starring:     []string{"Cillian Murphy", "Emily Blunt", "Matt Damon"},
			TrailerKey:   "uYPbbksJxIg",
		},
		{
			ID:           4,
			Title:        "Barbie",
			Overview:     "Barbie and Ken are having the time of their lives in the colorful and seemingly perfect world of Barbie Land. However, when they get a chance to go to the real world, they soon discover the joys and perils of living among humans.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/iuFNMS8U5cb6xfzi8Qzrd8jyeQ4.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/nHf61UzkfFno5X1ofIhugCPus2R.jpg",
			ReleaseDate:  "2023-07-19",
			VoteAverage:  7.2,
			Price:        decimal.RequireFromString("15.99"),
			Genres:       []string{"Comedy", "Adventure", "Fantasy"},
			Runtime:      114,
			Director:     "Greta Gerwig",
			Starring:     []string{"Margot Robbie", "Ryan Gosling", "America Ferrera"},
			TrailerKey:   "8zIf0XvoL9Y",
		},
		{
			ID:           5,
			Title:        "Poor Things",
			Overview:     "The incredible tale about the fantastical evolution of Bella Baxter, a young woman brought back to life by the brilliant and unorthodox scientist Dr. Godwin Baxter.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/kCGlIMHnOm8JPXq3rXM6c5wMxcT.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/5YZbUmjbMa3ClvSW1Wj3D6XGolb.jpg",
			ReleaseDate:  "2023-12-08",
			VoteAverage:  8.0,
			Price:        decimal.RequireFromString("18.99"),
			Genres:       []string{"Science Fiction", "Romance", "Comedy"},
			Runtime:      141,
			Director:     "Yorgos Lanthimos",
			Starring:     []string{"Emma Stone", "Mark Ruffalo", "Willem Dafoe"},
			TrailerKey:   "RlbR5N6veqw",
		},
		{
			ID:           6,
			Title:        "Challengers",
			Overview:     "Follows three players who knew each other when they were teenagers as they compete in a tennis tournament to be the world-famous grand slam winner, and reignite old rivalries on and off the court.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/jDdnDHWZvGqkxe1KSoJuMnqGYKZ.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/lwexJlmR6SMqEYdM7FpJfp5jw51.jpg",
			ReleaseDate:  "2024-04-26",
			VoteAverage:  7.5,
			Price:        decimal.RequireFromString("19.99"),
			Genres:       []string{"Drama", "Romance"},
			Runtime:      131,
			Director:     "Luca Guadagnino",
			Starring:     []string{"Zendaya", "Mike Faist", "Josh O'Connor"},
			TrailerKey:   "Wk8LGk4X_PU",
		},
		{
			ID:           7,
			Title:        "The Fall Guy",
			Overview:     "Colt Seavers, a battle-scarred stuntman who, having left the business a year earlier to focus on both physical and mental health, is drafted back into service when the star of a mega-budget studio movie, being directed by his ex, Jody Moreno, goes missing.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/bnVKUv2WiBZgfOvRCvdSfzl5J5o.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/4woSOUD0er5lRRxEqZwfYVOCEFV.jpg",
			ReleaseDate:  "2024-05-03",
			VoteAverage:  7.1,
			Price:        decimal.RequireFromString("19.99"),
			Genres:       []string{"Action", "Comedy"},
			Runtime:      126,
			Director:     "David Leitch",
			Starring:     []string{"Ryan Gosling", "Emily Blunt", "Winston Duke"},
			TrailerKey:   "I0Nv-wr_qmo",
		},
		{
			ID:           8,
			Title:        "Kingdom of the Planet of the Apes",
			Overview:     "Several generations in the future following Caesar's reign, apes are now the dominant species and live harmoniously while humans have been reduced to living in the shadows. As a new tyrannical ape leader builds his empire, one young ape undertakes a harrowing journey that will cause him to question all that he has known about the past and to make choices that will define a future for apes and humans alike.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/5APanzjYYIjB2pNEKUIvT7HQz9Y.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/lu5JTgVPfYvWJwrGNulJJnqkaVp.jpg",
			ReleaseDate:  "2024-05-10",
			VoteAverage:  7.2,
			Price:        decimal.RequireFromString("21.99"),
			Genres:       []string{"Science Fiction", "Adventure", "Action"},
			Runtime:      145,
			Director:     "Wes Ball",
			Starring:     []string{"Owen Teague", "Freya Allan", "Kevin Durand"},
			TrailerKey:   "SXu5uqH6Z28",
		},
	}
}
