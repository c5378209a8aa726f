package app

import "github.com/codebyghita/guess-game/internal/domain"

// BuiltinCatalog returns the bundled question set. It is the fallback whenever
// no external content source is configured or the source fails.
func BuiltinCatalog() []domain.Question {
	return []domain.Question{
		{
			ID:            "this-is-fine",
			Kind:          domain.KindMeme,
			Prompt:        "A dog sitting in a burning room saying everything is fine",
			Asset:         "https://i.imgflip.com/26am.jpg",
			CorrectAnswer: "this is fine",
			Hints:         []string{"A calm response to chaos"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Classic Memes",
		},
		{
			ID:            "distracted-boyfriend",
			Kind:          domain.KindMeme,
			Prompt:        "Distracted boyfriend looking at another girl while his girlfriend looks angry",
			Asset:         "https://i.imgflip.com/1ur9b0.jpg",
			CorrectAnswer: "distracted boyfriend",
			Hints:         []string{"It involves three people", "Someone is looking away", "Popular relationship meme"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Relationship Memes",
		},
		{
			ID:            "drake-pointing",
			Kind:          domain.KindMeme,
			Prompt:        "Drake rejecting something in the top panel, approving in the bottom",
			Asset:         "https://i.imgflip.com/30b1gx.jpg",
			CorrectAnswer: "drake pointing",
			Options:       []string{"Drake Pointing", "Expanding Brain", "Distracted Boyfriend", "Woman Yelling at Cat"},
			Hints:         []string{"Canadian rapper showing preferences"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Music Memes",
		},
		{
			ID:            "surprised-pikachu",
			Kind:          domain.KindMeme,
			Prompt:        "Pikachu with shocked expression",
			Asset:         "https://i.imgflip.com/1otk96.jpg",
			CorrectAnswer: "surprised pikachu",
			Options:       []string{"Surprised Pikachu", "Stonks", "Big Brain Time", "Panik Kalm"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Reaction Memes",
		},
		{
			ID:            "word-reddit",
			Kind:          domain.KindWord,
			Prompt:        "R_DD_T (Popular social platform)",
			CorrectAnswer: "reddit",
			Hints:         []string{"The platform you're using right now!"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Tech Words",
		},
		{
			ID:            "word-meme",
			Kind:          domain.KindWord,
			Prompt:        "M_M_ (Internet joke or viral content)",
			CorrectAnswer: "meme",
			Hints:         []string{"What this game is all about!"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Internet Terms",
		},
		{
			ID:            "word-fine",
			Kind:          domain.KindWord,
			Prompt:        `Complete the meme phrase: "This is ____"`,
			CorrectAnswer: "fine",
			Hints:         []string{"Dog in burning room", "Everything is okay", "Popular reaction meme"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "Meme Phrases",
		},
		{
			ID:            "woman-yelling-at-cat",
			Kind:          domain.KindMeme,
			Prompt:        "Woman yelling at confused white cat at dinner table",
			Asset:         "https://i.imgflip.com/345v97.jpg",
			CorrectAnswer: "woman yelling at cat",
			Hints:         []string{"Dinner table argument with a confused feline"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "Animal Memes",
		},
		{
			ID:            "ancient-aliens",
			Kind:          domain.KindMeme,
			Prompt:        "Ancient alien guy with wild hair suggesting extraterrestrial explanations",
			CorrectAnswer: "ancient aliens",
			Hints:         []string{"History Channel's favorite explanation"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "TV Memes",
		},
		{
			ID:            "expanding-brain",
			Kind:          domain.KindMeme,
			Prompt:        "Expanding brain meme showing levels of enlightenment",
			Asset:         "https://i.imgflip.com/2zo1ki.jpg",
			CorrectAnswer: "expanding brain",
			Options:       []string{"Galaxy Brain", "Expanding Brain", "Big Brain Time", "Stonks"},
			Hints:         []string{"Intelligence levels increasing"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "Intelligence Memes",
		},
		{
			ID:            "stonks",
			Kind:          domain.KindMeme,
			Prompt:        "Meme man in suit with rising graph",
			Asset:         "https://i.imgflip.com/39u469.jpg",
			CorrectAnswer: "stonks",
			Options:       []string{"Stonks", "Big Brain Time", "Panik Kalm", "Number Go Up"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "Finance Memes",
		},
		{
			ID:            "word-upvote",
			Kind:          domain.KindWord,
			Prompt:        "UP_OT_ (Reddit approval system)",
			CorrectAnswer: "upvote",
			Hints:         []string{"Orange arrow pointing up"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "Reddit Terms",
		},
		{
			ID:            "word-rick",
			Kind:          domain.KindWord,
			Prompt:        `Fill in: "You just got ____ rolled!"`,
			CorrectAnswer: "rick",
			Hints:         []string{"Never gonna give you up", "Internet prank", "Rick Astley"},
			Difficulty:    domain.DifficultyMedium,
			Category:      "Internet Culture",
		},
		{
			ID:            "kermit-tea",
			Kind:          domain.KindMeme,
			Prompt:        "Kermit drinking tea with 'But that's none of my business' caption",
			CorrectAnswer: "kermit tea",
			Hints:         []string{"Frog with hot beverage making observations"},
			Difficulty:    domain.DifficultyHard,
			Category:      "Sass Memes",
		},
		{
			ID:            "doge",
			Kind:          domain.KindMeme,
			Prompt:        "Shiba Inu with comic sans text - much wow",
			Asset:         "https://i.imgflip.com/4/2cp1.jpg",
			CorrectAnswer: "doge",
			Options:       []string{"Doge", "Cheems", "Bonk Dog", "Crying Wojak"},
			Hints:         []string{"Shiba Inu dog", "Broken English"},
			Difficulty:    domain.DifficultyHard,
			Category:      "Animal Memes",
		},
		{
			ID:            "success-kid",
			Kind:          domain.KindMeme,
			Prompt:        "Success kid with clenched fist celebrating small victories",
			CorrectAnswer: "success kid",
			Hints:         []string{"Baby celebrating achievements"},
			Difficulty:    domain.DifficultyHard,
			Category:      "Victory Memes",
		},
		{
			ID:            "word-subreddit",
			Kind:          domain.KindWord,
			Prompt:        "SU_R_DD_T (Specific community within Reddit)",
			CorrectAnswer: "subreddit",
			Hints:         []string{"r/something - a specific community"},
			Difficulty:    domain.DifficultyHard,
			Category:      "Reddit Terms",
		},
		{
			ID:            "word-wow",
			Kind:          domain.KindWord,
			Prompt:        `Complete: "Much _____, very _____"`,
			CorrectAnswer: "wow",
			Hints:         []string{"Shiba Inu dog", "Doge meme", "Broken English"},
			Difficulty:    domain.DifficultyHard,
			Category:      "Doge Memes",
		},
	}
}

// FilterByDifficulty returns the catalog entries matching the filter.
// DifficultyAll matches everything.
func FilterByDifficulty(catalog []domain.Question, filter domain.Difficulty) []domain.Question {
	if filter == domain.DifficultyAll || filter == "" {
		out := make([]domain.Question, len(catalog))
		copy(out, catalog)
		return out
	}
	var out []domain.Question
	for _, q := range catalog {
		if q.Difficulty == filter {
			out = append(out, q)
		}
	}
	return out
}
