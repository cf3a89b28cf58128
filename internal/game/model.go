package game

const (
	// HintCount is the number of hints every accepted game carries.
	HintCount = 6
	// TriviaCount is the number of trivia fields every accepted game carries.
	TriviaCount = 3
)

// Fields are declared in key order so encoded objects have sorted keys.

// Answer identifies the entity being guessed.
type Answer struct {
	URL   string  `json:"URL"`
	ID    int64   `json:"id"`
	Image *string `json:"image"`
	Title *string `json:"title"`
}

// DisplayTitle returns the answer title, or "" when TMDB had none.
func (a Answer) DisplayTitle() string {
	if a.Title == nil {
		return ""
	}
	return *a.Title
}

// Hint is one credit revealed to the player. Person hints carry the release
// year; title hints do not.
type Hint struct {
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
	Title string `json:"title"`
	Year  *int   `json:"year,omitempty"`
}

// Trivia is a labelled fact about the answer.
type Trivia struct {
	Label string  `json:"label"`
	Value *string `json:"value"`
}

// Game is the exported unit.
type Game struct {
	Answer Answer   `json:"answer"`
	Hints  []Hint   `json:"hints"`
	Trivia []Trivia `json:"trivia"`
}
