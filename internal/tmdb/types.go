package tmdb

// ExternalSourceIMDb is the find endpoint source for IMDb ids (nm..., tt...).
const ExternalSourceIMDb = "imdb_id"

// FindResult is a single match returned by the find endpoint.
type FindResult struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	MediaType  string  `json:"media_type"`
	Popularity float64 `json:"popularity"`
}

// FindResponse groups find matches by media type.
type FindResponse struct {
	MovieResults  []FindResult `json:"movie_results"`
	PersonResults []FindResult `json:"person_results"`
	TVResults     []FindResult `json:"tv_results"`
}

// MovieCredit is a movie entry in a person's cast or crew credits.
type MovieCredit struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	Popularity  float64 `json:"popularity"`
	Character   string  `json:"character,omitempty"`
	Job         string  `json:"job,omitempty"`
	Department  string  `json:"department,omitempty"`
}

// PersonCredits holds the movie_credits expansion of a person.
type PersonCredits struct {
	Cast []MovieCredit `json:"cast"`
	Crew []MovieCredit `json:"crew"`
}

// PersonDetails is the person payload with movie credits appended.
type PersonDetails struct {
	ID           int64         `json:"id"`
	IMDbID       string        `json:"imdb_id"`
	Name         *string       `json:"name"`
	Gender       int           `json:"gender"`
	Birthday     *string       `json:"birthday"`
	PlaceOfBirth *string       `json:"place_of_birth"`
	ProfilePath  *string       `json:"profile_path"`
	Popularity   float64       `json:"popularity"`
	MovieCredits PersonCredits `json:"movie_credits"`
}

// Genre is a TMDB genre reference.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is a billed cast entry of a movie.
type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
	Popularity  float64 `json:"popularity"`
}

// CrewMember is a crew entry of a movie.
type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// MovieCredits holds the credits expansion of a movie.
type MovieCredits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the movie payload with credits appended.
type MovieDetails struct {
	ID            int64        `json:"id"`
	IMDbID        string       `json:"imdb_id"`
	Title         string       `json:"title"`
	OriginalTitle *string      `json:"original_title"`
	ReleaseDate   *string      `json:"release_date"`
	PosterPath    *string      `json:"poster_path"`
	Genres        []Genre      `json:"genres"`
	Popularity    float64      `json:"popularity"`
	Credits       MovieCredits `json:"credits"`
}

// DiscoverResult is a movie entry on a discover page.
type DiscoverResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	Popularity  float64 `json:"popularity"`
	VoteCount   int64   `json:"vote_count"`
}

// DiscoverResponse models one page of /discover/movie.
type DiscoverResponse struct {
	Page         int              `json:"page"`
	Results      []DiscoverResult `json:"results"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
}
