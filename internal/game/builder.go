package game

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"kino/internal/tmdb"
)

// excludedGenres are never used as hints: Documentary and TV Movie.
var excludedGenres = []int{99, 10770}

const dateLayout = "2006-01-02"

// SkipReason explains why an otherwise complete credit was not used as a hint.
type SkipReason string

const (
	SkipExcludedGenre SkipReason = "excluded_genre"
	SkipFutureRelease SkipReason = "future_release"
)

// Skip records a credit passed over while selecting hints.
type Skip struct {
	Title    string
	Reason   SkipReason
	GenreIDs []int
	Release  string
}

// BuilderOptions configures URL prefixes and the run date.
type BuilderOptions struct {
	ImageBaseURL string
	WebBaseURL   string
	RunDate      time.Time
}

// Builder turns TMDB payloads into candidate games.
type Builder struct {
	imageBaseURL string
	webBaseURL   string
	runDate      string
}

// NewBuilder returns a Builder. A zero RunDate means today.
func NewBuilder(opts BuilderOptions) *Builder {
	runDate := opts.RunDate
	if runDate.IsZero() {
		runDate = time.Now()
	}
	return &Builder{
		imageBaseURL: strings.TrimRight(opts.ImageBaseURL, "/"),
		webBaseURL:   strings.TrimRight(opts.WebBaseURL, "/"),
		runDate:      runDate.Format(dateLayout),
	}
}

// RunDate returns the date future releases are compared against (YYYY-MM-DD).
func (b *Builder) RunDate() string {
	return b.runDate
}

// BuildPerson derives a candidate game for a person. Hints are the most
// popular eligible credits, presented least popular first.
func (b *Builder) BuildPerson(kind Kind, person *tmdb.PersonDetails) (Game, []Skip) {
	credits := personCredits(kind, person)
	sort.SliceStable(credits, func(i, j int) bool {
		return credits[i].Popularity > credits[j].Popularity
	})

	var skips []Skip
	hints := make([]Hint, 0, HintCount)
	for _, credit := range credits {
		if len(hints) == HintCount {
			break
		}
		year, ok := releaseYear(credit.ReleaseDate)
		if !ok || credit.Title == "" || !present(credit.PosterPath) {
			continue
		}
		if kind.ExcludeFuture && credit.ReleaseDate > b.runDate {
			skips = append(skips, Skip{Title: credit.Title, Reason: SkipFutureRelease, Release: credit.ReleaseDate})
			continue
		}
		if hasExcludedGenre(credit.GenreIDs) {
			skips = append(skips, Skip{Title: credit.Title, Reason: SkipExcludedGenre, GenreIDs: credit.GenreIDs})
			continue
		}
		hints = append(hints, Hint{
			Image: b.imageURL(*credit.PosterPath),
			Link:  b.pageURL("movie", credit.ID),
			Title: credit.Title,
			Year:  &year,
		})
	}
	slices.Reverse(hints)

	gender := GenderLabel(person.Gender)
	game := Game{
		Answer: Answer{
			URL:   b.pageURL("person", person.ID),
			ID:    person.ID,
			Image: b.optionalImage(person.ProfilePath),
			Title: person.Name,
		},
		Hints: hints,
		Trivia: []Trivia{
			{Label: kind.TriviaLabels[0], Value: person.PlaceOfBirth},
			{Label: kind.TriviaLabels[1], Value: person.Birthday},
			{Label: kind.TriviaLabels[2], Value: &gender},
		},
	}
	return game, skips
}

// BuildMovie derives a candidate game for a title. Hints are the top billed
// cast members with a profile image, presented lowest billed first.
func (b *Builder) BuildMovie(movie *tmdb.MovieDetails) Game {
	cast := movie.Credits.Cast
	if len(cast) > HintCount {
		cast = cast[:HintCount]
	}
	hints := make([]Hint, 0, HintCount)
	for _, member := range cast {
		if member.Name == "" || !present(member.ProfilePath) {
			continue
		}
		hints = append(hints, Hint{
			Image: b.imageURL(*member.ProfilePath),
			Link:  b.pageURL("person", member.ID),
			Title: member.Name,
		})
	}
	slices.Reverse(hints)

	genreNames := make([]string, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		genreNames = append(genreNames, genre.Name)
	}
	genres := strings.Join(genreNames, ", ")

	var directors *string
	var directorNames []string
	for _, member := range movie.Credits.Crew {
		if member.Job == "Director" {
			directorNames = append(directorNames, member.Name)
		}
	}
	if len(directorNames) > 0 {
		joined := strings.Join(directorNames, ", ")
		directors = &joined
	}

	var year *string
	if movie.ReleaseDate != nil && len(*movie.ReleaseDate) >= 4 {
		value := (*movie.ReleaseDate)[:4]
		year = &value
	}

	labels := Title.TriviaLabels
	return Game{
		Answer: Answer{
			URL:   b.pageURL("movie", movie.ID),
			ID:    movie.ID,
			Image: b.optionalImage(movie.PosterPath),
			Title: movie.OriginalTitle,
		},
		Hints: hints,
		Trivia: []Trivia{
			{Label: labels[0], Value: &genres},
			{Label: labels[1], Value: directors},
			{Label: labels[2], Value: year},
		},
	}
}

// GenderLabel maps TMDB gender codes to display text.
func GenderLabel(code int) string {
	switch code {
	case 1:
		return "Female"
	case 2:
		return "Male"
	case 3:
		return "Non-binary"
	default:
		return "Not specified"
	}
}

func personCredits(kind Kind, person *tmdb.PersonDetails) []tmdb.MovieCredit {
	if kind.CreditJob == "" {
		return slices.Clone(person.MovieCredits.Cast)
	}
	credits := make([]tmdb.MovieCredit, 0, len(person.MovieCredits.Crew))
	for _, credit := range person.MovieCredits.Crew {
		if credit.Job == kind.CreditJob {
			credits = append(credits, credit)
		}
	}
	return credits
}

func releaseYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

func hasExcludedGenre(ids []int) bool {
	for _, id := range ids {
		if slices.Contains(excludedGenres, id) {
			return true
		}
	}
	return false
}

func present(path *string) bool {
	return path != nil && *path != ""
}

func (b *Builder) imageURL(path string) string {
	return b.imageBaseURL + path
}

func (b *Builder) optionalImage(path *string) *string {
	if !present(path) {
		return nil
	}
	url := b.imageURL(*path)
	return &url
}

func (b *Builder) pageURL(section string, id int64) string {
	return fmt.Sprintf("%s/%s/%d", b.webBaseURL, section, id)
}
