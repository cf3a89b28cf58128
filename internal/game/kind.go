package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned for a --type other than person or title.
	ErrUnknownKind = errors.New("type must be 'title' or 'person'")
	// ErrDirectorRequiresPerson is returned when director mode is requested for titles.
	ErrDirectorRequiresPerson = errors.New("director mode requires type 'person'")
)

// Subject is the TMDB entity family a kind resolves to.
type Subject int

const (
	// SubjectPerson resolves through person_results and person details.
	SubjectPerson Subject = iota
	// SubjectTitle resolves through movie_results and movie details.
	SubjectTitle
)

// String returns "person" or "title".
func (s Subject) String() string {
	if s == SubjectTitle {
		return "title"
	}
	return "person"
}

// Kind describes how a Game is derived for one entity family.
type Kind struct {
	// Name is the kind as logged and reported in run summaries.
	Name    string
	Subject Subject
	// CreditJob selects crew credits with this job; empty selects cast credits.
	CreditJob string
	// ExcludeFuture drops credits released after the run date.
	ExcludeFuture bool
	// TriviaLabels are the labels of the three trivia entries, in order.
	TriviaLabels [TriviaCount]string
}

var (
	// Person builds actor games from cast credits.
	Person = Kind{
		Name:         "person",
		Subject:      SubjectPerson,
		TriviaLabels: [TriviaCount]string{LabelPlaceOfBirth, LabelBirthdate, LabelGender},
	}
	// Director builds director games from directing credits released by the run date.
	Director = Kind{
		Name:          "director",
		Subject:       SubjectPerson,
		CreditJob:     "Director",
		ExcludeFuture: true,
		TriviaLabels:  [TriviaCount]string{LabelPlaceOfBirth, LabelBirthdate, LabelGender},
	}
	// Title builds movie games from the top billed cast.
	Title = Kind{
		Name:         "title",
		Subject:      SubjectTitle,
		TriviaLabels: [TriviaCount]string{LabelGenres, LabelDirector, LabelReleaseYear},
	}
)

// Trivia labels shown by the web application.
const (
	LabelPlaceOfBirth = "Place of Birth"
	LabelBirthdate    = "Birthdate"
	LabelGender       = "Gender"
	LabelGenres       = "Genres"
	LabelDirector     = "Director"
	LabelReleaseYear  = "Release Year"
)

// ParseKind maps the --type and --director flags to a Kind.
func ParseKind(typ string, director bool) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "person":
		if director {
			return Director, nil
		}
		return Person, nil
	case "title":
		if director {
			return Kind{}, ErrDirectorRequiresPerson
		}
		return Title, nil
	default:
		return Kind{}, fmt.Errorf("%w, got %q", ErrUnknownKind, typ)
	}
}
