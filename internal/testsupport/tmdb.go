package testsupport

import (
	"fmt"

	"kino/internal/tmdb"
)

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Credit returns an eligible movie credit with a poster.
func Credit(id int64, title string, popularity float64, release string, genres ...int) tmdb.MovieCredit {
	if genres == nil {
		genres = []int{18}
	}
	return tmdb.MovieCredit{
		ID:          id,
		Title:       title,
		ReleaseDate: release,
		PosterPath:  StringPtr(fmt.Sprintf("/poster-%d.jpg", id)),
		GenreIDs:    genres,
		Popularity:  popularity,
	}
}

// Credits returns n eligible credits with popularity 1..n, listed in
// ascending popularity so builders must sort them.
func Credits(n int) []tmdb.MovieCredit {
	credits := make([]tmdb.MovieCredit, 0, n)
	for i := 1; i <= n; i++ {
		credits = append(credits, Credit(int64(100+i), fmt.Sprintf("Film %d", i), float64(i), fmt.Sprintf("%d-05-01", 1990+i)))
	}
	return credits
}

// Person returns a person with complete trivia and the given cast credits.
func Person(id int64, name string, cast ...tmdb.MovieCredit) *tmdb.PersonDetails {
	return &tmdb.PersonDetails{
		ID:           id,
		Name:         StringPtr(name),
		Gender:       2,
		Birthday:     StringPtr("1899-05-10"),
		PlaceOfBirth: StringPtr("Omaha, Nebraska, USA"),
		ProfilePath:  StringPtr(fmt.Sprintf("/profile-%d.jpg", id)),
		MovieCredits: tmdb.PersonCredits{Cast: cast},
	}
}

// Director returns a person whose directing credits are the given credits.
func Director(id int64, name string, crew ...tmdb.MovieCredit) *tmdb.PersonDetails {
	person := Person(id, name)
	for _, credit := range crew {
		credit.Job = "Director"
		credit.Department = "Directing"
		person.MovieCredits.Crew = append(person.MovieCredits.Crew, credit)
	}
	return person
}

// Movie returns a movie with genres, one director and castN billed members
// that all have profile images.
func Movie(id int64, title string, castN int) *tmdb.MovieDetails {
	movie := &tmdb.MovieDetails{
		ID:            id,
		Title:         title,
		OriginalTitle: StringPtr(title),
		ReleaseDate:   StringPtr("1999-03-30"),
		PosterPath:    StringPtr(fmt.Sprintf("/movie-%d.jpg", id)),
		Genres:        []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Credits: tmdb.MovieCredits{
			Crew: []tmdb.CrewMember{{ID: 9339, Name: "Lana Wachowski", Job: "Director", Department: "Directing"}},
		},
	}
	for i := 0; i < castN; i++ {
		movie.Credits.Cast = append(movie.Credits.Cast, tmdb.CastMember{
			ID:          int64(1000 + i),
			Name:        fmt.Sprintf("Actor %d", i),
			ProfilePath: StringPtr(fmt.Sprintf("/actor-%d.jpg", i)),
			Order:       i,
		})
	}
	return movie
}
