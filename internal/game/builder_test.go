package game_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"

	"kino/internal/game"
	"kino/internal/testsupport"
	"kino/internal/tmdb"
)

func newBuilder(runDate string) *game.Builder {
	date, err := time.Parse("2006-01-02", runDate)
	if err != nil {
		panic(err)
	}
	return game.NewBuilder(game.BuilderOptions{
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		WebBaseURL:   "https://themoviedb.org",
		RunDate:      date,
	})
}

func TestBuildPersonSelectsMostPopularAndPresentsAscending(t *testing.T) {
	builder := newBuilder("2026-10-19")
	person := testsupport.Person(4724, "Fred Astaire", testsupport.Credits(9)...)

	got, skips := builder.BuildPerson(game.Person, person)
	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if err := game.Validate(got); err != nil {
		t.Fatalf("expected valid game, got %v", err)
	}

	wantTitles := []string{"Film 4", "Film 5", "Film 6", "Film 7", "Film 8", "Film 9"}
	var titles []string
	for _, hint := range got.Hints {
		titles = append(titles, hint.Title)
	}
	if !slices.Equal(titles, wantTitles) {
		t.Fatalf("hints = %v, want %v", titles, wantTitles)
	}

	first := got.Hints[0]
	if first.Image != "https://image.tmdb.org/t/p/w500/poster-104.jpg" {
		t.Fatalf("unexpected hint image %q", first.Image)
	}
	if first.Link != "https://themoviedb.org/movie/104" {
		t.Fatalf("unexpected hint link %q", first.Link)
	}
	if first.Year == nil || *first.Year != 1994 {
		t.Fatalf("unexpected hint year %v", first.Year)
	}

	if got.Answer.ID != 4724 || got.Answer.DisplayTitle() != "Fred Astaire" {
		t.Fatalf("unexpected answer %+v", got.Answer)
	}
	if got.Answer.URL != "https://themoviedb.org/person/4724" {
		t.Fatalf("unexpected answer URL %q", got.Answer.URL)
	}
	if got.Answer.Image == nil || *got.Answer.Image != "https://image.tmdb.org/t/p/w500/profile-4724.jpg" {
		t.Fatalf("unexpected answer image %v", got.Answer.Image)
	}

	wantTrivia := map[string]string{"Place of Birth": "Omaha, Nebraska, USA", "Birthdate": "1899-05-10", "Gender": "Male"}
	for _, trivia := range got.Trivia {
		if trivia.Value == nil || *trivia.Value != wantTrivia[trivia.Label] {
			t.Fatalf("unexpected trivia %s=%v", trivia.Label, trivia.Value)
		}
	}
}

func TestBuildPersonHintsAscendInPopularity(t *testing.T) {
	builder := newBuilder("2026-10-19")
	credits := []tmdb.MovieCredit{
		testsupport.Credit(1, "A", 50, "2001-01-01"),
		testsupport.Credit(2, "B", 3.5, "2002-01-01"),
		testsupport.Credit(3, "C", 0, "2003-01-01"),
		testsupport.Credit(4, "D", 77, "2004-01-01"),
		testsupport.Credit(5, "E", 12, "2005-01-01"),
		testsupport.Credit(6, "F", 99.9, "2006-01-01"),
		testsupport.Credit(7, "G", 1, "2007-01-01"),
	}
	popularity := map[string]float64{}
	for _, credit := range credits {
		popularity[credit.Title] = credit.Popularity
	}

	got, _ := builder.BuildPerson(game.Person, testsupport.Person(1, "P", credits...))
	if len(got.Hints) != game.HintCount {
		t.Fatalf("expected %d hints, got %d", game.HintCount, len(got.Hints))
	}
	for i := 1; i < len(got.Hints); i++ {
		if popularity[got.Hints[i-1].Title] > popularity[got.Hints[i].Title] {
			t.Fatalf("hints not ascending: %+v", got.Hints)
		}
	}
	for _, hint := range got.Hints {
		if hint.Title == "C" {
			t.Fatal("least popular credit should not be selected")
		}
	}
}

func TestBuildPersonDropsExcludedGenres(t *testing.T) {
	builder := newBuilder("2026-10-19")
	credits := testsupport.Credits(6)
	credits = append(credits,
		testsupport.Credit(900, "Making Of", 500, "2010-01-01", 99),
		testsupport.Credit(901, "Reunion Special", 400, "2011-01-01", 18, 10770),
	)

	got, skips := builder.BuildPerson(game.Person, testsupport.Person(1, "P", credits...))
	if err := game.Validate(got); err != nil {
		t.Fatalf("expected valid game, got %v", err)
	}
	for _, hint := range got.Hints {
		if hint.Title == "Making Of" || hint.Title == "Reunion Special" {
			t.Fatalf("excluded genre credit %q used as hint", hint.Title)
		}
	}
	if len(skips) != 2 || skips[0].Reason != game.SkipExcludedGenre || skips[1].Reason != game.SkipExcludedGenre {
		t.Fatalf("expected two excluded-genre skips, got %+v", skips)
	}
}

func TestBuildPersonIgnoresIncompleteCredits(t *testing.T) {
	builder := newBuilder("2026-10-19")
	noPoster := testsupport.Credit(1, "No Poster", 90, "2001-01-01")
	noPoster.PosterPath = nil
	emptyPoster := testsupport.Credit(2, "Empty Poster", 89, "2001-01-01")
	emptyPoster.PosterPath = testsupport.StringPtr("")
	noDate := testsupport.Credit(3, "No Date", 88, "")
	noTitle := testsupport.Credit(4, "", 87, "2001-01-01")
	badDate := testsupport.Credit(5, "Bad Date", 86, "20xx-01-01")

	credits := append([]tmdb.MovieCredit{noPoster, emptyPoster, noDate, noTitle, badDate}, testsupport.Credits(5)...)
	got, skips := builder.BuildPerson(game.Person, testsupport.Person(1, "P", credits...))
	if len(skips) != 0 {
		t.Fatalf("incomplete credits should be skipped silently, got %+v", skips)
	}
	if len(got.Hints) != 5 {
		t.Fatalf("expected only the 5 complete credits, got %d", len(got.Hints))
	}
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) || rejection.Reason != game.ReasonHintCount || rejection.Count != 5 {
		t.Fatalf("expected hint_count rejection, got %v", err)
	}
}

func TestBuildDirectorUsesDirectingCreditsAndDropsFutureReleases(t *testing.T) {
	builder := newBuilder("2026-10-19")
	crew := testsupport.Credits(6)
	crew = append(crew,
		testsupport.Credit(700, "Next Year", 1000, "2027-06-01"),
		testsupport.Credit(701, "Tomorrow", 999, "2026-10-20"),
		testsupport.Credit(702, "Today", 998, "2026-10-19"),
	)
	person := testsupport.Director(2, "Director", crew...)
	person.MovieCredits.Cast = []tmdb.MovieCredit{testsupport.Credit(800, "Cameo", 5000, "2000-01-01")}
	person.MovieCredits.Crew = append(person.MovieCredits.Crew, tmdb.MovieCredit{
		ID: 801, Title: "Produced", Job: "Producer", ReleaseDate: "2000-01-01",
		PosterPath: testsupport.StringPtr("/p.jpg"), Popularity: 4000,
	})

	got, skips := builder.BuildPerson(game.Director, person)
	if err := game.Validate(got); err != nil {
		t.Fatalf("expected valid game, got %v", err)
	}
	for _, hint := range got.Hints {
		switch hint.Title {
		case "Next Year", "Tomorrow":
			t.Fatalf("future release %q used as hint", hint.Title)
		case "Cameo", "Produced":
			t.Fatalf("non-directing credit %q used as hint", hint.Title)
		}
	}
	if got.Hints[len(got.Hints)-1].Title != "Today" {
		t.Fatalf("credit released on the run date should be kept as the most popular hint, got %+v", got.Hints)
	}
	if len(skips) != 2 || skips[0].Reason != game.SkipFutureRelease {
		t.Fatalf("expected two future-release skips, got %+v", skips)
	}
}

func TestBuildPersonKeepsFutureReleasesOutsideDirectorMode(t *testing.T) {
	builder := newBuilder("2026-10-19")
	credits := append(testsupport.Credits(5), testsupport.Credit(700, "Upcoming", 1000, "2027-06-01"))

	got, _ := builder.BuildPerson(game.Person, testsupport.Person(1, "P", credits...))
	if got.Hints[len(got.Hints)-1].Title != "Upcoming" {
		t.Fatalf("expected upcoming acting credit to be used, got %+v", got.Hints)
	}
}

func TestBuildPersonMissingBirthdayIsRejected(t *testing.T) {
	builder := newBuilder("2026-10-19")
	person := testsupport.Person(1, "P", testsupport.Credits(6)...)
	person.Birthday = nil

	got, _ := builder.BuildPerson(game.Person, person)
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if rejection.Reason != game.ReasonMissingField || rejection.Field != "trivia[1].value" {
		t.Fatalf("unexpected rejection %+v", rejection)
	}
}

func TestBuildPersonNullNameIsRejected(t *testing.T) {
	var person tmdb.PersonDetails
	payload := `{"id": 7, "name": null, "gender": 1, "birthday": "1970-01-01",
		"place_of_birth": "Leeds", "profile_path": "/p.jpg"}`
	if err := json.Unmarshal([]byte(payload), &person); err != nil {
		t.Fatalf("decode person: %v", err)
	}
	person.MovieCredits.Cast = testsupport.Credits(6)

	got, _ := newBuilder("2026-10-19").BuildPerson(game.Person, &person)
	if got.Answer.Title != nil {
		t.Fatalf("expected null answer title, got %q", *got.Answer.Title)
	}
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) || rejection.Field != "answer.title" {
		t.Fatalf("expected answer.title rejection, got %v", err)
	}
}

func TestBuildMovieNullOriginalTitleIsRejected(t *testing.T) {
	movie := testsupport.Movie(603, "The Matrix", 8)
	if err := json.Unmarshal([]byte(`{"original_title": null}`), movie); err != nil {
		t.Fatalf("decode movie: %v", err)
	}
	if movie.OriginalTitle != nil {
		t.Fatalf("expected null original title after decode, got %q", *movie.OriginalTitle)
	}

	got := newBuilder("2026-10-19").BuildMovie(movie)
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) || rejection.Field != "answer.title" {
		t.Fatalf("expected answer.title rejection, got %v", err)
	}
}

func TestBuildPersonMissingProfileIsRejected(t *testing.T) {
	builder := newBuilder("2026-10-19")
	person := testsupport.Person(1, "P", testsupport.Credits(6)...)
	person.ProfilePath = nil

	got, _ := builder.BuildPerson(game.Person, person)
	if got.Answer.Image != nil {
		t.Fatal("expected null answer image")
	}
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) || rejection.Field != "answer.image" {
		t.Fatalf("expected answer.image rejection, got %v", err)
	}
}

func TestBuildMovie(t *testing.T) {
	builder := newBuilder("2026-10-19")
	movie := testsupport.Movie(603, "The Matrix", 8)
	movie.Credits.Crew = append(movie.Credits.Crew, tmdb.CrewMember{ID: 9340, Name: "Lilly Wachowski", Job: "Director"})

	got := builder.BuildMovie(movie)
	if err := game.Validate(got); err != nil {
		t.Fatalf("expected valid game, got %v", err)
	}
	wantHints := []string{"Actor 5", "Actor 4", "Actor 3", "Actor 2", "Actor 1", "Actor 0"}
	for i, hint := range got.Hints {
		if hint.Title != wantHints[i] {
			t.Fatalf("hint %d = %q, want %q", i, hint.Title, wantHints[i])
		}
		if hint.Year != nil {
			t.Fatalf("title hints must not carry a year, got %v", *hint.Year)
		}
	}
	if got.Hints[5].Link != "https://themoviedb.org/person/1000" {
		t.Fatalf("unexpected hint link %q", got.Hints[5].Link)
	}
	if got.Answer.URL != "https://themoviedb.org/movie/603" {
		t.Fatalf("unexpected answer URL %q", got.Answer.URL)
	}

	want := map[string]string{
		"Genres":       "Action, Science Fiction",
		"Director":     "Lana Wachowski, Lilly Wachowski",
		"Release Year": "1999",
	}
	for _, trivia := range got.Trivia {
		if trivia.Value == nil || *trivia.Value != want[trivia.Label] {
			t.Fatalf("trivia %s = %v, want %q", trivia.Label, trivia.Value, want[trivia.Label])
		}
	}
}

func TestBuildMovieUsesOnlyTopBilledCast(t *testing.T) {
	builder := newBuilder("2026-10-19")
	movie := testsupport.Movie(1, "Sparse", 8)
	movie.Credits.Cast[2].ProfilePath = nil

	got := builder.BuildMovie(movie)
	if len(got.Hints) != 5 {
		t.Fatalf("expected 5 hints from the first 6 billed, got %d", len(got.Hints))
	}
	var rejection *game.Rejection
	if err := game.Validate(got); !errors.As(err, &rejection) || rejection.Reason != game.ReasonHintCount {
		t.Fatalf("expected hint_count rejection, got %v", err)
	}
}

func TestBuildMovieWithoutDirectorIsRejected(t *testing.T) {
	builder := newBuilder("2026-10-19")
	movie := testsupport.Movie(1, "Orphan", 6)
	movie.Credits.Crew = nil

	var rejection *game.Rejection
	if err := game.Validate(builder.BuildMovie(movie)); !errors.As(err, &rejection) || rejection.Field != "trivia[1].value" {
		t.Fatalf("expected missing director rejection, got %v", err)
	}
}

func TestBuildMovieWithoutGenresKeepsEmptyValue(t *testing.T) {
	builder := newBuilder("2026-10-19")
	movie := testsupport.Movie(1, "Plain", 6)
	movie.Genres = nil

	got := builder.BuildMovie(movie)
	if err := game.Validate(got); err != nil {
		t.Fatalf("empty genre string is a present value, got %v", err)
	}
	if *got.Trivia[0].Value != "" {
		t.Fatalf("expected empty genres, got %q", *got.Trivia[0].Value)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	builder := newBuilder("2026-10-19")
	credits := testsupport.Credits(12)
	for i := range credits {
		credits[i].Popularity = float64(i % 3)
	}
	person := testsupport.Person(1, "P", credits...)
	movie := testsupport.Movie(2, "M", 9)

	encode := func(v any) []byte {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}
	var order []int64
	for _, credit := range person.MovieCredits.Cast {
		order = append(order, credit.ID)
	}
	first, _ := builder.BuildPerson(game.Person, person)
	second, _ := builder.BuildPerson(game.Person, person)
	if !bytes.Equal(encode(first), encode(second)) {
		t.Fatal("person builds differ")
	}
	if !bytes.Equal(encode(builder.BuildMovie(movie)), encode(builder.BuildMovie(movie))) {
		t.Fatal("movie builds differ")
	}
	for i, credit := range person.MovieCredits.Cast {
		if credit.ID != order[i] {
			t.Fatal("builder must not reorder the payload's credits")
		}
	}
}

func TestGenderLabel(t *testing.T) {
	tests := map[int]string{0: "Not specified", 1: "Female", 2: "Male", 3: "Non-binary", 7: "Not specified"}
	for code, want := range tests {
		if got := game.GenderLabel(code); got != want {
			t.Fatalf("GenderLabel(%d) = %q, want %q", code, got, want)
		}
	}
}
