package batch_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kino/internal/batch"
	"kino/internal/game"
	"kino/internal/imdblist"
	"kino/internal/logging"
	"kino/internal/resolver"
	"kino/internal/testsupport"
	"kino/internal/tmdb"
)

func runPipeline(t *testing.T, fake *testsupport.FakeTMDB, kind game.Kind, ids ...string) []game.Game {
	t.Helper()
	server := fake.Serve(t, "test-token")
	client, err := tmdb.New("test-token", server.URL, "en-US", tmdb.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("tmdb.New: %v", err)
	}
	builder := game.NewBuilder(game.BuilderOptions{
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		WebBaseURL:   "https://themoviedb.org",
		RunDate:      time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	})
	runner := batch.NewRunner(resolver.New(client, builder, logging.NewNop()), 4, logging.NewNop())

	dir := t.TempDir()
	list, err := imdblist.Load(testsupport.WriteIMDbList(t, dir, ids...), imdblist.DefaultColumn)
	if err != nil {
		t.Fatalf("load list: %v", err)
	}
	report, err := runner.Fetch(context.Background(), kind, list, 20)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	batch.Shuffle(report.Games)

	path := batch.OutputPath(dir, "games")
	if err := batch.Export(path, report.Games, false); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "games.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var games []game.Game
	if err := json.Unmarshal(data, &games); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return games
}

func TestEndToEndPerson(t *testing.T) {
	fake := testsupport.NewFakeTMDB()
	fake.AddPerson("nm0000001", testsupport.Person(4724, "Fred Astaire", testsupport.Credits(10)...))

	games := runPipeline(t, fake, game.Person, "nm0000001")
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.Answer.ID != 4724 {
		t.Fatalf("answer id = %d, want 4724", g.Answer.ID)
	}
	if len(g.Hints) != game.HintCount {
		t.Fatalf("expected %d hints, got %d", game.HintCount, len(g.Hints))
	}
	// Credits(n) assigns popularity by index, so hint years ascend with popularity.
	for i := 1; i < len(g.Hints); i++ {
		if *g.Hints[i-1].Year >= *g.Hints[i].Year {
			t.Fatalf("hints not ascending by popularity: %+v", g.Hints)
		}
	}
	if g.Hints[0].Title != "Film 5" || g.Hints[5].Title != "Film 10" {
		t.Fatalf("unexpected hint window %q..%q", g.Hints[0].Title, g.Hints[5].Title)
	}
}

func TestEndToEndMissingBirthdate(t *testing.T) {
	fake := testsupport.NewFakeTMDB()
	person := testsupport.Person(1, "No Birthday", testsupport.Credits(10)...)
	person.Birthday = nil
	fake.AddPerson("nm0000001", person)

	if games := runPipeline(t, fake, game.Person, "nm0000001"); len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}

func TestEndToEndMixedList(t *testing.T) {
	fake := testsupport.NewFakeTMDB()
	fake.AddMovie("tt0133093", testsupport.Movie(603, "The Matrix", 8))
	fake.AddMovie("tt0234215", testsupport.Movie(604, "The Matrix Reloaded", 3))
	fake.Status["find/tt9999999"] = 500

	games := runPipeline(t, fake, game.Title, "tt0133093", "tt9999999", "tt0234215", "tt0000000")
	if len(games) != 1 || games[0].Answer.ID != 603 {
		t.Fatalf("expected only The Matrix, got %+v", games)
	}
	if lookups := fake.Lookups(); len(lookups) != 4 {
		t.Fatalf("expected every id looked up, got %v", lookups)
	}
}
