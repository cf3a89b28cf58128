package testsupport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"kino/internal/tmdb"
)

// FakeTMDB is an in-memory TMDB. It implements tmdb.API directly and can be
// served over HTTP with Serve.
type FakeTMDB struct {
	Matches map[string]tmdb.FindResponse
	People  map[int64]*tmdb.PersonDetails
	Movies  map[int64]*tmdb.MovieDetails
	Pages   map[int]*tmdb.DiscoverResponse
	// Status forces a response code for an external id, person id or movie
	// id keyed as "find/<id>", "person/<id>" or "movie/<id>".
	Status  map[string]int

	mu      sync.Mutex
	lookups []string
}

var _ tmdb.API = (*FakeTMDB)(nil)

// NewFakeTMDB returns an empty fake.
func NewFakeTMDB() *FakeTMDB {
	return &FakeTMDB{
		Matches: map[string]tmdb.FindResponse{},
		People:  map[int64]*tmdb.PersonDetails{},
		Movies:  map[int64]*tmdb.MovieDetails{},
		Pages:   map[int]*tmdb.DiscoverResponse{},
		Status:  map[string]int{},
	}
}

// AddPerson registers person under externalID.
func (f *FakeTMDB) AddPerson(externalID string, person *tmdb.PersonDetails) {
	resp := f.Matches[externalID]
	resp.PersonResults = append(resp.PersonResults, tmdb.FindResult{ID: person.ID, Name: stringValue(person.Name)})
	f.Matches[externalID] = resp
	f.People[person.ID] = person
}

// AddMovie registers movie under externalID.
func (f *FakeTMDB) AddMovie(externalID string, movie *tmdb.MovieDetails) {
	resp := f.Matches[externalID]
	resp.MovieResults = append(resp.MovieResults, tmdb.FindResult{ID: movie.ID, Title: movie.Title})
	f.Matches[externalID] = resp
	f.Movies[movie.ID] = movie
}

// Lookups returns the external ids passed to Find, in call order.
func (f *FakeTMDB) Lookups() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lookups...)
}

func (f *FakeTMDB) status(key string) error {
	if code, ok := f.Status[key]; ok && code != http.StatusOK {
		endpoint, _, _ := strings.Cut(key, "/")
		return &tmdb.StatusError{Endpoint: endpoint, StatusCode: code}
	}
	return nil
}

func (f *FakeTMDB) Find(_ context.Context, externalID, _ string) (*tmdb.FindResponse, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, externalID)
	f.mu.Unlock()
	if err := f.status("find/" + externalID); err != nil {
		return nil, err
	}
	resp := f.Matches[externalID]
	return &resp, nil
}

func (f *FakeTMDB) PersonDetails(_ context.Context, personID int64) (*tmdb.PersonDetails, error) {
	if err := f.status(fmt.Sprintf("person/%d", personID)); err != nil {
		return nil, err
	}
	person, ok := f.People[personID]
	if !ok {
		return nil, &tmdb.StatusError{Endpoint: "person details", StatusCode: http.StatusNotFound}
	}
	return person, nil
}

func (f *FakeTMDB) MovieDetails(_ context.Context, movieID int64) (*tmdb.MovieDetails, error) {
	if err := f.status(fmt.Sprintf("movie/%d", movieID)); err != nil {
		return nil, err
	}
	movie, ok := f.Movies[movieID]
	if !ok {
		return nil, &tmdb.StatusError{Endpoint: "movie details", StatusCode: http.StatusNotFound}
	}
	return movie, nil
}

func (f *FakeTMDB) DiscoverMovies(_ context.Context, page int) (*tmdb.DiscoverResponse, error) {
	if err := f.status(fmt.Sprintf("discover/%d", page)); err != nil {
		return nil, err
	}
	resp, ok := f.Pages[page]
	if !ok {
		return &tmdb.DiscoverResponse{Page: page}, nil
	}
	return resp, nil
}

// Serve exposes the fake over HTTP using TMDB paths. Requests without the
// expected bearer token get 401.
func (f *FakeTMDB) Serve(t testing.TB, token string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /find/{id}", func(w http.ResponseWriter, r *http.Request) {
		resp, err := f.Find(r.Context(), r.PathValue("id"), r.URL.Query().Get("external_source"))
		respond(w, resp, err)
	})
	mux.HandleFunc("GET /person/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		resp, err := f.PersonDetails(r.Context(), id)
		respond(w, resp, err)
	})
	mux.HandleFunc("GET /movie/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		resp, err := f.MovieDetails(r.Context(), id)
		respond(w, resp, err)
	})
	mux.HandleFunc("GET /discover/movie", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		resp, err := f.DiscoverMovies(r.Context(), page)
		respond(w, resp, err)
	})
	mux.HandleFunc("GET /authentication", func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]any{"success": true, "status_code": 1}, nil)
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`))
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func respond(w http.ResponseWriter, body any, err error) {
	w.Header().Set("Content-Type", "application/json")
	if statusErr, ok := err.(*tmdb.StatusError); ok {
		w.WriteHeader(statusErr.StatusCode)
		_, _ = w.Write([]byte(`{"success":false}`))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
