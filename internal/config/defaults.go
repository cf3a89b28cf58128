package config

const (
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"
	defaultTMDBWebBaseURL   = "https://themoviedb.org"
	defaultTMDBLanguage     = "en-US"
	defaultFetchWorkers     = 20
	defaultFetchLimit       = 20
	defaultIDColumn         = "Const"
	defaultDiscoverWorkers  = 10
	defaultDiscoverPages    = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			WebBaseURL:   defaultTMDBWebBaseURL,
			Language:     defaultTMDBLanguage,
		},
		Fetch: Fetch{
			Workers:      defaultFetchWorkers,
			DefaultLimit: defaultFetchLimit,
			IDColumn:     defaultIDColumn,
		},
		Discover: Discover{
			Workers: defaultDiscoverWorkers,
			Pages:   defaultDiscoverPages,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
