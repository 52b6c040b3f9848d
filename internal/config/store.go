package config

import "sync"

// Store loads the configuration at most once and hands the same *Config to
// every caller. Concurrent first calls wait for the single load.
type Store struct {
	opts Options
	load func(Options) (*Config, error)

	once sync.Once
	cfg  *Config
	err  error
}

// NewStore returns a Store that will read configuration according to opts.
func NewStore(opts Options) *Store {
	return &Store{opts: opts, load: Load}
}

// Get returns the loaded configuration. A failed load is cached as well; the
// source is never re-read.
func (s *Store) Get() (*Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = s.load(s.opts)
	})
	return s.cfg, s.err
}

// MustGet is Get for process start, where a configuration error is fatal.
func (s *Store) MustGet() *Config {
	cfg, err := s.Get()
	if err != nil {
		panic(err)
	}
	return cfg
}
