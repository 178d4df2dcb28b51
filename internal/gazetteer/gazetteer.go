// Package gazetteer resolves raw city names against an offline world-cities
// table. Lookup is exact first, then fuzzy partial-ratio over all known
// names, with caller hints breaking ties between same-named cities.
package gazetteer

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

//go:embed data/cities.csv
var citiesCSV string

// Default acceptance thresholds on the 0..100 similarity scale. Fuzzy hits
// below MinScore are treated as misses; the scan stops early once a
// candidate reaches EarlyExitScore.
const (
	DefaultMinScore       = 90
	DefaultEarlyExitScore = 98
)

// City is one gazetteer row. Admin1 carries the region code as published:
// letter codes for US/CA/AU and the UK nations, numeric district codes for
// most of continental Europe.
type City struct {
	Name       string
	Admin1     string
	Country    string // ISO 3166-1 alpha-2
	Population int
}

// Result is a resolved (city, region, country) triple. Country is the
// display name, not the ISO code. All fields empty on a miss.
type Result struct {
	City    string
	Region  string
	Country string
}

// Config tunes the resolver thresholds. Zero values fall back to defaults.
type Config struct {
	MinScore       int
	EarlyExitScore int
}

// Resolver holds the loaded city table and a per-run lookup cache. The table
// is immutable after New; the cache is guarded so callers may share one
// resolver across goroutines.
type Resolver struct {
	cities  []City
	byName  map[string][]int
	names   []string // unique lowercased names, table order
	cfg     Config

	mu    sync.Mutex
	cache map[string]Result
}

// New loads the embedded city table with default thresholds.
func New() (*Resolver, error) {
	return NewWithConfig(Config{})
}

// NewWithConfig loads the embedded city table using the given thresholds.
func NewWithConfig(cfg Config) (*Resolver, error) {
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	if cfg.EarlyExitScore <= 0 {
		cfg.EarlyExitScore = DefaultEarlyExitScore
	}
	cities, err := parseCities(citiesCSV)
	if err != nil {
		return nil, fmt.Errorf("loading embedded city table: %w", err)
	}
	r := &Resolver{
		cities: cities,
		byName: make(map[string][]int, len(cities)),
		cfg:    cfg,
		cache:  make(map[string]Result),
	}
	for i, c := range cities {
		key := strings.ToLower(c.Name)
		if _, seen := r.byName[key]; !seen {
			r.names = append(r.names, key)
		}
		r.byName[key] = append(r.byName[key], i)
	}
	return r, nil
}

func parseCities(raw string) ([]City, error) {
	rd := csv.NewReader(strings.NewReader(raw))
	rd.FieldsPerRecord = 4
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("city table is empty")
	}
	cities := make([]City, 0, len(rows)-1)
	for _, row := range rows[1:] {
		pop, _ := strconv.Atoi(row[3])
		cities = append(cities, City{
			Name:       row[0],
			Admin1:     row[1],
			Country:    row[2],
			Population: pop,
		})
	}
	return cities, nil
}

// Size returns the number of loaded city rows.
func (r *Resolver) Size() int { return len(r.cities) }

// Lookup resolves a raw city name, using optional region/country hints to
// choose between same-named cities. Results are cached per unique
// (name, hints) triple for the life of the resolver.
func (r *Resolver) Lookup(cityRaw, regionHint, countryHint string) Result {
	if strings.TrimSpace(cityRaw) == "" {
		return Result{}
	}
	cacheKey := strings.ToLower(strings.TrimSpace(cityRaw)) + "\x00" +
		strings.ToLower(strings.TrimSpace(regionHint)) + "\x00" +
		strings.ToLower(strings.TrimSpace(countryHint))

	r.mu.Lock()
	if res, ok := r.cache[cacheKey]; ok {
		r.mu.Unlock()
		return res
	}
	r.mu.Unlock()

	res := r.lookup(cityRaw, regionHint, countryHint)

	r.mu.Lock()
	r.cache[cacheKey] = res
	r.mu.Unlock()
	return res
}

func (r *Resolver) lookup(cityRaw, regionHint, countryHint string) Result {
	q := strings.ToLower(strings.TrimSpace(cityRaw))

	idxs := r.byName[q]
	if len(idxs) == 0 {
		name := r.fuzzyName(q)
		if name == "" {
			return Result{}
		}
		idxs = r.byName[name]
	}

	best := r.pickCandidate(idxs, regionHint, countryHint)
	hit := r.cities[best]
	return Result{
		City:    hit.Name,
		Region:  hit.Admin1,
		Country: CountryName(hit.Country),
	}
}

// fuzzyName scans every known name and returns the best partial-ratio match
// at or above the acceptance threshold, or "" on a miss. The first name to
// reach the early-exit score wins outright.
func (r *Resolver) fuzzyName(q string) string {
	bestName, bestScore := "", 0
	for _, name := range r.names {
		s := fuzzy.PartialRatio(q, name)
		if s > bestScore {
			bestScore, bestName = s, name
			if s >= r.cfg.EarlyExitScore {
				break
			}
		}
	}
	if bestScore >= r.cfg.MinScore {
		return bestName
	}
	return ""
}

// pickCandidate orders same-named cities by hint agreement (+2 for a country
// hint hit, +1 for a region hint hit), then population.
func (r *Resolver) pickCandidate(idxs []int, regionHint, countryHint string) int {
	if len(idxs) == 1 {
		return idxs[0]
	}
	region := strings.ToLower(strings.TrimSpace(regionHint))
	country := strings.ToLower(strings.TrimSpace(countryHint))

	score := func(i int) int {
		c := r.cities[i]
		s := 0
		if country != "" {
			if country == strings.ToLower(CountryName(c.Country)) || country == strings.ToLower(c.Country) {
				s += 2
			}
		}
		if region != "" && region == strings.ToLower(c.Admin1) {
			s++
		}
		return s
	}

	ordered := make([]int, len(idxs))
	copy(ordered, idxs)
	sort.SliceStable(ordered, func(a, b int) bool {
		sa, sb := score(ordered[a]), score(ordered[b])
		if sa != sb {
			return sa > sb
		}
		return r.cities[ordered[a]].Population > r.cities[ordered[b]].Population
	})
	return ordered[0]
}
