package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/repository"
)

const (
	pageSize            = 20
	defaultSearchLimit  = 10
	recommendationLimit = 3
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "like": {}, "that": {}, "this": {},
	"some": {}, "movie": {}, "movies": {}, "film": {}, "films": {}, "want": {},
	"something": {}, "about": {}, "show": {}, "give": {}, "recommend": {}, "please": {},
}

// Catalog is a read-only movie and people database served by the mock API.
type Catalog struct {
	movies     []movie
	moviesByID map[int64]movie
	people     []person
	peopleByID map[int64]person
	now        func() time.Time
}

func NewCatalog() *Catalog {
	c := &Catalog{
		movies:     seedMovies,
		moviesByID: make(map[int64]movie, len(seedMovies)),
		people:     seedPeople,
		peopleByID: make(map[int64]person, len(seedPeople)),
		now:        time.Now,
	}

	for _, m := range seedMovies {
		c.moviesByID[m.id] = m
	}
	for _, p := range seedPeople {
		c.peopleByID[p.id] = p
	}

	return c
}

func (c *Catalog) Feed(_ context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error) {
	today := c.now().Format("2006-01-02")

	var selected []movie
	for _, m := range c.movies {
		upcoming := m.releaseDate > today
		if (feed == model.FeedUpcoming) == upcoming {
			selected = append(selected, m)
		}
	}

	switch feed {
	case model.FeedPopular:
		sort.SliceStable(selected, func(i, j int) bool { return selected[i].popularity > selected[j].popularity })
	case model.FeedTopRated:
		sort.SliceStable(selected, func(i, j int) bool { return selected[i].rating > selected[j].rating })
	case model.FeedUpcoming:
		sort.SliceStable(selected, func(i, j int) bool { return selected[i].releaseDate < selected[j].releaseDate })
	default:
		return nil, fmt.Errorf("unknown feed '%s': %w", feed, repository.ErrNotFound)
	}

	return paginateMovies(selected, page), nil
}

func (c *Catalog) Search(_ context.Context, query string, page int) (*model.PaginatedMovies, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	var found []movie
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.title), needle) {
			found = append(found, m)
		}
	}

	return paginateMovies(found, page), nil
}

// SemanticSearch ranks movies by the share of query words found in their
// title, overview and genres.
func (c *Catalog) SemanticSearch(_ context.Context, query string, limit int) ([]model.MovieSummary, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	scored := c.rank(query)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]model.MovieSummary, 0, len(scored))
	for _, s := range scored {
		summary := s.movie.summary()
		similarity := math.Round(s.score*1000) / 1000
		summary.Similarity = &similarity
		results = append(results, summary)
	}

	return results, nil
}

func (c *Catalog) Movie(_ context.Context, movieID int64) (*model.MovieSummary, error) {
	m, ok := c.moviesByID[movieID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	summary := m.summary()
	summary.Genres = make([]model.Genre, 0, len(m.genres))
	for _, id := range m.genres {
		summary.Genres = append(summary.Genres, model.Genre{ID: id, Name: genreNames[id]})
	}
	summary.GenreIDs = nil

	return &summary, nil
}

func (c *Catalog) Credits(_ context.Context, movieID int64) (*model.MovieCredits, error) {
	m, ok := c.moviesByID[movieID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	credits := &model.MovieCredits{
		ID:   movieID,
		Cast: make([]model.CastCredit, 0, len(m.cast)),
		Crew: make([]model.CrewCredit, 0, len(m.crew)),
	}

	for i, cr := range m.cast {
		p := c.peopleByID[cr.personID]
		credits.Cast = append(credits.Cast, model.CastCredit{
			ID:          p.id,
			Name:        p.name,
			Character:   cr.part,
			ProfilePath: optional(p.profile),
			Order:       i,
		})
	}
	for _, cr := range m.crew {
		p := c.peopleByID[cr.personID]
		credits.Crew = append(credits.Crew, model.CrewCredit{
			ID:          p.id,
			Name:        p.name,
			Job:         cr.part,
			Department:  p.department,
			ProfilePath: optional(p.profile),
		})
	}

	return credits, nil
}

// Similar returns movies sharing at least one genre, most shared first.
func (c *Catalog) Similar(_ context.Context, movieID int64, page int) (*model.PaginatedMovies, error) {
	m, ok := c.moviesByID[movieID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return paginateMovies(c.similar(m), page), nil
}

// Recommendations favours movies by the same people, then the best rated of
// the similar ones.
func (c *Catalog) Recommendations(_ context.Context, movieID int64, page int) (*model.PaginatedMovies, error) {
	m, ok := c.moviesByID[movieID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	people := make(map[int64]struct{})
	for _, cr := range append(append([]credit{}, m.cast...), m.crew...) {
		people[cr.personID] = struct{}{}
	}

	var recommended []movie
	for _, other := range c.movies {
		if other.id == m.id {
			continue
		}
		if other.sharesPeople(people) || sharedGenres(m, other) >= 2 {
			recommended = append(recommended, other)
		}
	}
	sort.SliceStable(recommended, func(i, j int) bool { return recommended[i].rating > recommended[j].rating })

	return paginateMovies(recommended, page), nil
}

func (c *Catalog) SearchPeople(_ context.Context, query string, page int) (*model.PaginatedPeople, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	var found []model.PersonSummary
	for _, p := range c.people {
		if strings.Contains(strings.ToLower(p.name), needle) {
			found = append(found, p.summary())
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Popularity > found[j].Popularity })

	start, end, pages := bounds(len(found), page)
	return &model.PaginatedPeople{
		Page:         clampPage(page),
		Results:      append([]model.PersonSummary{}, found[start:end]...),
		TotalPages:   pages,
		TotalResults: len(found),
	}, nil
}

func (c *Catalog) PersonCredits(_ context.Context, personID int64) (*model.PersonCredits, error) {
	if _, ok := c.peopleByID[personID]; !ok {
		return nil, repository.ErrNotFound
	}

	credits := &model.PersonCredits{
		ID:   personID,
		Cast: []model.PersonCreditMedia{},
		Crew: []model.PersonCreditMedia{},
	}

	for _, m := range c.movies {
		for _, cr := range m.cast {
			if cr.personID == personID {
				credits.Cast = append(credits.Cast, m.personCredit(cr.part, ""))
			}
		}
		for _, cr := range m.crew {
			if cr.personID == personID {
				credits.Crew = append(credits.Crew, m.personCredit("", cr.part))
			}
		}
	}

	return credits, nil
}

// Recommend picks movies for a chat message. A message naming a catalog title
// gets titles similar to it; otherwise the semantic ranking is used.
func (c *Catalog) Recommend(message string) []model.MovieRecommendation {
	lower := strings.ToLower(message)

	for _, m := range c.movies {
		if !strings.Contains(lower, strings.ToLower(m.title)) {
			continue
		}

		similar := c.similar(m)
		if len(similar) > recommendationLimit {
			similar = similar[:recommendationLimit]
		}

		recs := make([]model.MovieRecommendation, 0, len(similar))
		for _, other := range similar {
			reason := fmt.Sprintf("Like %s, it is a %s story.", m.title, strings.ToLower(genreNames[firstSharedGenre(m, other)]))
			recs = append(recs, c.recommendation(other, reason))
		}
		return recs
	}

	scored := c.rank(message)
	if len(scored) > recommendationLimit {
		scored = scored[:recommendationLimit]
	}

	recs := make([]model.MovieRecommendation, 0, len(scored))
	for _, s := range scored {
		recs = append(recs, c.recommendation(s.movie, fmt.Sprintf("Matches %s.", strings.Join(s.matched, ", "))))
	}
	return recs
}

type scoredMovie struct {
	movie   movie
	score   float64
	matched []string
}

func (c *Catalog) rank(query string) []scoredMovie {
	terms := tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	var scored []scoredMovie
	for _, m := range c.movies {
		words := make(map[string]struct{})
		for _, w := range tokenize(m.document()) {
			words[w] = struct{}{}
		}

		var matched []string
		for _, term := range terms {
			if _, ok := words[term]; ok {
				matched = append(matched, term)
			}
		}
		if len(matched) == 0 {
			continue
		}

		scored = append(scored, scoredMovie{
			movie:   m,
			score:   float64(len(matched)) / float64(len(terms)),
			matched: matched,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].movie.rating > scored[j].movie.rating
	})

	return scored
}

func (c *Catalog) similar(m movie) []movie {
	var similar []movie
	for _, other := range c.movies {
		if other.id != m.id && sharedGenres(m, other) > 0 {
			similar = append(similar, other)
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		si, sj := sharedGenres(m, similar[i]), sharedGenres(m, similar[j])
		if si != sj {
			return si > sj
		}
		return similar[i].rating > similar[j].rating
	})

	return similar
}

func (c *Catalog) recommendation(m movie, reason string) model.MovieRecommendation {
	rec := model.MovieRecommendation{
		ID:          m.id,
		Title:       m.title,
		Reason:      reason,
		PosterPath:  optional(m.poster),
		ReleaseDate: m.releaseDate,
		Overview:    m.overview,
		TrailerKey:  optional(m.trailer),
	}
	if m.rating > 0 {
		rating := m.rating
		rec.VoteAverage = &rating
	}

	for _, other := range c.similar(m) {
		if !other.hasGenre(genreThriller) {
			continue
		}
		rec.Thrillers = append(rec.Thrillers, model.RelatedMovie{ID: other.id, Title: other.title, PosterPath: optional(other.poster)})
		if len(rec.Thrillers) == 2 {
			break
		}
	}

	return rec
}

func (m movie) summary() model.MovieSummary {
	summary := model.MovieSummary{
		ID:           m.id,
		Title:        m.title,
		Overview:     m.overview,
		ReleaseDate:  m.releaseDate,
		PosterPath:   optional(m.poster),
		BackdropPath: optional(m.backdrop),
		Runtime:      m.runtime,
		GenreIDs:     append([]int{}, m.genres...),
	}
	if m.rating > 0 {
		rating := m.rating
		summary.VoteAverage = &rating
	}
	return summary
}

func (m movie) personCredit(character, job string) model.PersonCreditMedia {
	return model.PersonCreditMedia{
		ID:          m.id,
		Title:       m.title,
		MediaType:   model.MediaMovie,
		Character:   character,
		Job:         job,
		ReleaseDate: m.releaseDate,
		PosterPath:  optional(m.poster),
	}
}

func (m movie) document() string {
	parts := []string{m.title, m.overview}
	for _, id := range m.genres {
		parts = append(parts, genreNames[id])
	}
	return strings.Join(parts, " ")
}

func (m movie) hasGenre(genre int) bool {
	for _, id := range m.genres {
		if id == genre {
			return true
		}
	}
	return false
}

func (m movie) sharesPeople(people map[int64]struct{}) bool {
	for _, cr := range append(append([]credit{}, m.cast...), m.crew...) {
		if _, ok := people[cr.personID]; ok {
			return true
		}
	}
	return false
}

func (p person) summary() model.PersonSummary {
	return model.PersonSummary{
		ID:                 p.id,
		Name:               p.name,
		KnownForDepartment: p.department,
		ProfilePath:        optional(p.profile),
		Popularity:         p.popularity,
	}
}

func sharedGenres(a, b movie) int {
	n := 0
	for _, id := range a.genres {
		if b.hasGenre(id) {
			n++
		}
	}
	return n
}

func firstSharedGenre(a, b movie) int {
	for _, id := range a.genres {
		if b.hasGenre(id) {
			return id
		}
	}
	return 0
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

func paginateMovies(movies []movie, page int) *model.PaginatedMovies {
	start, end, pages := bounds(len(movies), page)

	results := make([]model.MovieSummary, 0, end-start)
	for _, m := range movies[start:end] {
		results = append(results, m.summary())
	}

	return &model.PaginatedMovies{
		Page:         clampPage(page),
		Results:      results,
		TotalPages:   pages,
		TotalResults: len(movies),
	}
}

func bounds(total, page int) (int, int, int) {
	pages := (total + pageSize - 1) / pageSize
	start := (clampPage(page) - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end, pages
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
