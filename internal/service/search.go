package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"propsearch/internal/model"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
	"go.uber.org/zap"
)

// SearchLogger records executed searches and the feedback they receive
type SearchLogger interface {
	LogSearch(ctx context.Context, entry model.SearchLog) error
	LogFeedback(ctx context.Context, searchID, slug, action string) error
}

// Catalog is the read-only listing table searched by the service
type Catalog interface {
	LocationSource
	Records() []model.PropertyRecord
	FindBySlug(slug string) (model.PropertyRecord, bool)
}

// SearchOptions configures a SearchService
type SearchOptions struct {
	DefaultLimit int
	MaxLimit     int
	CacheSize    int64         // 0 disables the response cache
	CacheTTL     time.Duration // lifetime of a cached response
}

// SearchService handles search business logic
type SearchService struct {
	catalog   Catalog
	parser    *QueryParser
	ranker    *Ranker
	presenter *Presenter
	searchLog SearchLogger
	logger    *zap.Logger

	cache    *ccache.Cache[*model.SearchResponse]
	cacheTTL time.Duration

	defaultLimit int
	maxLimit     int

	pending sync.WaitGroup
}

// NewSearchService creates a new search service
func NewSearchService(
	catalog Catalog,
	parser *QueryParser,
	ranker *Ranker,
	presenter *Presenter,
	searchLog SearchLogger,
	logger *zap.Logger,
	opts SearchOptions,
) *SearchService {
	s := &SearchService{
		catalog:      catalog,
		parser:       parser,
		ranker:       ranker,
		presenter:    presenter,
		searchLog:    searchLog,
		logger:       logger,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
		cacheTTL:     opts.CacheTTL,
	}
	if s.defaultLimit <= 0 {
		s.defaultLimit = 10
	}
	if s.maxLimit < s.defaultLimit {
		s.maxLimit = s.defaultLimit
	}
	if opts.CacheSize > 0 && opts.CacheTTL > 0 {
		s.cache = ccache.New(ccache.Configure[*model.SearchResponse]().MaxSize(opts.CacheSize))
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// SearchEventCallback is called for streaming search events
type SearchEventCallback func(event string, data any) error

// Search parses the query, filters and ranks the catalog and renders the
// results
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	return s.SearchStream(ctx, req, nil)
}

// SearchStream performs a search reporting each pipeline stage to callback.
// A nil callback runs the search silently.
func (s *SearchService) SearchStream(ctx context.Context, req *model.SearchRequest, callback SearchEventCallback) (*model.SearchResponse, error) {
	startTime := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emit := func(event string, data any) error {
		if callback == nil {
			return nil
		}
		return callback(event, data)
	}

	query := strings.TrimSpace(req.Query)
	limit := s.resolveLimit(req.Options)
	key := cacheKey(query, limit)

	if cached := s.fromCache(key); cached != nil {
		resp := *cached
		resp.SearchID = uuid.NewString()
		resp.Took = time.Since(startTime).Milliseconds()
		s.logger.Debug("search cache hit", zap.String("query", query))
		if err := emit("criteria", resp.Criteria); err != nil {
			return nil, err
		}
		s.logSearch(&resp)
		return &resp, nil
	}

	if err := emit("parsing", map[string]any{"status": "Parsing your query..."}); err != nil {
		return nil, err
	}
	criteria := s.parser.Parse(query)
	if err := emit("criteria", criteria); err != nil {
		return nil, err
	}

	if err := emit("searching", map[string]any{"status": "Searching listings..."}); err != nil {
		return nil, err
	}
	results := s.ranker.RankResults(s.catalog.Records(), criteria)
	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	resp := &model.SearchResponse{
		SearchID: uuid.NewString(),
		Query:    query,
		Criteria: criteria,
		Cards:    s.presenter.Cards(results),
		Summary:  s.presenter.Summary(results, total, criteria),
		Total:    total,
		Took:     time.Since(startTime).Milliseconds(),
	}

	s.logger.Info("search completed",
		zap.String("search_id", resp.SearchID),
		zap.String("query", query),
		zap.Int("total", total),
		zap.Int("returned", len(resp.Cards)),
		zap.Int64("took_ms", resp.Took),
	)

	if s.cache != nil {
		s.cache.Set(key, resp, s.cacheTTL)
	}
	s.logSearch(resp)

	return resp, nil
}

// Parse extracts criteria from a query without searching
func (s *SearchService) Parse(query string) *model.QueryCriteria {
	return s.parser.Parse(query)
}

// GetProperty retrieves a single listing by its project slug
func (s *SearchService) GetProperty(slug string) (*model.PropertyRecord, bool) {
	rec, ok := s.catalog.FindBySlug(slug)
	if !ok {
		return nil, false
	}
	return &rec, true
}

// LogFeedback logs user feedback/action
func (s *SearchService) LogFeedback(ctx context.Context, searchID, slug, action string) error {
	if s.searchLog == nil {
		return nil
	}
	return s.searchLog.LogFeedback(ctx, searchID, slug, action)
}

// Close waits for pending search log writes and stops the cache
func (s *SearchService) Close() {
	s.pending.Wait()
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *SearchService) resolveLimit(opts *model.SearchOptions) int {
	if opts == nil || opts.Limit <= 0 {
		return s.defaultLimit
	}
	if opts.Limit > s.maxLimit {
		return s.maxLimit
	}
	return opts.Limit
}

func (s *SearchService) fromCache(key string) *model.SearchResponse {
	if s.cache == nil {
		return nil
	}
	item := s.cache.Get(key)
	if item == nil || item.Expired() {
		return nil
	}
	return item.Value()
}

// logSearch writes the search log entry in the background
func (s *SearchService) logSearch(resp *model.SearchResponse) {
	if s.searchLog == nil {
		return
	}
	entry := model.SearchLog{
		SearchID:       resp.SearchID,
		Query:          resp.Query,
		Criteria:       resp.Criteria,
		ResultCount:    resp.Total,
		Slugs:          make([]string, len(resp.Cards)),
		ResponseTimeMs: int(resp.Took),
	}
	for i, card := range resp.Cards {
		entry.Slugs[i] = strings.TrimPrefix(card.Link, "/project/")
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.searchLog.LogSearch(ctx, entry); err != nil {
			s.logger.Warn("failed to log search", zap.String("search_id", entry.SearchID), zap.Error(err))
		}
	}()
}

// cacheKey normalizes case and whitespace so equivalent queries share an entry
func cacheKey(query string, limit int) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ") + "|" + strconv.Itoa(limit)
}
