package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/thep200/riot-crawler/api"
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
	"gorm.io/gorm"
)

// Handler manages HTTP requests for the crawl results
type Handler struct {
	Logger log.Logger
	Config *cfg.Config
	MySQL  *db.Mysql
	API    *api.CrawlerAPI
	db     *gorm.DB
}

// NewHandler creates a new results handler
func NewHandler(logger log.Logger, config *cfg.Config, mysql *db.Mysql, crawlerAPI *api.CrawlerAPI) (*Handler, error) {
	db, err := mysql.Db()
	if err != nil {
		return nil, err
	}

	return &Handler{
		Logger: logger,
		Config: config,
		MySQL:  mysql,
		API:    crawlerAPI,
		db:     db,
	}, nil
}

// RegisterRoutes sets up the HTTP routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Read API over the crawled graph
	mux.HandleFunc("/api/summoners", h.getSummoners)
	mux.HandleFunc("/api/summoners/history", h.getSummonerHistory)
	mux.HandleFunc("/api/matches", h.getMatches)
	mux.HandleFunc("/api/batches", h.getBatches)

	// Crawl control
	mux.HandleFunc("/api/crawl", h.postCrawl)
	mux.HandleFunc("/api/crawl/stats", h.getCrawlStats)
}

// parsePagination lấy page/pageSize từ query string với giới hạn hợp lý
func parsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	return page, pageSize
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.Logger.Error(r.Context(), "Failed to encode JSON response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// postCrawl khởi động một run crawl mới ở background
func (h *Handler) postCrawl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	version := r.URL.Query().Get("version")
	if version == "" {
		version = "v1"
	}

	if err := h.API.StartCrawl(version); err != nil {
		h.Logger.Error(r.Context(), "Failed to start crawl: %v", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "started",
		"version": version,
	}); err != nil {
		h.Logger.Error(r.Context(), "Failed to encode JSON response: %v", err)
	}
}

func (h *Handler) getCrawlStats(w http.ResponseWriter, r *http.Request) {
	stats := h.API.GetCrawlStats()
	h.writeJSON(w, r, stats)
}
