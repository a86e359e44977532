package testingx

//
// In-memory FinBoard backend for testing the API client.
//

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/runtimex"
	"github.com/google/uuid"
)

// FinboardBackend implements the FinBoard API endpoints in memory.
//
// The zero value is ready to use. Use [*FinboardBackend.NewMux] to get
// an [http.Handler] to pass to [httptest.NewServer].
//
// This struct methods panic for several errors. Only use for testing purposes!
type FinboardBackend struct {
	// DenyWithStatusOK OPTIONALLY makes the backend report authorization
	// failures using a 200 status and a {"code":403,"error":"forbidden"}
	// body, like a misconfigured gateway would do.
	DenyWithStatusOK bool

	// alerts contains the alerts indexed by ID.
	alerts map[int64]*model.FinboardAlert

	// lastID is the last ID we assigned.
	lastID int64

	// mu provides mutual exclusion.
	mu sync.Mutex

	// prices maps a normalized symbol to its price.
	prices map[string]float64

	// requests counts the requests we received.
	requests atomic.Int64

	// token is the token that authorizes requests.
	token string

	// watchlist contains the watchlist indexed by ID.
	watchlist map[int64]*model.FinboardWatchlistEntry
}

// NewToken generates a new random token, configures the backend to
// accept it, and returns it.
func (h *FinboardBackend) NewToken() string {
	token := uuid.Must(uuid.NewRandom()).String()
	h.SetToken(token)
	return token
}

// SetToken sets the token that authorizes requests.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (h *FinboardBackend) SetToken(token string) {
	defer h.mu.Unlock()
	h.mu.Lock()
	h.token = token
}

// SetPrice sets the price returned for symbol.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (h *FinboardBackend) SetPrice(symbol string, price float64) {
	defer h.mu.Unlock()
	h.mu.Lock()
	if h.prices == nil {
		h.prices = make(map[string]float64)
	}
	h.prices[NormalizeSymbol(symbol)] = price
}

// AddAlert adds an alert and returns its ID.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (h *FinboardBackend) AddAlert(symbol, name, cond string, enabled bool) int64 {
	defer h.mu.Unlock()
	h.mu.Lock()
	if h.alerts == nil {
		h.alerts = make(map[int64]*model.FinboardAlert)
	}
	h.lastID++
	alert := &model.FinboardAlert{
		ID:         h.lastID,
		Symbol:     symbol,
		SymbolNorm: NormalizeSymbol(symbol),
		Name:       name,
		Cond:       cond,
		Enabled:    boolToInt(enabled),
	}
	h.alerts[alert.ID] = alert
	return alert.ID
}

// Requests returns the number of requests received so far.
func (h *FinboardBackend) Requests() int64 {
	return h.requests.Load()
}

// NewMux constructs an [*http.ServeMux] configured with the correct routing.
func (h *FinboardBackend) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /api/price", h.counting(h.handlePrice()))
	mux.Handle("GET /api/watchlist", h.counting(h.handleWatchlistList()))
	mux.Handle("POST /api/watchlist", h.counting(h.withAuthentication(h.handleWatchlistAdd())))
	mux.Handle("DELETE /api/watchlist/{id}", h.counting(h.withAuthentication(h.handleWatchlistDelete())))
	mux.Handle("GET /api/alerts", h.counting(h.withAuthentication(h.handleAlertsList())))
	mux.Handle("PATCH /api/alerts/{id}", h.counting(h.withAuthentication(h.handleAlertsPatch())))
	mux.Handle("GET /api/auth/echo", h.counting(h.handleAuthEcho()))
	return mux
}

func (h *FinboardBackend) counting(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		handler.ServeHTTP(w, r)
	})
}

// authorized returns whether the request carries the configured token.
func (h *FinboardBackend) authorized(r *http.Request) bool {
	defer h.mu.Unlock()
	h.mu.Lock()
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") || h.token == "" {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")) == h.token
}

func (h *FinboardBackend) withAuthentication(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authorized(r) {
			handler.ServeHTTP(w, r)
			return
		}
		if h.DenyWithStatusOK {
			writeJSON(w, http.StatusOK, &model.FinboardErrorResponse{Code: 403, Error: "forbidden"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, &model.FinboardErrorResponse{Error: "unauthorized"})
	})
}

func (h *FinboardBackend) handlePrice() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
		if symbol == "" {
			writeJSON(w, http.StatusBadRequest, &model.FinboardErrorResponse{Error: "symbol required"})
			return
		}
		h.mu.Lock()
		price, found := h.prices[NormalizeSymbol(symbol)]
		h.mu.Unlock()
		quote := &model.FinboardPriceQuote{Symbol: symbol}
		if found {
			quote.Price = &price
			quote.OK = true
		}
		writeJSON(w, http.StatusOK, quote)
	})
}

func (h *FinboardBackend) handleWatchlistList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		entries := []model.FinboardWatchlistEntry{}
		for _, entry := range h.watchlist {
			entries = append(entries, *entry)
		}
		h.mu.Unlock()
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].ID > entries[j].ID
		})
		writeJSON(w, http.StatusOK, entries)
	})
}

func (h *FinboardBackend) handleWatchlistAdd() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request model.FinboardWatchlistAddRequest
		_ = json.Unmarshal(runtimex.Try1(io.ReadAll(r.Body)), &request) // invalid bodies are treated as empty
		symbol := strings.TrimSpace(request.Symbol)
		if symbol == "" {
			writeJSON(w, http.StatusBadRequest, &model.FinboardErrorResponse{Error: "symbol required"})
			return
		}
		h.mu.Lock()
		if h.watchlist == nil {
			h.watchlist = make(map[int64]*model.FinboardWatchlistEntry)
		}
		h.lastID++
		entry := &model.FinboardWatchlistEntry{
			ID:         h.lastID,
			Symbol:     symbol,
			SymbolNorm: NormalizeSymbol(symbol),
			Label:      strings.TrimSpace(request.Label),
		}
		h.watchlist[entry.ID] = entry
		h.mu.Unlock()
		writeJSON(w, http.StatusCreated, entry)
	})
}

func (h *FinboardBackend) handleWatchlistDelete() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.mu.Lock()
		delete(h.watchlist, id)
		h.mu.Unlock()
		writeJSON(w, http.StatusOK, &model.FinboardOKResponse{OK: true})
	})
}

func (h *FinboardBackend) handleAlertsList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		alerts := []model.FinboardAlert{}
		for _, alert := range h.alerts {
			alerts = append(alerts, *alert)
		}
		h.mu.Unlock()
		sort.Slice(alerts, func(i, j int) bool {
			return alerts[i].ID > alerts[j].ID
		})
		writeJSON(w, http.StatusOK, alerts)
	})
}

func (h *FinboardBackend) handleAlertsPatch() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var patch model.FinboardAlertPatch
		_ = json.Unmarshal(runtimex.Try1(io.ReadAll(r.Body)), &patch) // invalid bodies are treated as empty
		if patch.IsEmpty() {
			writeJSON(w, http.StatusBadRequest, &model.FinboardErrorResponse{Error: "no fields"})
			return
		}
		h.mu.Lock()
		alert := h.alerts[id]
		if alert == nil {
			h.mu.Unlock()
			writeJSON(w, http.StatusOK, &model.FinboardOKResponse{OK: true})
			return
		}
		if patch.Enabled != nil {
			alert.Enabled = boolToInt(*patch.Enabled)
		}
		if patch.Name != nil {
			alert.Name = *patch.Name
		}
		if patch.Cond != nil {
			alert.Cond = *patch.Cond
		}
		copied := *alert
		h.mu.Unlock()
		writeJSON(w, http.StatusOK, &copied)
	})
}

func (h *FinboardBackend) handleAuthEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &model.FinboardAuthEcho{Authorized: h.authorized(r)})
	})
}

var symbolAliases = map[string]string{
	"BTC":    "BTC-USD",
	"BTCUSD": "BTC-USD",
	"ETH":    "ETH-USD",
	"ETHUSD": "ETH-USD",
	"TSMC":   "2330.TW",
}

var currencyPairRegexp = regexp.MustCompile(`^([A-Z]{3})/([A-Z]{3})$`)

// NormalizeSymbol maps a user-entered symbol to the ticker the FinBoard
// backend quotes: "usd/twd" becomes "USDTWD=X" and "BTC" becomes "BTC-USD".
func NormalizeSymbol(raw string) string {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if m := currencyPairRegexp.FindStringSubmatch(symbol); m != nil {
		return m[1] + m[2] + "=X"
	}
	if alias, found := symbolAliases[symbol]; found {
		return alias
	}
	return symbol
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	data := runtimex.Try1(json.Marshal(value))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
