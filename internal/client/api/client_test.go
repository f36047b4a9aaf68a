package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

// memTokens is an in-memory TokenStore for tests.
type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func (m *memTokens) Tokens(ctx context.Context) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.refresh, nil
}

func (m *memTokens) SetTokens(ctx context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = access, refresh
	return nil
}

func (m *memTokens) ClearTokens(ctx context.Context) error {
	return m.SetTokens(ctx, "", "")
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, handler http.Handler, tokens *memTokens) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, tokens, testLogger())
}

func TestBearerHeaderAttached(t *testing.T) {
	tokens := &memTokens{access: "acc-1", refresh: "ref-1"}

	var gotAuth, gotRequestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(models.StageTotals{})
	}), tokens)

	_, err := c.TotalPerStage(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer acc-1", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestListParamsOnTheWire(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}

	var gotQuery map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(Pagination[models.Animal]{Meta: Meta{CurrentPage: 2}})
	}), tokens)

	page, err := c.ListAnimals(context.Background(), ListParams{
		Page: 2, Limit: 10, SortBy: "name:ASC", Search: "rex",
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Meta.CurrentPage)

	require.Equal(t, []string{"2"}, gotQuery["page"])
	require.Equal(t, []string{"10"}, gotQuery["limit"])
	require.Equal(t, []string{"name:ASC"}, gotQuery["sortBy"])
	require.Equal(t, []string{"rex"}, gotQuery["search"])
	require.Len(t, gotQuery, 4)
}

func TestListParamsDefaultsAndEmptySearchOmitted(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}

	var gotQuery map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(Pagination[models.Medicine]{})
	}), tokens)

	_, err := c.ListMedicines(context.Background(), ListParams{})
	require.NoError(t, err)

	require.Equal(t, []string{"1"}, gotQuery["page"])
	require.Equal(t, []string{"10"}, gotQuery["limit"])
	require.Equal(t, []string{DefaultSortBy}, gotQuery["sortBy"])
	require.NotContains(t, gotQuery, "search")
}

func TestRefreshAndReplayOn401(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "ref-1"}

	var mu sync.Mutex
	var animalCalls, refreshCalls int
	var seenAuth []string

	mux := http.NewServeMux()
	mux.HandleFunc("/animals", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		animalCalls++
		seenAuth = append(seenAuth, r.Header.Get("Authorization"))
		mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Pagination[models.Animal]{})
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		refreshCalls++
		mu.Unlock()

		require.Empty(t, r.Header.Get("Authorization"), "refresh call must not carry a bearer token")

		var body refreshTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ref-1", body.RefreshToken)

		_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "fresh", RefreshToken: "ref-2"})
	})

	c := newTestClient(t, mux, tokens)

	_, err := c.ListAnimals(context.Background(), ListParams{})
	require.NoError(t, err)

	require.Equal(t, 2, animalCalls, "original request replayed exactly once")
	require.Equal(t, 1, refreshCalls)
	require.Equal(t, []string{"Bearer stale", "Bearer fresh"}, seenAuth)

	access, refresh, _ := tokens.Tokens(context.Background())
	require.Equal(t, "fresh", access)
	require.Equal(t, "ref-2", refresh)
}

func TestSecond401IsNotRetried(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "ref-1"}

	var animalCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/animals", func(w http.ResponseWriter, r *http.Request) {
		animalCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "fresh", RefreshToken: "ref-2"})
	})

	c := newTestClient(t, mux, tokens)

	_, err := c.ListAnimals(context.Background(), ListParams{})
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Equal(t, 2, animalCalls, "exactly one replay per logical request")
}

func TestRefreshFailureClearsTokens(t *testing.T) {
	tokens := &memTokens{access: "stale", refresh: "dead"}

	mux := http.NewServeMux()
	mux.HandleFunc("/animals", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := newTestClient(t, mux, tokens)

	_, err := c.ListAnimals(context.Background(), ListParams{})
	require.ErrorIs(t, err, common.ErrUnauthorized)

	access, refresh, _ := tokens.Tokens(context.Background())
	require.Empty(t, access)
	require.Empty(t, refresh)
}

func TestSignIn(t *testing.T) {
	tokens := &memTokens{}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		var body signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Email != "vet@shelter.org" || body.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(TokenPair{AccessToken: "a", RefreshToken: "r"})
	})

	c := newTestClient(t, mux, tokens)

	pair, err := c.SignIn(context.Background(), "vet@shelter.org", "s3cret")
	require.NoError(t, err)
	require.Equal(t, TokenPair{AccessToken: "a", RefreshToken: "r"}, pair)

	_, err = c.SignIn(context.Background(), "vet@shelter.org", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestConflictAndNotFoundMapping(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}

	mux := http.NewServeMux()
	mux.HandleFunc("/medicine-brands/busy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "brand has active medicines"}`))
	})
	mux.HandleFunc("/medicine-brands/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "not found"}`))
	})

	c := newTestClient(t, mux, tokens)

	err := c.DeleteMedicineBrand(context.Background(), "busy")
	require.ErrorIs(t, err, common.ErrConflict)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "brand has active medicines", apiErr.Message)

	_, err = c.GetMedicineBrand(context.Background(), "gone")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestValidationMessageListJoined(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": ["name should not be empty", "quantity must be positive"]}`))
	}), tokens)

	err := c.CreateMedicine(context.Background(), CreateMedicineRequest{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "name should not be empty; quantity must be positive", apiErr.Message)
}

func TestAttachmentUploadIsMultipart(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}

	var gotField, gotFilename, gotContent string
	mux := http.NewServeMux()
	mux.HandleFunc("/attachments/animal/animal-1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFilename = headers[0].Filename
			f, err := headers[0].Open()
			require.NoError(t, err)
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			gotContent = string(data)
		}
		w.WriteHeader(http.StatusCreated)
	})

	c := newTestClient(t, mux, tokens)

	err := c.CreateAttachment(context.Background(), "animal-1", "/tmp/exam.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	require.Equal(t, "file", gotField)
	require.Equal(t, "exam.pdf", gotFilename)
	require.Equal(t, "pdf-bytes", gotContent)
}

func TestUnreachableServerMapsToUnavailable(t *testing.T) {
	tokens := &memTokens{access: "acc", refresh: "ref"}
	c := New("http://127.0.0.1:1", tokens, testLogger())

	_, err := c.ListAnimals(context.Background(), ListParams{})
	require.ErrorIs(t, err, common.ErrUnavailable)
}
