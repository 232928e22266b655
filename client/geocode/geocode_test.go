package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geocodeServer(t *testing.T, status string, lat, lng float64, calls *atomic.Int32, delay time.Duration) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		time.Sleep(delay)

		resp := map[string]any{"status": status}
		if status == "OK" {
			resp["results"] = []map[string]any{
				{"geometry": map[string]any{"location": map[string]float64{"lat": lat, "lng": lng}}},
			}
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestResolve(t *testing.T) {
	t.Run("ok returns coordinates", func(t *testing.T) {
		srv := geocodeServer(t, "OK", -26.9194, -49.0661, nil, 0)
		defer srv.Close()

		c := New("test-key", WithBaseURL(srv.URL))
		coords, err := c.Resolve(context.Background(), "Rua XV de Novembro, Blumenau")

		require.NoError(t, err)
		assert.InDelta(t, -26.9194, coords.Lat, 0.0001)
		assert.InDelta(t, -49.0661, coords.Lng, 0.0001)
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			status string
			want   error
		}{
			{"ZERO_RESULTS", ErrNoResults},
			{"REQUEST_DENIED", ErrDenied},
			{"OVER_QUERY_LIMIT", ErrOverLimit},
		}
		for _, tt := range tests {
			srv := geocodeServer(t, tt.status, 0, 0, nil, 0)
			c := New("test-key", WithBaseURL(srv.URL))

			_, err := c.Resolve(context.Background(), "qualquer endereço")
			assert.ErrorIs(t, err, tt.want, tt.status)
			srv.Close()
		}
	})

	t.Run("concurrent lookups for one address collapse", func(t *testing.T) {
		var calls atomic.Int32
		srv := geocodeServer(t, "OK", -26.9, -49.0, &calls, 50*time.Millisecond)
		defer srv.Close()

		c := New("test-key", WithBaseURL(srv.URL))

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				coords, err := c.Resolve(context.Background(), "Rua Sete de Setembro, 100")
				assert.NoError(t, err)
				assert.NotNil(t, coords)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("blank address short-circuits", func(t *testing.T) {
		c := New("test-key")
		_, err := c.Resolve(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrNoResults)
	})
}
