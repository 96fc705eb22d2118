package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/httpapi"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
)

func newServer(t *testing.T, opts ...httpapi.Option) http.Handler {
	t.Helper()
	opts = append([]httpapi.Option{
		httpapi.WithRequestIDGenerator(func() string { return "req-1" }),
	}, opts...)
	return httpapi.New(opts...).Handler()
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCountries(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("full list", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))

		resp := decode[httpapi.CountriesResponse](t, rec)
		assert.Equal(t, "en", resp.Locale)
		assert.Len(t, resp.Countries, resp.Count)
		assert.Greater(t, resp.Count, 200)
		assert.Empty(t, resp.Countries[0].Flag)
	})

	t.Run("filters and preferred", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries?allowed=US,GB,CA&excluded=us&preferred=GB")
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[httpapi.CountriesResponse](t, rec)
		assert.Equal(t, []string{"GB", "CA"}, country.Codes(resp.Countries))
	})

	t.Run("repeated parameters and flags", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries?allowed=FR&allowed=DE&flags=true")
		resp := decode[httpapi.CountriesResponse](t, rec)
		require.Len(t, resp.Countries, 2)
		for _, c := range resp.Countries {
			assert.NotEmpty(t, c.Flag, c.Code)
		}
	})

	t.Run("localized names", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries?locale=es&allowed=US")
		resp := decode[httpapi.CountriesResponse](t, rec)
		require.Len(t, resp.Countries, 1)
		assert.Equal(t, "es", resp.Locale)
		assert.Equal(t, "Estados Unidos", resp.Countries[0].Name)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("ranked", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.CountriesResponse](t, get(t, h, "/v1/countries/search?q=canada&ranked=true"))
		require.NotEmpty(t, resp.Countries)
		assert.Equal(t, "CA", resp.Countries[0].Code)
		assert.Equal(t, "canada", resp.Query)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries/search?q=xyzabc123")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[httpapi.CountriesResponse](t, rec)
		assert.Zero(t, resp.Count)
	})

	t.Run("blank query keeps the list", func(t *testing.T) {
		t.Parallel()
		all := decode[httpapi.CountriesResponse](t, get(t, h, "/v1/countries"))
		found := decode[httpapi.CountriesResponse](t, get(t, h, "/v1/countries/search?q=+"))
		assert.Equal(t, all.Countries, found.Countries)
	})
}

func TestLookups(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("by code", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries/gb")
		require.Equal(t, http.StatusOK, rec.Code)
		c := decode[country.Country](t, rec)
		assert.Equal(t, "GB", c.Code)
		assert.Equal(t, "+44", c.DialCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/countries/XX")
		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decode[map[string]string](t, rec)
		assert.Equal(t, "Not Found", body["error"])
		assert.Equal(t, "req-1", body["request_id"])
	})

	t.Run("by dial code", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/dial-codes/971")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "AE", decode[country.Country](t, rec).Code)
	})

	t.Run("unknown dial code", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusNotFound, get(t, h, "/v1/dial-codes/999999").Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v2/nothing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	})
}

func TestPhone(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("parse", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/phone/parse?number=%2B14155552671")
		require.Equal(t, http.StatusOK, rec.Code)
		p := decode[phone.Parsed](t, rec)
		assert.True(t, p.IsValid)
		assert.Equal(t, "US", p.CountryCode)
		assert.Equal(t, "+14155552671", p.Number)
	})

	t.Run("parse garbage", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/phone/parse?number=abc&region=us")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[phone.Parsed](t, rec).IsValid)
	})

	t.Run("format national", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.FormatResponse](t, get(t, h, "/v1/phone/format?number=4155552671&region=US&style=national"))
		assert.Equal(t, phone.StyleNational, resp.Style)
		assert.Equal(t, "(415) 555-2671", resp.Formatted)
	})

	t.Run("unknown style means e164", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.FormatResponse](t, get(t, h, "/v1/phone/format?number=4155552671&region=US&style=bogus"))
		assert.Equal(t, phone.StyleE164, resp.Style)
		assert.Equal(t, "+14155552671", resp.Formatted)
	})

	t.Run("default region", func(t *testing.T) {
		t.Parallel()
		h := newServer(t, httpapi.WithDefaultRegion("gb"))
		p := decode[phone.Parsed](t, get(t, h, "/v1/phone/parse?number=020+7183+8750"))
		assert.True(t, p.IsValid)
		assert.Equal(t, "GB", p.CountryCode)
		assert.Equal(t, "+442071838750", p.Number)
	})

	t.Run("normalize", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.NormalizeResponse](t, get(t, h, "/v1/phone/normalize?text=%2B1+(415)+555-2671"))
		assert.Equal(t, "+14155552671", resp.Normalized)
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()
	h := newServer(t)

	t.Run("query locale", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.StringsResponse](t, get(t, h, "/v1/strings?locale=ar"))
		assert.True(t, resp.RTL)
		assert.Equal(t, "ar", resp.Language)
		assert.Equal(t, "أدخل رقم الهاتف", resp.Strings.EnterPhoneNumber)
	})

	t.Run("accept language", func(t *testing.T) {
		t.Parallel()
		rec := get(t, h, "/v1/strings", "Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
		resp := decode[httpapi.StringsResponse](t, rec)
		assert.Equal(t, "fr", resp.Language)
		assert.False(t, resp.RTL)
		assert.Equal(t, "fr", rec.Header().Get("Content-Language"))
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		resp := decode[httpapi.StringsResponse](t, get(t, h, "/v1/strings"))
		assert.Equal(t, "en", resp.Locale)
		assert.Equal(t, "Enter phone number", resp.Strings.EnterPhoneNumber)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		h := newServer(t)
		rec := get(t, h, "/healthz?format=text")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		h := newServer(t)
		rec := get(t, h, "/readyz")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[httpapi.HealthResponse](t, rec)
		assert.Equal(t, httpapi.StatusHealthy, resp.Status)
		assert.Contains(t, resp.Checks, "directory")
		assert.Contains(t, resp.Checks, "phone")
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()
		h := newServer(t, httpapi.WithChecks(httpapi.Checks{
			"upstream": func(context.Context) error { return errors.New("connection refused") },
		}))
		rec := get(t, h, "/readyz")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decode[httpapi.HealthResponse](t, rec)
		assert.Equal(t, httpapi.StatusUnhealthy, resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["upstream"].Error)
		assert.Equal(t, httpapi.StatusHealthy, resp.Checks["directory"].Status)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		h := newServer(t,
			httpapi.WithCheckTimeout(10*time.Millisecond),
			httpapi.WithChecks(httpapi.Checks{
				"slow": func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				},
			}),
		)
		rec := get(t, h, "/readyz?format=text")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
	})
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	srv := httpapi.New(httpapi.WithRegistry(reg))
	h := srv.Handler()

	get(t, h, "/v1/countries/US")
	get(t, h, "/v1/countries/XX")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `phoneinput_http_requests_total{method="GET",route="/v1/countries/{code}",status="200"} 1`)
	assert.Contains(t, body, `phoneinput_http_requests_total{method="GET",route="/v1/countries/{code}",status="404"} 1`)
	assert.Contains(t, body, `phoneinput_lookup_misses_total{kind="code"} 1`)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("request id from upstream", func(t *testing.T) {
		t.Parallel()
		var seen string
		h := httpapi.RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logger.RequestID(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "upstream", seen)
		assert.Equal(t, "upstream", rec.Header().Get("X-Request-ID"))
	})

	t.Run("generated request id", func(t *testing.T) {
		t.Parallel()
		h := httpapi.RequestID(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

	t.Run("recover", func(t *testing.T) {
		t.Parallel()
		var buf strings.Builder
		log := logger.New([]logger.Option{logger.WithOutput(&buf)}, logger.RequestIDExtractor())

		h := httpapi.RequestID(func() string { return "boom-1" })(
			httpapi.Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			})),
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode[map[string]string](t, rec)
		assert.Equal(t, "boom-1", body["request_id"])
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), `"request_id":"boom-1"`)
	})
}

func TestAsPanicError(t *testing.T) {
	t.Parallel()

	err := httpapi.NewError(http.StatusInternalServerError, "x", &httpapi.PanicError{Value: "boom"})
	pe, ok := httpapi.AsPanicError(err)
	require.True(t, ok)
	assert.Equal(t, "boom", pe.Value)
	assert.Equal(t, "panic: boom", pe.Error())

	_, ok = httpapi.AsPanicError(errors.New("plain"))
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	t.Parallel()

	hookCalled := make(chan struct{}, 1)
	srv := httpapi.New(
		httpapi.WithAddress("127.0.0.1:0"),
		httpapi.WithShutdownTimeout(time.Second),
		httpapi.WithShutdownHook(func(context.Context) error {
			hookCalled <- struct{}{}
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Len(t, hookCalled, 1)
}
