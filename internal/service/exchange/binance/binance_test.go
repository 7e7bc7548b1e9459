package binance

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adshao/go-binance/v2/futures"
)

// testClient points a futures client at a local server answering the
// endpoints the monitor uses.
func testClient(t *testing.T, routes map[string]http.HandlerFunc) *futures.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for suffix, handler := range routes {
			if strings.HasSuffix(r.URL.Path, suffix) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	cli := futures.NewClient("", "")
	cli.BaseURL = srv.URL
	return cli
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}
