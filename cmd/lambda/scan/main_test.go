package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerResolvesPortals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/mec") {
			w.Write([]byte(`<html><body><div class="footer-wrapper"><a href="/mec/noticias">Notícias</a></div></body></html>`))
			return
		}
		w.Write([]byte(`<html><body><a href="/contato">Contato</a></body></html>`))
	}))
	defer srv.Close()

	resp, err := Handler(context.Background(), Request{
		Portals: []string{srv.URL + "/mec", srv.URL + "/plain"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Found)
	assert.Equal(t, 1, resp.Missed)
	assert.Equal(t, srv.URL+"/mec/noticias", resp.Results[srv.URL+"/mec"])
	assert.Equal(t, "", resp.Results[srv.URL+"/plain"])
}

func TestHandlerEmptyEvent(t *testing.T) {
	_, err := Handler(context.Background(), Request{})
	assert.Error(t, err)
}
