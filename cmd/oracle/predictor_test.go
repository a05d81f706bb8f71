package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestPredictorVerdict(t *testing.T) {
	var subject util.Uint160
	subject[0] = 42

	newServer := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotEmpty(t, r.URL.Query().Get("account"))
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	}

	t.Run("correct", func(t *testing.T) {
		srv := newServer(http.StatusOK, `{"prediction": 0}`)
		defer srv.Close()

		ok, err := newPredictor(srv.URL, "fail").verdict(context.Background(), subject)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("misbehaving", func(t *testing.T) {
		srv := newServer(http.StatusOK, `{"prediction": 1}`)
		defer srv.Close()

		ok, err := newPredictor(srv.URL, "fail").verdict(context.Background(), subject)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("fallback", func(t *testing.T) {
		srv := newServer(http.StatusInternalServerError, "")
		defer srv.Close()

		ok, err := newPredictor(srv.URL, "correct").verdict(context.Background(), subject)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = newPredictor(srv.URL, "incorrect").verdict(context.Background(), subject)
		require.NoError(t, err)
		require.False(t, ok)

		_, err = newPredictor(srv.URL, "fail").verdict(context.Background(), subject)
		require.Error(t, err)
	})
}
