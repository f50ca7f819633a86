package paging_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"itemshare/app/echoServer/paging"
)

func newCtx(t *testing.T, query string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		want    paging.Page
		wantErr string
	}{
		{name: "defaults", query: "", want: paging.Page{From: 0, Size: 10}},
		{name: "explicit", query: "from=25&size=10", want: paging.Page{From: 25, Size: 10}},
		{name: "max size", query: "size=100", want: paging.Page{From: 0, Size: 100}},
		{name: "negative from", query: "from=-1", wantErr: "from must be >= 0"},
		{name: "zero size", query: "size=0", wantErr: "size must be between 1 and 100"},
		{name: "oversized", query: "size=101", wantErr: "size must be between 1 and 100"},
		{name: "from not a number", query: "from=abc", wantErr: "from must be an integer"},
		{name: "size not a number", query: "size=ten", wantErr: "size must be an integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paging.Parse(newCtx(t, tc.query))
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
