package knapsack

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitbucket.org/optimizer/backend/core/server"
	"github.com/stretchr/testify/assert"
)

const f4 = `4 11
6 2
10 4

12 6
13 7
`

func TestParse(t *testing.T) {
	cases := []struct {
		Name  string
		Input string
		Error error
	}{
		{Name: "Correct", Input: f4},
		{Name: "Empty", Input: "", Error: ErrorMalformedDataset},
		{Name: "Missing items", Input: "3 10\n1 1\n", Error: ErrorMalformedDataset},
		{Name: "Extra items", Input: "1 10\n1 1\n2 2\n", Error: ErrorMalformedDataset},
		{Name: "Huge count", Input: "1e18 10\n1 2\n", Error: ErrorMalformedDataset},
		{Name: "Count above limit", Input: fmt.Sprintf("%d 10\n1 2\n", MaxItems+1), Error: ErrorMalformedDataset},
		{Name: "Infinite count", Input: "+Inf 10\n1 2\n", Error: ErrorMalformedDataset},
		{Name: "Fractional count", Input: "1.5 10\n1 1\n", Error: ErrorMalformedDataset},
		{Name: "Three fields", Input: "1 10\n1 1 1\n", Error: ErrorMalformedDataset},
		{Name: "Not a number", Input: "1 ten\n1 1\n", Error: ErrorMalformedDataset},
		{Name: "Invalid instance", Input: "1 10\n1 0\n", Error: ErrorInvalidWeight},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			k, err := Parse(c.Name, strings.NewReader(c.Input), 23)
			if c.Error != nil {
				assert.Nil(t, k)
				assert.True(t, errors.Is(err, c.Error), "err: %v", err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, 4, k.NumGenes())
			assert.Equal(t, 11.0, k.Capacity())
			assert.Equal(t, 23.0, bruteForce(k))
		})
	}
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "f4_l-d_kp_4_11")
	if err := os.WriteFile(path, []byte(f4), 0o600); err != nil {
		t.Fatalf("err: %s", err)
	}

	k, err := LoadFile(path, 23)
	assert.NoError(err)
	assert.Equal("f4_l-d_kp_4_11", k.Name())
	assert.Equal(23.0, k.Optimum())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(err)
}

func TestFetch(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/f4" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, f4)
	}))
	defer srv.Close()
	c := server.New(server.WithHTTPClient(srv.Client()))

	k, err := Fetch(c, srv.URL+"/f4", 23)
	assert.NoError(err)
	assert.Equal(4, k.NumGenes())

	k, err = Fetch(c, srv.URL+"/missing", 23)
	assert.Nil(k)
	assert.True(errors.Is(err, server.ErrorUnexpectedStatus))
}
