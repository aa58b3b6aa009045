package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = "Φορέας,Α.Φ.Μ,Κωδ.Προμηθευτή,Έτος\nX,111,A1,2020\nY,222,A2,2021\n"

func encodeSample(t *testing.T) []byte {
	t.Helper()
	raw, err := charmap.ISO8859_7.NewEncoder().Bytes([]byte(sampleCSV))
	require.NoError(t, err)
	return raw
}

func TestDecode_GreekBytes(t *testing.T) {
	// "Έτος" in ISO-8859-7.
	raw := []byte{0xB8, 0xF4, 0xEF, 0xF2}

	text, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Έτος", text)
}

func TestDecode_EveryByteMaps(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}

	_, err := Decode(raw)
	assert.NoError(t, err)
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := encodeSample(t)
	assert.NotEqual(t, []byte(sampleCSV), raw, "source bytes must not be UTF-8")

	text, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, text)
}

func TestFileSource(t *testing.T) {
	fsys := fstest.MapFS{"data.csv": {Data: []byte("abc")}}

	t.Run("reads file", func(t *testing.T) {
		data, err := NewFileSource(fsys, "data.csv").Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(fsys, "other.csv").Fetch(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFileSource(fsys, "data.csv").Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPSource(t *testing.T) {
	raw := []byte{0xC1, 0xE2, 0xE3}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write(raw)
		case "/broken.csv":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Run("returns bytes untouched", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/", "/data.csv")
		assert.Equal(t, srv.URL+"/data.csv", src.URL())

		data, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, raw, data)
	})

	t.Run("404 is not found", func(t *testing.T) {
		_, err := NewHTTPSource(srv.URL, "missing.csv").Fetch(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("5xx is an error", func(t *testing.T) {
		_, err := NewHTTPSource(srv.URL, "broken.csv").Fetch(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

type failingSource struct{ err error }

func (s failingSource) Fetch(context.Context) ([]byte, error) { return nil, s.err }

func TestLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{"data.csv": {Data: encodeSample(t)}}

	res, err := New(NewFileSource(fsys, "data.csv"), nil).LoadWithID(context.Background(), "test")
	require.NoError(t, err)

	assert.Equal(t, []string{"Φορέας", "Α.Φ.Μ", "Κωδ.Προμηθευτή", "Έτος"}, res.Headers)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "111", res.Records[0].Value("Α.Φ.Μ"))
	assert.Equal(t, "2021", res.Records[1].Value("Έτος"))
}

func TestLoader_FetchError(t *testing.T) {
	boom := errors.New("network down")

	_, err := New(failingSource{err: boom}, nil).LoadWithID(context.Background(), "test")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch")
}
