package analyze

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const pageHTML = `<html lang="ja"><head><title>Tokyo Style</title></head>` +
	`<body><p>Premium Japanese fashion, $120 dresses</p></body></html>`

const storesCSV = "URL,Categories,Description,Ships To,Estimated Sales,Products Count\n" +
	"https://tokyo-denim.example.com,Fashion,Premium Japanese denim,International,\"USD 12,000\",150\n"

// runCLI executes the root action and returns stdout and the action error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	var runErr error
	app := &cli.App{
		Name:           "supplier-matcher",
		Flags:          Flags(),
		Writer:         &out,
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			runErr = run(c, slog.New(slog.NewTextHandler(io.Discard, nil)), c.App.Writer)
			return runErr
		},
	}
	_ = app.Run(append([]string{"supplier-matcher"}, args...))
	return out.String(), runErr
}

func serve(t *testing.T, status int) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(pageHTML))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestRun_Enhanced(t *testing.T) {
	chdirForTest(t, t.TempDir())
	require.NoError(t, os.WriteFile("stores.csv", []byte(storesCSV), 0644))
	url := serve(t, http.StatusOK)

	out, err := runCLI(t, "--dataset", "stores.csv", "--output-dir", "out", url, "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Marketplace: Tokyo Style")
	assert.Contains(t, out, "Categories: fashion")
	assert.Contains(t, out, "Avg Price: $120")
	assert.Contains(t, out, "Suppliers: 1 recommendations from stores.csv")

	csvFiles, _ := filepath.Glob(filepath.Join("out", "matching_results_*.csv"))
	summaries, _ := filepath.Glob(filepath.Join("out", "matching_results_*_summary.json"))
	assert.Len(t, csvFiles, 1)
	assert.Len(t, summaries, 1)
}

func TestRun_Fallback(t *testing.T) {
	chdirForTest(t, t.TempDir())
	url := serve(t, http.StatusNotFound)

	out, err := runCLI(t, "--fallback", "--summary-format", "yaml", url)
	require.NoError(t, err)

	assert.Contains(t, out, "Suppliers: 5 recommendations from sample_suppliers")
	summaries, _ := filepath.Glob("matching_results_*_summary.yaml")
	assert.Len(t, summaries, 1)
}

func TestRun_UsageErrors(t *testing.T) {
	chdirForTest(t, t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"missing url", nil},
		{"bad url", []string{"not-a-url"}},
		{"non-integer max", []string{"https://www.extra.com", "ten"}},
		{"zero max", []string{"https://www.extra.com", "0"}},
		{"bad format", []string{"--summary-format", "xml", "https://www.extra.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage))

			var exit cli.ExitCoder
			require.True(t, errors.As(ToExit(err), &exit))
			assert.Equal(t, 1, exit.ExitCode())
		})
	}
}

func TestRun_RuntimeErrors(t *testing.T) {
	chdirForTest(t, t.TempDir())
	require.NoError(t, os.WriteFile("stores.csv", []byte(storesCSV), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing dataset", []string{"--dataset", "absent.csv", serve(t, http.StatusOK)}},
		{"fetch failure", []string{"--dataset", "stores.csv", serve(t, http.StatusInternalServerError)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrUsage))

			var exit cli.ExitCoder
			require.True(t, errors.As(ToExit(err), &exit))
			assert.Equal(t, 2, exit.ExitCode())
		})
	}
}

func TestRun_AutoFallback(t *testing.T) {
	chdirForTest(t, t.TempDir())

	out, err := runCLI(t, "--dataset", "absent.csv", "--auto-fallback", serve(t, http.StatusOK))
	require.NoError(t, err)
	assert.Contains(t, out, "from sample_suppliers")
}

func TestParseMaxSuppliers(t *testing.T) {
	n, err := ParseMaxSuppliers(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, raw := range []string{"-1", "0", "1.5", "abc", ""} {
		_, err := ParseMaxSuppliers(raw)
		assert.True(t, errors.Is(err, ErrUsage), raw)
	}
}

func TestToExit(t *testing.T) {
	assert.Nil(t, ToExit(nil))
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	prevPWD, hadPWD := os.LookupEnv("PWD")
	if abs, err := filepath.Abs(dir); err == nil {
		os.Setenv("PWD", abs)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
		if hadPWD {
			os.Setenv("PWD", prevPWD)
		} else {
			os.Unsetenv("PWD")
		}
	})
}
