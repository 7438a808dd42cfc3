package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Failures.WithLabelValues("part1", "run").Inc()
	m.Residue.WithLabelValues("part1").Set(10)
	m.PhaseDuration.WithLabelValues("part1", "generate").Observe(0.002)
	m.InputUnits.Set(16)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("part1", "run")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Residue.WithLabelValues("part1")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.InputUnits))

	n, err := testutil.GatherAndCount(reg, "polymer_phase_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestHandler_Serves(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Residue.WithLabelValues("part2").Set(4)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `polymer_residue_units{solution="part2"} 4`)
}

func TestStartServer_Scrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.InputUnits.Set(16)

	addr, shutdown, err := StartServer("127.0.0.1:0", reg)
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "polymer_input_units 16")
}

func TestStartServer_BadAddr(t *testing.T) {
	_, _, err := StartServer("not-an-address", prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestPush(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		body   []byte
	)
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	reg := prometheus.NewRegistry()
	New(reg).Residue.WithLabelValues("part1").Set(10)

	require.NoError(t, Push(context.Background(), gw.URL, "polymer", reg))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/polymer", path)
	assert.Contains(t, string(body), "polymer_residue_units")
}

func TestPush_GatewayError(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gw.Close()

	err := Push(context.Background(), gw.URL, "polymer", prometheus.NewRegistry())
	assert.Error(t, err)
}
