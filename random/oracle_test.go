package random

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig(endpoint string) OracleConfig {
	return OracleConfig{
		Endpoint:   endpoint,
		Timeout:    time.Second,
		MaxElapsed: 200 * time.Millisecond,
	}
}

func TestOracleFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "4\n2\n6\n")
	}))
	defer srv.Close()

	src := NewOracle(testConfig(srv.URL))
	values, truly := src.Fetch(context.Background(), 3, 1, 6)
	if !truly {
		t.Fatal("expected truly random result from a healthy oracle")
	}
	want := []int{4, 2, 6}
	for i, v := range want {
		if values[i] != v {
			t.Fatalf("values[%d] = %d, want %d", i, values[i], v)
		}
	}
}

func TestOracleFetchFallsBackOnBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Error: quota exceeded\n")
	}))
	defer srv.Close()

	src := NewOracle(testConfig(srv.URL))
	values, truly := src.Fetch(context.Background(), 5, 1, 20)
	if truly {
		t.Fatal("expected fallback when the oracle's body doesn't start with a digit")
	}
	if len(values) != 5 {
		t.Fatalf("len(values) = %d, want 5", len(values))
	}
	for _, v := range values {
		if v < 1 || v > 20 {
			t.Fatalf("fallback value %d outside [1, 20]", v)
		}
	}
}

func TestOracleFetchFallsBackOnTransportError(t *testing.T) {
	src := NewOracle(testConfig("http://127.0.0.1:0"))
	values, truly := src.Fetch(context.Background(), 2, 1, 1)
	if truly {
		t.Fatal("expected fallback on unreachable oracle")
	}
	if len(values) != 2 || values[0] != 1 || values[1] != 1 {
		t.Fatalf("unexpected fallback values: %v", values)
	}
}

func TestOracleFetchFallsBackOnOutOfRangeValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "99\n")
	}))
	defer srv.Close()

	src := NewOracle(testConfig(srv.URL))
	values, truly := src.Fetch(context.Background(), 1, 1, 6)
	if truly {
		t.Fatal("expected fallback when the oracle violates its [lo, hi] contract")
	}
	if len(values) != 1 || values[0] < 1 || values[0] > 6 {
		t.Fatalf("fallback value out of range: %v", values)
	}
}

func TestOracleFetchZero(t *testing.T) {
	src := NewOracle(testConfig("http://unused.invalid"))
	values, truly := src.Fetch(context.Background(), 0, 1, 6)
	if !truly || len(values) != 0 {
		t.Fatalf("Fetch(0, ...) = %v, %v; want empty, true", values, truly)
	}
}
