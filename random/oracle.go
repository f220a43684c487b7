package random

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

// OracleConfig configures the HTTP client used to reach the true-random
// integer oracle (random.org-shaped: num/min/max plus fixed col=1 base=10
// format=plain rnd=new parameters, replying with one decimal integer per
// line).
type OracleConfig struct {
	// Endpoint is the base URL of the oracle's integer-generation endpoint.
	Endpoint string
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration
	// MaxElapsed bounds the total time spent retrying the oracle before
	// giving up and falling back to the local PRNG.
	MaxElapsed time.Duration
}

// DefaultOracleConfig is used when a caller does not supply one.
var DefaultOracleConfig = OracleConfig{
	Endpoint:   "https://www.random.org/integers/",
	Timeout:    3 * time.Second,
	MaxElapsed: 2 * time.Second,
}

// oracle is a Source backed by an HTTP integer-generation service, with a
// local-PRNG fallback for any failure: transport error, a response whose
// first byte isn't an ASCII digit, an unparsable line, or a value outside
// [lo, hi] (an oracle contract violation).
type oracle struct {
	cfg    OracleConfig
	client *http.Client
}

// NewDefault builds the package's default Source: the random.org-shaped
// oracle with DefaultOracleConfig, falling back to a local PRNG on failure.
func NewDefault() Source {
	return NewOracle(DefaultOracleConfig)
}

// NewOracle builds a Source that prefers the configured HTTP oracle and
// falls back to a local PRNG on any failure.
func NewOracle(cfg OracleConfig) Source {
	if cfg.Endpoint == "" {
		cfg = DefaultOracleConfig
	}
	return &oracle{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch implements Source.
func (o *oracle) Fetch(ctx context.Context, n, lo, hi int) ([]int, bool) {
	if n <= 0 {
		return []int{}, true
	}

	var values []int
	op := func() error {
		v, err := o.fetchOnce(ctx, n, lo, hi)
		if err != nil {
			return err
		}
		values = v
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = o.cfg.MaxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return fallback{}.Fetch(ctx, n, lo, hi)
	}
	return values, true
}

func (o *oracle) fetchOnce(ctx context.Context, n, lo, hi int) ([]int, error) {
	q := url.Values{
		"num":    {strconv.Itoa(n)},
		"min":    {strconv.Itoa(lo)},
		"max":    {strconv.Itoa(hi)},
		"col":    {"1"},
		"base":   {"10"},
		"format": {"plain"},
		"rnd":    {"new"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, newError(ErrRandomOrgUnreachable).Error())
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, newError(ErrRandomOrgUnreachable).Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(fmt.Errorf("status %d", resp.StatusCode), newError(ErrRandomOrgUnreachable).Error())
	}

	scanner := bufio.NewScanner(resp.Body)
	values := make([]int, 0, n)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if line[0] < '0' || line[0] > '9' {
				return nil, newError(ErrRandomOrgInvalidResponse, quote(line))
			}
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, newError(ErrRandomOrgInvalidResponse, quote(line))
		}
		if v < lo || v > hi {
			return nil, newError(ErrRandomOrgOutOfRange, v)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, newError(ErrRandomOrgInvalidResponse).Error())
	}
	if len(values) != n {
		return nil, newError(ErrRandomOrgInvalidResponse, "got ", len(values), " values, wanted ", n)
	}
	return values, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
