package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

var httpClient = &http.Client{}

// Fetch downloads a remote dataset, retrying 5xx and transport errors with
// exponential backoff. 4xx responses are permanent.
func Fetch(ctx context.Context, src string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	log := opts.Logger.Component("dataset.fetch").WithField("source", src)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.RetryInterval
	bo.MaxElapsedTime = opts.FetchMaxElapsed

	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		reqCtx, cancel := context.WithTimeout(ctx, opts.FetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, src, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			log.WithField("attempt", attempt).WithError(err).Warn("dataset download failed")
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode >= 500:
			log.WithField("attempt", attempt).WithField("http_status", resp.StatusCode).Warn("dataset server error")
			return fmt.Errorf("server error: %d", resp.StatusCode)
		case resp.StatusCode >= 300:
			return backoff.Permanent(fmt.Errorf("download failed: status %d", resp.StatusCode))
		case len(b) == 0:
			return fmt.Errorf("empty body")
		}
		body = b
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	log.WithField("bytes", len(body)).WithField("attempts", attempt).Debug("dataset downloaded")
	return body, nil
}
