// Package fetch fournit des utilitaires légers et testables pour parler au
// service de transcript : GET brut borné en taille, et POST JSON décodé
// directement dans une struct.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "ytscript/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// FetchBytes télécharge l'URL et retourne les octets.
// - ctx peut être nil.
// - timeout : si <=0 on utilise DefaultTimeout.
// - maxBytes : si <=0 on utilise DefaultMaxBytes.
// Note : cette fonction lit tout en mémoire (OK pour les payloads json3).
func FetchBytes(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) ([]byte, error) {
	ctx, cancel, err := prepare(ctx, rawURL, &timeout, &maxBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, maxBytes); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	r := io.LimitReader(resp.Body, maxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("fetch: %w (>%d bytes)", ErrTooLarge, maxBytes)
	}
	return data, nil
}

// prepare applique les defaults, valide l'URL tôt et pose le timeout sur ctx.
func prepare(ctx context.Context, rawURL string, timeout *time.Duration, maxBytes *int64) (context.Context, context.CancelFunc, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if *timeout <= 0 {
		*timeout = DefaultTimeout
	}
	if *maxBytes <= 0 {
		*maxBytes = DefaultMaxBytes
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	return ctx, cancel, nil
}

// checkResponse vérifie le status HTTP et le Content-Length annoncé.
func checkResponse(resp *http.Response, maxBytes int64) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return fmt.Errorf("%w: content-length %d exceeds limit %d", ErrTooLarge, resp.ContentLength, maxBytes)
	}
	return nil
}
