package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// countingReader compte le nombre d'octets lus via Read.
type countingReader struct {
	R io.Reader
	N int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	if n > 0 {
		c.N += int64(n)
	}
	return n, err
}

// PostJSONInto envoie `body` encodé en JSON vers rawURL (POST) et décode la
// réponse JSON directement dans dst (dst doit être un pointeur).
// Mêmes conventions que FetchBytes pour ctx/timeout/maxBytes.
func PostJSONInto(ctx context.Context, rawURL string, body any, timeout time.Duration, maxBytes int64, dst any) error {
	ctx, cancel, err := prepare(ctx, rawURL, &timeout, &maxBytes)
	if err != nil {
		return fmt.Errorf("post json: %w", err)
	}
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("post json: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post json: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("post json: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, maxBytes); err != nil {
		return fmt.Errorf("post json: %w", err)
	}

	if err := decodeBounded(resp.Body, maxBytes, dst); err != nil {
		return fmt.Errorf("post json: %w", err)
	}
	return nil
}

// decodeBounded décode du JSON depuis r en s'arrêtant à maxBytes.
// Utilise un json.Decoder sur un reader limité et détecte le dépassement
// en vérifiant le compteur après decode.
func decodeBounded(r io.Reader, maxBytes int64, dst any) error {
	limitReader := io.LimitReader(r, maxBytes+1) // +1 pour détecter dépassement
	cr := &countingReader{R: limitReader}
	dec := json.NewDecoder(cr)

	if err := dec.Decode(dst); err != nil {
		// erreur de décodage (JSON invalide, EOF inattendu, etc.)
		return fmt.Errorf("decode: %w", err)
	}
	// si on a lu plus que maxBytes, le decode a consommé maxBytes+1 => overflow
	if cr.N > maxBytes {
		return ErrTooLarge
	}
	return nil
}
