package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"protmotif/internal/domain"
)

// HTTP talks to a protmotif server at Base as User.
type HTTP struct {
	Base string
	User string
	HTTP *http.Client
}

// NewHTTP returns a client for base authenticating as user.
func NewHTTP(base, user string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), User: user, HTTP: http.DefaultClient}
}

// Submission is the server's answer to a protein submission.
type Submission struct {
	domain.Protein
	SequenceURL string            `json:"sequenceUrl"`
	Fragments   []domain.Fragment `json:"fragments"`
	Motifs      []domain.Motif    `json:"motifs"`
}

// Page is one page of a protein listing.
type Page struct {
	Proteins []domain.Protein `json:"proteins"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// SubmitProtein posts a new protein.
func (c *HTTP) SubmitProtein(ctx context.Context, sequence, name, description string) (Submission, error) {
	var out Submission
	in := struct {
		Sequence    string `json:"sequence"`
		Name        string `json:"name,omitempty"`
		Description string `json:"description,omitempty"`
	}{sequence, name, description}
	err := c.do(ctx, http.MethodPost, "/api/proteins", in, &out)
	return out, err
}

// GetProtein fetches one protein.
func (c *HTTP) GetProtein(ctx context.Context, id string) (domain.Protein, error) {
	var out domain.Protein
	err := c.do(ctx, http.MethodGet, "/api/proteins/"+url.PathEscape(id), nil, &out)
	return out, err
}

// ListProteins fetches one page of proteins, newest first.
func (c *HTTP) ListProteins(ctx context.Context, limit, offset int) (Page, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/api/proteins"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out Page
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// ListFragments fetches the fragments of a protein.
func (c *HTTP) ListFragments(ctx context.Context, id string) ([]domain.Fragment, error) {
	var out struct {
		Fragments []domain.Fragment `json:"fragments"`
	}
	err := c.do(ctx, http.MethodGet, "/api/proteins/"+url.PathEscape(id)+"/fragments", nil, &out)
	return out.Fragments, err
}

// Sequence fetches the reconstructed sequence of a protein.
func (c *HTTP) Sequence(ctx context.Context, id string) (string, error) {
	var out struct {
		Sequence string `json:"sequence"`
	}
	err := c.do(ctx, http.MethodGet, "/api/proteins/"+url.PathEscape(id)+"/sequence", nil, &out)
	return out.Sequence, err
}

// DeleteProtein deletes a protein.
func (c *HTTP) DeleteProtein(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/proteins/"+url.PathEscape(id), nil, nil)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-User-ID", c.User)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decodeError(method, path, resp)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// decodeError turns an error response into a domain error of the matching
// kind.
func decodeError(method, path string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return domain.Validationf("%s", msg)
	case http.StatusNotFound:
		return domain.NotFoundf("%s", msg)
	case http.StatusConflict:
		return domain.Conflictf("%s", msg)
	default:
		return domain.StorageErr(fmt.Sprintf("%s %s", method, path), fmt.Errorf("%s: %s", resp.Status, msg))
	}
}
