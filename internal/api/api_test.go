package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"protmotif/internal/api"
	"protmotif/internal/domain"
	"protmotif/internal/motif"
	"protmotif/internal/services/analysis"
	"protmotif/internal/services/protein"
	"protmotif/internal/store"
)

type fixture struct {
	srv    *httptest.Server
	userID string
	dir    string
	svc    *protein.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	db, err := store.Open(store.DriverSQLite, filepath.Join(dir, "api.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	proteins := store.NewProteinDBStore(db)
	users := store.NewUserDBStore(db)
	scanner := motif.NewScanner(func() float64 { return 0.25 })
	snapshots := store.NewSnapshotFileStore(dir)
	svc := protein.New(proteins, snapshots, analysis.New(1000, scanner))

	user := domain.User{ID: domain.UserID(domain.NewID()), Name: "tester", CreatedAt: time.Now().UTC()}
	if err := users.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	srv := httptest.NewServer(api.New(api.Config{
		Proteins:  svc,
		Analyzer:  analysis.New(2000, scanner),
		Users:     users,
		Ping:      proteins.Ping,
		ExportDir: snapshots.Dir(),
		Logger:    log.New(io.Discard),
	}).Handler())
	t.Cleanup(srv.Close)

	return &fixture{srv: srv, userID: user.ID.String(), dir: dir, svc: svc}
}

func (f *fixture) do(t *testing.T, method, path, body string, header map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-User-ID", f.userID)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: status %d, want %d (%s)",
			resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want, b)
	}
}

type submitted struct {
	ProteinID       string            `json:"proteinId"`
	Name            string            `json:"name"`
	MolecularWeight float64           `json:"molecularWeight"`
	SequenceLength  int               `json:"sequenceLength"`
	SequenceURL     string            `json:"sequenceUrl"`
	Fragments       []domain.Fragment `json:"fragments"`
	Motifs          []domain.Motif    `json:"motifs"`
}

func (f *fixture) submit(t *testing.T, body string) submitted {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/proteins", body, map[string]string{"Content-Type": "application/json"})
	expectStatus(t, resp, http.StatusCreated)
	return decode[submitted](t, resp)
}

func TestAuth_RequiresKnownUser(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, header string
	}{
		{"missing", ""},
		{"malformed", "not-a-uuid"},
		{"unknown", domain.NewID()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, f.srv.URL+"/api/proteins", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("do: %v", err)
			}
			defer resp.Body.Close()
			expectStatus(t, resp, http.StatusUnauthorized)
		})
	}
}

func TestSubmit_JSONAndText(t *testing.T) {
	f := newFixture(t)

	got := f.submit(t, `{"sequence":"GGGNASTGGGGGGGGAAAAA","name":"Glyco"}`)
	if got.Name != "Glyco" || got.SequenceLength != 20 || len(got.Fragments) != 2 {
		t.Fatalf("unexpected submit response %+v", got)
	}
	if !strings.HasSuffix(got.SequenceURL, "/api/proteins/"+got.ProteinID+"/sequence") {
		t.Fatalf("sequenceUrl = %q", got.SequenceURL)
	}
	if len(got.Motifs) == 0 || got.Motifs[0].Type != domain.NGlycosylation {
		t.Fatalf("motifs = %+v", got.Motifs)
	}

	resp := f.do(t, http.MethodPost, "/api/proteins/sequence", "  AAAA\n", map[string]string{"Content-Type": "text/plain"})
	expectStatus(t, resp, http.StatusCreated)
	text := decode[submitted](t, resp)
	if text.MolecularWeight != 356.36 || !strings.HasPrefix(text.Name, "Protein_AAAA_") {
		t.Fatalf("unexpected text submit %+v", text)
	}
}

func TestSubmit_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, path, body string
		want             int
	}{
		{"bad json", "/api/proteins", `{"sequence":`, http.StatusBadRequest},
		{"invalid residue", "/api/proteins", `{"sequence":"ACDX"}`, http.StatusBadRequest},
		{"too long", "/api/proteins", `{"sequence":"` + strings.Repeat("A", 1001) + `"}`, http.StatusBadRequest},
		{"empty text", "/api/proteins/sequence", "   ", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.do(t, http.MethodPost, tt.path, tt.body, nil)
			expectStatus(t, resp, tt.want)
		})
	}

	resp := f.do(t, http.MethodPost, "/api/proteins", `{"sequence":`, nil)
	body := decode[map[string]string](t, resp)
	if body["error"] != "Invalid JSON format" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestGetUpdateDelete(t *testing.T) {
	f := newFixture(t)
	p := f.submit(t, `{"sequence":"ACDEFGHIKLMNPQRSTVWY","name":"Orig"}`)
	path := "/api/proteins/" + p.ProteinID

	resp := f.do(t, http.MethodGet, path, "", nil)
	expectStatus(t, resp, http.StatusOK)
	if got := decode[submitted](t, resp); got.Name != "Orig" {
		t.Fatalf("name = %q", got.Name)
	}

	expectStatus(t, f.do(t, http.MethodGet, "/api/proteins/xyz", "", nil), http.StatusBadRequest)
	expectStatus(t, f.do(t, http.MethodGet, "/api/proteins/"+domain.NewID(), "", nil), http.StatusNotFound)

	expectStatus(t, f.do(t, http.MethodPut, path, `{}`, nil), http.StatusBadRequest)
	expectStatus(t, f.do(t, http.MethodPut, path, `{"name":"`+strings.Repeat("n", 101)+`"}`, nil), http.StatusBadRequest)
	resp = f.do(t, http.MethodPut, path, `{"description":"updated"}`, nil)
	expectStatus(t, resp, http.StatusOK)
	updated := decode[struct {
		Protein domain.Protein `json:"protein"`
	}](t, resp)
	if updated.Protein.Name != "Orig" || updated.Protein.Description != "updated" {
		t.Fatalf("unexpected update %+v", updated.Protein)
	}

	expectStatus(t, f.do(t, http.MethodDelete, path, "", nil), http.StatusNoContent)
	expectStatus(t, f.do(t, http.MethodGet, path, "", nil), http.StatusNotFound)
	expectStatus(t, f.do(t, http.MethodDelete, path, "", nil), http.StatusNotFound)
}

func TestFragments(t *testing.T) {
	f := newFixture(t)
	p := f.submit(t, `{"sequence":"ACDEFGHIKLMNPQRSTVWYACDEF"}`)

	resp := f.do(t, http.MethodGet, "/api/proteins/"+p.ProteinID+"/fragments", "", nil)
	expectStatus(t, resp, http.StatusOK)
	list := decode[struct {
		Fragments []domain.Fragment `json:"fragments"`
	}](t, resp)
	if len(list.Fragments) != 3 {
		t.Fatalf("fragments = %d, want 3", len(list.Fragments))
	}
	for i, fr := range list.Fragments {
		if fr.Start != 1+5*i || fr.End-fr.Start+1 != len(fr.Sequence) {
			t.Fatalf("fragment %d positions %d-%d", i, fr.Start, fr.End)
		}
	}

	resp = f.do(t, http.MethodGet, "/api/fragments/"+list.Fragments[1].ID.String(), "", nil)
	expectStatus(t, resp, http.StatusOK)
	one := decode[struct {
		Fragment domain.Fragment `json:"fragment"`
	}](t, resp)
	if one.Fragment.Sequence != "GHIKLMNPQRSTVWY" {
		t.Fatalf("fragment sequence = %q", one.Fragment.Sequence)
	}

	expectStatus(t, f.do(t, http.MethodGet, "/api/fragments/bad", "", nil), http.StatusBadRequest)
	expectStatus(t, f.do(t, http.MethodGet, "/api/proteins/"+domain.NewID()+"/fragments", "", nil), http.StatusNotFound)
}

func TestSequence_Negotiation(t *testing.T) {
	f := newFixture(t)
	seq := "ACDEFGHIKLMNPQRSTVWY"
	p := f.submit(t, `{"sequence":"`+seq+`"}`)
	path := "/api/proteins/" + p.ProteinID + "/sequence"

	resp := f.do(t, http.MethodGet, path, "", map[string]string{"Accept": "text/plain"})
	expectStatus(t, resp, http.StatusOK)
	b, _ := io.ReadAll(resp.Body)
	if string(b) != seq {
		t.Fatalf("text sequence = %q", b)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	resp = f.do(t, http.MethodGet, path, "", nil)
	expectStatus(t, resp, http.StatusOK)
	js := decode[map[string]any](t, resp)
	if js["sequence"] != seq || js["type"] != "reconstructed" || js["length"] != float64(20) {
		t.Fatalf("json sequence = %+v", js)
	}

	resp = f.do(t, http.MethodGet, path, "", map[string]string{"If-None-Match": etag})
	expectStatus(t, resp, http.StatusNotModified)
}

func TestStructure_Negotiation(t *testing.T) {
	f := newFixture(t)
	p := f.submit(t, `{"sequence":"ACDEFGHIKLMNPQRSTVWY"}`)
	path := "/api/proteins/" + p.ProteinID + "/structure"

	resp := f.do(t, http.MethodGet, path, "", map[string]string{"Accept": "application/json"})
	expectStatus(t, resp, http.StatusOK)
	js := decode[domain.StructurePrediction](t, resp)
	if len(js.Classes) != 20 || len(js.Confidences) != 20 {
		t.Fatalf("structure = %+v", js)
	}

	resp = f.do(t, http.MethodGet, path, "", map[string]string{"Accept": "image/svg+xml"})
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
	b, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(b), `<svg width="200" height="50"`) {
		t.Fatalf("svg = %.60s", b)
	}

	expectStatus(t, f.do(t, http.MethodGet, path, "", map[string]string{"Accept": "text/csv"}), http.StatusNotAcceptable)

	short := f.submit(t, `{"sequence":"ACDEFG"}`)
	expectStatus(t, f.do(t, http.MethodGet, "/api/proteins/"+short.ProteinID+"/structure", "", nil), http.StatusNotFound)
}

func TestListAndSearch(t *testing.T) {
	f := newFixture(t)
	f.submit(t, `{"sequence":"AAAA","name":"small"}`)
	f.submit(t, `{"sequence":"GGGNASTGGGGGGGGAAAAA","name":"Glyco"}`)
	f.submit(t, `{"sequence":"WWWWWWWWWW","name":"heavy"}`)

	type page struct {
		Proteins []submitted `json:"proteins"`
		Total    int64       `json:"total"`
		Limit    int         `json:"limit"`
		Offset   int         `json:"offset"`
	}

	resp := f.do(t, http.MethodGet, "/api/proteins?limit=2&sort=name:asc", "", nil)
	expectStatus(t, resp, http.StatusOK)
	pg := decode[page](t, resp)
	if pg.Total != 3 || pg.Limit != 2 || len(pg.Proteins) != 2 || pg.Proteins[0].Name != "Glyco" {
		t.Fatalf("unexpected page %+v", pg)
	}

	resp = f.do(t, http.MethodGet, "/api/proteins/search?molecularWeight[gt]=1000&sort=molecularWeight:desc", "", nil)
	expectStatus(t, resp, http.StatusOK)
	pg = decode[page](t, resp)
	if pg.Total != 2 || pg.Proteins[0].Name != "heavy" {
		t.Fatalf("unexpected weight search %+v", pg)
	}

	resp = f.do(t, http.MethodGet, "/api/proteins/search?motif=NAST", "", nil)
	expectStatus(t, resp, http.StatusOK)
	pg = decode[page](t, resp)
	if pg.Total != 1 || pg.Proteins[0].Name != "Glyco" {
		t.Fatalf("unexpected motif search %+v", pg)
	}

	resp = f.do(t, http.MethodGet, "/api/proteins/search?name=SMA&sequenceLength[lte]=4", "", nil)
	expectStatus(t, resp, http.StatusOK)
	pg = decode[page](t, resp)
	if pg.Total != 1 || pg.Proteins[0].Name != "small" {
		t.Fatalf("unexpected name search %+v", pg)
	}

	for _, bad := range []string{
		"/api/proteins?foo=1",
		"/api/proteins?limit=0",
		"/api/proteins?offset=-1",
		"/api/proteins?sort=checksum",
		"/api/proteins/search?molecularWeight[between]=1",
		"/api/proteins/search?sequenceLength[gt]=abc",
		"/api/proteins/search?color=red",
		"/api/proteins/search?molecularWeight=5",
	} {
		expectStatus(t, f.do(t, http.MethodGet, bad, "", nil), http.StatusBadRequest)
	}
}

func TestAnalysisEndpoints(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/analysis/motifs", "NAST", nil)
	expectStatus(t, resp, http.StatusOK)
	m := decode[struct {
		Motifs []domain.Motif `json:"motifs"`
	}](t, resp)
	if len(m.Motifs) != 1 || m.Motifs[0].Start != 1 || m.Motifs[0].End != 4 || m.Motifs[0].Confidence != 0.25 {
		t.Fatalf("motifs = %+v", m.Motifs)
	}

	resp = f.do(t, http.MethodPost, "/api/analysis/structure", strings.Repeat("A", 1500), map[string]string{"Accept": "application/json"})
	expectStatus(t, resp, http.StatusOK)

	expectStatus(t, f.do(t, http.MethodPost, "/api/analysis/structure", strings.Repeat("A", 2001), nil), http.StatusBadRequest)
	expectStatus(t, f.do(t, http.MethodPost, "/api/analysis/motifs", "ACDZ", nil), http.StatusBadRequest)
}

func TestFilesAndHealth(t *testing.T) {
	f := newFixture(t)
	p := f.submit(t, `{"sequence":"ACDEFGHIKLMNPQRSTVWY"}`)
	if _, err := f.svc.ExportProtein(context.Background(), p.ProteinID); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(f.dir, "proteins", p.ProteinID+".json")); err != nil {
		t.Fatalf("snapshot missing: %v", err)
	}

	resp, err := http.Get(f.srv.URL + "/files/proteins/" + p.ProteinID + ".json")
	if err != nil {
		t.Fatalf("get file: %v", err)
	}
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	snap := decode[domain.Snapshot](t, resp)
	if snap.Data.Protein.ID.String() != p.ProteinID || snap.Metadata.Version != domain.SnapshotVersion {
		t.Fatalf("unexpected snapshot %+v", snap.Metadata)
	}

	health, err := http.Get(f.srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer health.Body.Close()
	expectStatus(t, health, http.StatusOK)
}

func TestFiles_DatabaseNotServed(t *testing.T) {
	f := newFixture(t)
	if _, err := os.Stat(filepath.Join(f.dir, "api.db")); err != nil {
		t.Fatalf("database file missing: %v", err)
	}

	for _, path := range []string{"/files/api.db", "/files/", "/files/proteins/../api.db"} {
		resp, err := http.Get(f.srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: status %d, want 404", path, resp.StatusCode)
		}
	}
}

type staticUsers struct{ user domain.User }

func (u staticUsers) CreateUser(context.Context, domain.User) error { return nil }

func (u staticUsers) GetUser(_ context.Context, id domain.UserID) (domain.User, error) {
	if id != u.user.ID {
		return domain.User{}, domain.NotFoundf("user not found")
	}
	return u.user, nil
}

type failingProteins struct {
	domain.ProteinService
	err error
}

func (p failingProteins) ListProteins(context.Context, domain.ProteinQuery) (domain.ProteinPage, error) {
	return domain.ProteinPage{}, p.err
}

func TestErrors_UnclassifiedAre500(t *testing.T) {
	user := domain.User{ID: domain.UserID(domain.NewID()), Name: "tester"}

	tests := []struct {
		name string
		err  error
	}{
		{"zero kind", &domain.Error{Msg: "unclassified"}},
		{"plain error", errors.New("boom")},
		{"storage", domain.StorageErr("list proteins", errors.New("disk"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(api.New(api.Config{
				Proteins: failingProteins{err: tt.err},
				Analyzer: analysis.New(2000, motif.NewScanner(func() float64 { return 0.25 })),
				Users:    staticUsers{user: user},
				Logger:   log.New(io.Discard),
			}).Handler())
			defer srv.Close()

			req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/proteins", nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			req.Header.Set("X-User-ID", user.ID.String())
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			defer resp.Body.Close()
			expectStatus(t, resp, http.StatusInternalServerError)
			body := decode[map[string]string](t, resp)
			if body["error"] != "Internal Server Error" {
				t.Fatalf("error body = %q", body["error"])
			}
		})
	}
}
