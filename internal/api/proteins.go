package api

import (
	"net/http"

	"protmotif/internal/digest"
	"protmotif/internal/domain"
	"protmotif/internal/render"
)

type submitRequest struct {
	Sequence    string `json:"sequence"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type proteinResponse struct {
	domain.Protein
	SequenceURL string `json:"sequenceUrl"`
}

type submitResponse struct {
	Message string `json:"message"`
	proteinResponse
	Fragments []domain.Fragment `json:"fragments"`
	Motifs    []domain.Motif    `json:"motifs"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type listResponse struct {
	Proteins []proteinResponse `json:"proteins"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type sequenceResponse struct {
	ProteinID domain.ProteinID `json:"proteinId"`
	Name      string           `json:"name"`
	Sequence  string           `json:"sequence"`
	Length    int              `json:"length"`
	Type      string           `json:"type"`
}

type structureResponse struct {
	ProteinID domain.ProteinID `json:"proteinId,omitempty"`
	Sequence  string           `json:"sequence"`
	domain.StructurePrediction
}

func (s *Server) handleSubmitJSON(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.submit(w, r, req)
}

func (s *Server) handleSubmitText(w http.ResponseWriter, r *http.Request) {
	seq, err := readText(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.submit(w, r, submitRequest{Sequence: seq})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request, req submitRequest) {
	p, frags, err := s.proteins.SubmitProtein(r.Context(), req.Sequence, req.Name, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	motifs := []domain.Motif{}
	for _, f := range frags {
		motifs = append(motifs, f.Motifs...)
	}
	writeJSON(w, http.StatusCreated, submitResponse{
		Message:         "Protein created successfully",
		proteinResponse: withURL(r, p),
		Fragments:       frags,
		Motifs:          motifs,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.list(w, r, q)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.list(w, r, q)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, q domain.ProteinQuery) {
	page, err := s.proteins.ListProteins(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := listResponse{
		Proteins: make([]proteinResponse, 0, len(page.Proteins)),
		Total:    page.Total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	for _, p := range page.Proteins {
		resp.Proteins = append(resp.Proteins, withURL(r, p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.proteins.GetProtein(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, withURL(r, p))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.proteins.UpdateProtein(r.Context(), r.PathValue("id"), domain.ProteinUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Protein updated successfully",
		"protein": withURL(r, p),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.proteins.DeleteProtein(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFragments(w http.ResponseWriter, r *http.Request) {
	frags, err := s.proteins.ListFragments(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Successfully retrieved the list of fragments",
		"fragments": frags,
	})
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	f, err := s.proteins.GetFragment(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Successfully retrieved the fragment",
		"fragment": f,
	})
}

func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	p, seq, err := s.proteins.ReconstructSequence(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	etag := digest.ETag(digest.Sequence(seq))
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Header.Get("Accept") == "text/plain" {
		writeText(w, http.StatusOK, "text/plain; charset=utf-8", seq)
		return
	}
	writeJSON(w, http.StatusOK, sequenceResponse{
		ProteinID: p.ID,
		Name:      p.Name,
		Sequence:  seq,
		Length:    len(seq),
		Type:      "reconstructed",
	})
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	seq, pred, err := s.proteins.PredictStructure(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeStructure(w, r, structureResponse{
		ProteinID:           domain.ProteinID(id),
		Sequence:            seq,
		StructurePrediction: pred,
	})
}

// writeStructure answers with JSON when acceptable, else SVG, else 406.
func (s *Server) writeStructure(w http.ResponseWriter, r *http.Request, resp structureResponse) {
	switch {
	case accepts(r, "application/json"):
		writeJSON(w, http.StatusOK, resp)
	case accepts(r, "image/svg+xml"):
		writeText(w, http.StatusOK, "image/svg+xml", render.SVG(resp.Classes))
	default:
		writeJSON(w, http.StatusNotAcceptable, errorBody{
			Error: "406 Not Acceptable: Requested content type not available",
		})
	}
}

func withURL(r *http.Request, p domain.Protein) proteinResponse {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return proteinResponse{
		Protein:     p,
		SequenceURL: scheme + "://" + r.Host + "/api/proteins/" + p.ID.String() + "/sequence",
	}
}
