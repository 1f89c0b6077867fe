package api

import (
	"net/http"

	"protmotif/internal/domain"
)

type motifsResponse struct {
	Sequence string         `json:"sequence"`
	Motifs   []domain.Motif `json:"motifs"`
}

func (s *Server) handleAnalyzeStructure(w http.ResponseWriter, r *http.Request) {
	seq, err := readText(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pred, err := s.analyzer.PredictStructure(seq)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeStructure(w, r, structureResponse{Sequence: seq, StructurePrediction: pred})
}

func (s *Server) handleAnalyzeMotifs(w http.ResponseWriter, r *http.Request) {
	seq, err := readText(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	motifs, err := s.analyzer.ScanMotifs(seq)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if motifs == nil {
		motifs = []domain.Motif{}
	}
	writeJSON(w, http.StatusOK, motifsResponse{Sequence: seq, Motifs: motifs})
}
