package domain

import (
	interfaces "protmotif/internal/domain/interfaces"
	types "protmotif/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProteinID           = types.ProteinID
	FragmentID          = types.FragmentID
	MotifID             = types.MotifID
	UserID              = types.UserID
	Protein             = types.Protein
	Fragment            = types.Fragment
	Motif               = types.Motif
	MotifType           = types.MotifType
	ProteinRecord       = types.ProteinRecord
	ProteinUpdate       = types.ProteinUpdate
	User                = types.User
	StructureClass      = types.StructureClass
	StructurePrediction = types.StructurePrediction
	Analysis            = types.Analysis
	SortField           = types.SortField
	Sort                = types.Sort
	CompareOp           = types.CompareOp
	NumericFilter       = types.NumericFilter
	ProteinQuery        = types.ProteinQuery
	ProteinPage         = types.ProteinPage
	Snapshot            = types.Snapshot
	SnapshotMeta        = types.SnapshotMeta
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProteinStore    = interfaces.ProteinStore
	UserStore       = interfaces.UserStore
	SnapshotStore   = interfaces.SnapshotStore
	AnalysisService = interfaces.AnalysisService
	ProteinService  = interfaces.ProteinService
)

const (
	Helix  = types.Helix
	Strand = types.Strand
	Coil   = types.Coil

	NGlycosylation = types.NGlycosylation
	CaseinKinaseII = types.CaseinKinaseII
	TyrosineKinase = types.TyrosineKinase

	SortByName            = types.SortByName
	SortByCreatedAt       = types.SortByCreatedAt
	SortByMolecularWeight = types.SortByMolecularWeight
	SortBySequenceLength  = types.SortBySequenceLength

	OpGT  = types.OpGT
	OpGTE = types.OpGTE
	OpLT  = types.OpLT
	OpLTE = types.OpLTE
	OpEQ  = types.OpEQ

	SnapshotVersion = types.SnapshotVersion
)

// NewID returns a fresh canonical identifier.
func NewID() string { return types.NewID() }

// StructureClasses lists the classes in tie-break priority order.
var StructureClasses = types.StructureClasses
