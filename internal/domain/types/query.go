package types

// SortField is a protein attribute lists can be ordered by.
type SortField string

const (
	SortByName            SortField = "name"
	SortByCreatedAt       SortField = "createdAt"
	SortByMolecularWeight SortField = "molecularWeight"
	SortBySequenceLength  SortField = "sequenceLength"
)

// Sort is an ordering request. The zero value means newest first.
type Sort struct {
	Field SortField
	Desc  bool
}

// CompareOp is a numeric filter operator.
type CompareOp string

const (
	OpGT  CompareOp = "gt"
	OpGTE CompareOp = "gte"
	OpLT  CompareOp = "lt"
	OpLTE CompareOp = "lte"
	OpEQ  CompareOp = "eq"
)

// NumericFilter constrains a numeric protein attribute.
type NumericFilter struct {
	Op    CompareOp
	Value float64
}

// ProteinQuery describes a page of proteins, optionally filtered.
type ProteinQuery struct {
	Name            string
	Motif           string
	MolecularWeight []NumericFilter
	SequenceLength  []NumericFilter
	Sort            Sort
	Limit           int
	Offset          int
}

// ProteinPage is one page of a query result plus the unpaged total.
type ProteinPage struct {
	Proteins []Protein `json:"proteins"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
