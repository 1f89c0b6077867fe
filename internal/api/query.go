package api

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"protmotif/internal/domain"
)

const defaultLimit = 10

var (
	listParams   = []string{"limit", "offset", "sort"}
	searchParams = []string{"name", "motif", "limit", "offset", "sort"}
	rangeParams  = []string{"molecularWeight", "sequenceLength"}
)

var sortFields = map[string]domain.SortField{
	"name":            domain.SortByName,
	"createdAt":       domain.SortByCreatedAt,
	"molecularWeight": domain.SortByMolecularWeight,
	"sequenceLength":  domain.SortBySequenceLength,
}

var compareOps = map[string]domain.CompareOp{
	"gt":  domain.OpGT,
	"gte": domain.OpGTE,
	"lt":  domain.OpLT,
	"lte": domain.OpLTE,
	"eq":  domain.OpEQ,
}

// parseListQuery reads limit, offset and sort and rejects anything else.
func parseListQuery(v url.Values) (domain.ProteinQuery, error) {
	for key := range v {
		if !slices.Contains(listParams, key) {
			return domain.ProteinQuery{}, domain.Validationf("Invalid query parameter: %s", key)
		}
	}
	return parsePaging(v)
}

// parseSearchQuery additionally reads name, motif and bracketed numeric
// filters such as molecularWeight[gte]=1000.
func parseSearchQuery(v url.Values) (domain.ProteinQuery, error) {
	var (
		weights []domain.NumericFilter
		lengths []domain.NumericFilter
	)
	for key, values := range v {
		if slices.Contains(searchParams, key) {
			continue
		}
		field, op, ok := splitBracket(key)
		if !ok || !slices.Contains(rangeParams, field) {
			return domain.ProteinQuery{}, domain.Validationf("Invalid query parameter: %s", key)
		}
		cmp, ok := compareOps[op]
		if !ok {
			return domain.ProteinQuery{}, domain.Validationf("Invalid %s query", field)
		}
		for _, raw := range values {
			n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return domain.ProteinQuery{}, domain.Validationf("Invalid %s query", field)
			}
			f := domain.NumericFilter{Op: cmp, Value: n}
			if field == "molecularWeight" {
				weights = append(weights, f)
			} else {
				lengths = append(lengths, f)
			}
		}
	}

	q, err := parsePaging(v)
	if err != nil {
		return domain.ProteinQuery{}, err
	}
	q.Name = strings.TrimSpace(v.Get("name"))
	q.Motif = strings.TrimSpace(v.Get("motif"))
	q.MolecularWeight = weights
	q.SequenceLength = lengths
	return q, nil
}

func parsePaging(v url.Values) (domain.ProteinQuery, error) {
	q := domain.ProteinQuery{Limit: defaultLimit}
	if raw := v.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, domain.Validationf("limit must be at least 1 and offset must not be negative")
		}
		q.Limit = n
	}
	if raw := v.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, domain.Validationf("limit must be at least 1 and offset must not be negative")
		}
		q.Offset = n
	}
	if raw := v.Get("sort"); raw != "" {
		field, dir, _ := strings.Cut(raw, ":")
		sf, ok := sortFields[field]
		if !ok {
			return q, domain.Validationf("Invalid sort field: %s", field)
		}
		q.Sort = domain.Sort{Field: sf, Desc: strings.EqualFold(dir, "desc")}
	}
	return q, nil
}

// splitBracket splits "field[op]" into its parts.
func splitBracket(key string) (field, op string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}
