package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"protmotif/internal/domain"
)

var sortColumns = map[domain.SortField]string{
	domain.SortByName:            "name",
	domain.SortByCreatedAt:       "created_at",
	domain.SortByMolecularWeight: "molecular_weight",
	domain.SortBySequenceLength:  "sequence_length",
}

var compareOps = map[domain.CompareOp]string{
	domain.OpGT:  ">",
	domain.OpGTE: ">=",
	domain.OpLT:  "<",
	domain.OpLTE: "<=",
	domain.OpEQ:  "=",
}

// ListProteins returns one page of proteins matching q and the total number
// of matches. A zero Sort orders newest first.
func (s *ProteinDBStore) ListProteins(ctx context.Context, q domain.ProteinQuery) (domain.ProteinPage, error) {
	filter, err := proteinFilter(s.db.Dialector.Name(), q)
	if err != nil {
		return domain.ProteinPage{}, err
	}
	order, err := proteinOrder(q.Sort)
	if err != nil {
		return domain.ProteinPage{}, err
	}

	db := s.db.WithContext(ctx)
	var total int64
	if err := db.Model(&proteinRow{}).Scopes(filter).Count(&total).Error; err != nil {
		return domain.ProteinPage{}, translate("count proteins", "protein", err)
	}

	tx := db.Scopes(filter).
		Order(order).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	var rows []proteinRow
	err = tx.Find(&rows).Error
	if err != nil {
		return domain.ProteinPage{}, translate("list proteins", "protein", err)
	}

	page := domain.ProteinPage{
		Proteins: make([]domain.Protein, 0, len(rows)),
		Total:    total,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	for _, r := range rows {
		page.Proteins = append(page.Proteins, r.toDomain())
	}
	return page, nil
}

func proteinOrder(s domain.Sort) (clause.OrderByColumn, error) {
	if s.Field == "" {
		return clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}, nil
	}
	col, ok := sortColumns[s.Field]
	if !ok {
		return clause.OrderByColumn{}, domain.Validationf("invalid sort field: %s", s.Field)
	}
	return clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: s.Desc}, nil
}

func proteinFilter(dialect string, q domain.ProteinQuery) (func(*gorm.DB) *gorm.DB, error) {
	var conds []func(*gorm.DB) *gorm.DB
	if q.Name != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Name)) + "%"
		conds = append(conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(`LOWER(proteins.name) LIKE ? ESCAPE '\'`, pattern)
		})
	}
	if q.Motif != "" {
		where, arg, err := motifCondition(dialect, q.Motif)
		if err != nil {
			return nil, err
		}
		conds = append(conds, func(db *gorm.DB) *gorm.DB { return db.Where(where, arg) })
	}
	for col, filters := range map[string][]domain.NumericFilter{
		"molecular_weight": q.MolecularWeight,
		"sequence_length":  q.SequenceLength,
	} {
		for _, f := range filters {
			op, ok := compareOps[f.Op]
			if !ok {
				return nil, domain.Validationf("invalid comparison operator: %s", f.Op)
			}
			where := fmt.Sprintf("proteins.%s %s ?", col, op)
			value := f.Value
			conds = append(conds, func(db *gorm.DB) *gorm.DB { return db.Where(where, value) })
		}
	}
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range conds {
			db = c(db)
		}
		return db
	}, nil
}

const motifExists = `EXISTS (SELECT 1 FROM fragments f JOIN motifs m ON m.fragment_id = f.id ` +
	`WHERE f.protein_id = proteins.id AND %s)`

// motifCondition matches stored motif patterns against motif. PostgreSQL
// treats motif as a case-insensitive regular expression; SQLite has no
// regex operator and matches it as a case-insensitive substring.
func motifCondition(dialect, motif string) (string, string, error) {
	if dialect == DriverPostgres {
		if _, err := regexp.Compile(motif); err != nil {
			return "", "", domain.Validationf("Invalid motif query")
		}
		return fmt.Sprintf(motifExists, "m.motif_pattern ~* ?"), motif, nil
	}
	return fmt.Sprintf(motifExists, `m.motif_pattern LIKE ? ESCAPE '\'`),
		"%" + escapeLike(strings.ToUpper(motif)) + "%", nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
