package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cash-card/models"
)

const (
	cashCardTable = "cash_card"
	columnID      = "id"
	columnAmount  = "amount"
)

var cashCardColumns = []string{columnID, columnAmount}

// sortColumns whitelists the properties a page may be ordered by.
var sortColumns = map[string]string{
	models.PropertyID:     columnID,
	models.PropertyAmount: columnAmount,
}

func buildFindByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(cashCardColumns...).
		From(cashCardTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindPageQuery orders by the requested properties and then by id, so
// rows with equal sort keys keep a stable position across pages.
func buildFindPageQuery(b sq.StatementBuilderType, page models.PageRequest) (string, []any, error) {
	orderBy := make([]string, 0, len(page.Sort)+1)
	sortedByID := false

	for _, order := range page.Sort {
		column, ok := sortColumns[order.Property]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedSortProperty, order.Property)
		}

		direction := "ASC"
		if order.Direction == models.Desc {
			direction = "DESC"
		}

		orderBy = append(orderBy, column+" "+direction)
		sortedByID = sortedByID || column == columnID
	}

	if !sortedByID {
		orderBy = append(orderBy, columnID+" ASC")
	}

	query, args, err := b.Select(cashCardColumns...).
		From(cashCardTable).
		OrderBy(strings.Join(orderBy, ", ")).
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertQuery(b sq.StatementBuilderType, card models.CashCard) (string, []any, error) {
	query, args, err := b.Insert(cashCardTable).
		Columns(columnAmount).
		Values(card.Amount).
		Suffix("RETURNING " + columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
