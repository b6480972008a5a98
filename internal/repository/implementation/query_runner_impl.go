package implementation

import (
	"context"
	"time"

	"hr-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

const (
	// maxResultRows caps what a single generated query may return. Anything
	// above this is almost certainly a runaway cross join.
	maxResultRows = 500

	queryTimeout = 15 * time.Second
)

type QueryRunnerImpl struct {
	db *gorm.DB
}

func NewQueryRunner(db *gorm.DB) contract.QueryRunner {
	return &QueryRunnerImpl{db: db}
}

func (r *QueryRunnerImpl) Execute(ctx context.Context, query string) ([]map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0)
	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if len(results) >= maxResultRows {
			break
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			v := values[i]
			// database/sql hands back []byte for text columns
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
