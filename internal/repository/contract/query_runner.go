package contract

import "context"

// QueryRunner executes a single sanitized SELECT statement and returns the
// result rows. It is only ever handed statements that already passed the SQL
// guard, and it runs them on a read-only connection.
type QueryRunner interface {
	Execute(ctx context.Context, query string) ([]map[string]interface{}, error)
}
