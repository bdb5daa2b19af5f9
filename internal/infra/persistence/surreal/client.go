// Package surreal implements the repository interfaces on SurrealDB.
// Queries are always parameterized; record payloads travel through the
// CBOR codec so datetimes and record ids round-trip in SurrealDB's
// native forms.
package surreal

import (
	"context"
	"net/url"
	"strings"

	"vivaha/config"
	"vivaha/internal/errors"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

// NewClient connects to SurrealDB, authenticates, and selects the
// configured namespace and database.
func NewClient(ctx context.Context, cfg *config.SurrealDBConfig) (*surrealdb.DB, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse surrealdb url")
	}

	conf := connection.NewConfig(u)

	// The default codec mangles time.Time and record ids; the surrealcbor
	// codec keeps both in SurrealDB's own representation.
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, errors.Wrap(err, "connect to surrealdb")
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			return nil, errors.Wrap(err, "surrealdb sign in")
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, errors.Wrap(err, "select namespace/database")
	}

	return db, nil
}

// isNotFound reports whether an error from a record lookup means the
// record is absent rather than the query having failed.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()

	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

// firstResult unwraps the result rows of a single-statement query.
func firstResult[T any](res *[]surrealdb.QueryResult[[]T]) []T {
	if res == nil || len(*res) == 0 {
		return nil
	}

	return (*res)[0].Result
}
