/*
This package contains lowish-level APIs for making database queries to our
Postgres database. It streamlines the process of mapping query results to Go
types, while allowing you to write arbitrary SQL queries.

The primary functions are Query and QueryIterator. See the function
documentation for detailed usage.

# Query syntax

Arguments can be provided using placeholders like $1, $2, etc. All arguments
will be safely escaped and mapped from their Go type to the correct Postgres
type. (This is a direct proxy to pgx.)

	itemIDs, err := db.Query[int](ctx, conn,
		`
		SELECT id
		FROM item
		WHERE
			ref = ANY($1)
		`,
		[]string{"EX-001", "EX-002"},
	)

(This also demonstrates a useful tip: if you want to use a slice in your
query, use Postgres arrays instead of IN.)

When querying individual fields, you can simply select the field like so:

	ids, err := db.Query[int](ctx, conn, `SELECT id FROM item`)

To query multiple columns at once, you may use a struct type with
`db:"column_name"` tags, and the special $columns placeholder:

	type Item struct {
		ID          int       `db:"id"`
		Ref         string    `db:"ref"`
		DateCreated time.Time `db:"date_created"`
	}
	items, err := db.Query[Item](ctx, conn, `SELECT $columns FROM ...`)
	// Resulting query:
	// SELECT id, ref, date_created FROM ...

Sometimes a table name prefix is required on each column to disambiguate
between column names, especially when performing a JOIN. In those situations,
you can include the prefix in the $columns placeholder like $columns{prefix}:

	usedItems, err := db.Query[Item](ctx, conn, `
		SELECT $columns{item}
		FROM
			item
			JOIN item_usage AS usage ON usage.item_id = item.id
	`)
	// Resulting query:
	// SELECT item.id, item.ref, item.date_created FROM ...
*/
package db
