package psqlbuilder

import (
	sq "github.com/Masterminds/squirrel"
)

// builder uses PostgreSQL $N placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) sq.InsertBuilder {
	return builder.Insert(into)
}

func Delete(from string) sq.DeleteBuilder {
	return builder.Delete(from)
}
