// Package clause builds a filtering WHERE clause from the distinct values of
// one table column and merges it into a base query.
//
// The merge is textual. The base query is only searched for the word "where"
// (case-insensitive) to decide between WHERE and AND:
//
//	""                          → SELECT * FROM table_name WHERE col IN (1, 2);
//	"SELECT * FROM t"           → SELECT * FROM t WHERE col IN (1, 2);
//	"SELECT * FROM t WHERE x=1" → SELECT * FROM t WHERE x=1 AND col IN (1, 2);
//
// IN lists are left unquoted only when every value is a finite number.
// LIKE clauses match each value as a substring and are joined with OR.
package clause
