// Package tabular turns delimited text, Excel workbooks and query results into
// a Table: a header row plus rows of string cells.
//
// # Parsing text
//
// Parse normalizes line endings, drops blank lines and splits every remaining
// line with SplitLine. The first line is the header.
//
// SplitLine is a single pass over the line with an inQuotes flag:
//
//	"x,y",z            → [x,y] [z]
//	"he said ""hi"""   → [he said "hi"]
//	  a ,  b           → [a] [b]
//
// A doubled quote inside a quoted section is a literal quote. An unterminated
// quote is not an error: the rest of the line ends up in the last field.
// Rows are not required to have as many cells as the header.
//
// # Files
//
// ParseFile picks a reader from the file name:
//
//	┌──────────────────┬──────────────────────────────────────────┐
//	│ Extension        │ Reader                                   │
//	├──────────────────┼──────────────────────────────────────────┤
//	│ .csv .txt        │ Parse                                    │
//	│ .xlsx .xlsm      │ ParseExcel (first sheet)                 │
//	│ + .gz .zst .xz   │ decompressed first, then as above        │
//	└──────────────────┴──────────────────────────────────────────┘
//
// # Distinct values
//
// Table.DistinctValues trims each cell of a column, drops empty and absent
// cells, and keeps the first occurrence of every value in row order.
package tabular
