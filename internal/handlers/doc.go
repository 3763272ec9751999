// Package handlers implements the HTTP API of the clause builder.
//
// Handlers validate requests, delegate to the services layer and convert
// models to the API types of api/v1.
//
// # API Endpoints
//
//	┌────────┬──────────────────────────┬────────────────────────────────────────┐
//	│ Method │ Endpoint                 │ Description                            │
//	├────────┼──────────────────────────┼────────────────────────────────────────┤
//	│ GET    │ /workspaces              │ List workspaces                        │
//	│ POST   │ /workspaces              │ Upload a CSV or Excel file (multipart) │
//	│ POST   │ /workspaces/query        │ Load the result of a warehouse query   │
//	│ GET    │ /workspaces/{id}         │ Header, columns and row preview        │
//	│ DELETE │ /workspaces/{id}         │ Drop a workspace                       │
//	│ POST   │ /workspaces/{id}/clause  │ Generate the filtered query            │
//	└────────┴──────────────────────────┴────────────────────────────────────────┘
//
// POST /workspaces/{id}/clause
//
// Request:
//
//	{
//	    "column": "country",
//	    "operator": "NOT IN",               // IN (default), NOT IN, LIKE, NOT LIKE
//	    "baseQuery": "SELECT * FROM users"  // optional
//	}
//
// Response:
//
//	{ "sql": "SELECT * FROM users WHERE country NOT IN ('FR', 'IT');" }
//
// # Error Handling
//
// Errors are returned as { "error": "message" }.
//
//	┌─────────────────────────────────────────┬────────┐
//	│ Error Type                              │ Status │
//	├─────────────────────────────────────────┼────────┤
//	│ ParseError, NoColumnSelectedError,      │ 400    │
//	│ EmptyColumnValuesError, Unsupported*    │        │
//	│ ResourceNotFoundError                   │ 404    │
//	│ MaxBytesError                           │ 413    │
//	│ WarehouseError                          │ 502    │
//	│ Internal error                          │ 500    │
//	└─────────────────────────────────────────┴────────┘
package handlers
