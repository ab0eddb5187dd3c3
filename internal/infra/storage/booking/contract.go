package booking

import "github.com/jtmanningm/ezbiz-booking/pkg/dbmetrics"

// Reuse the dbmetrics query interfaces so the repository works over a plain
// *sql.DB or the instrumented wrapper alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
