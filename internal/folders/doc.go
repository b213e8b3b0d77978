// Package folders materializes the season/episode/shot directory tree for a
// list of clip records.
//
// Creation is idempotent: directories that already exist are counted and left
// untouched. Each record is handled independently, parent before child, so a
// failure on one record skips only that record's remaining levels. There is no
// rollback; the returned Report lists what was created, what already existed,
// and what failed.
package folders
