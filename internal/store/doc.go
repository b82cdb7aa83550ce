// Package store persists the catalog of projects and their
// supervisors in SQLite.
//
// A supervisor names a managed process, the path of its log file, and
// the parsing template for that file. The store is plain CRUD: log
// reading itself never touches the database and stays in
// internal/logs.
package store
