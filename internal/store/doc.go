// Package store persists one record per successful pipeline run. The
// pipeline only ever creates records; updates and deletes are left to the
// surrounding system's retention policy.
package store
