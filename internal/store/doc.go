// Package store defines interfaces for data storage operations. These
// interfaces abstract the underlying storage mechanism from the
// application's core logic, so handlers stay independent of how and where
// task state is held.
package store
