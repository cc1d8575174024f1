// Package testutil contains shared helpers for roundtable's tests.
package testutil
