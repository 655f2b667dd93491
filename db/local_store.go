package db

import "errors"

// ErrKeyNotFound is returned by Get and Take when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// LocalStore is the client-side persistent key-value store, the stand-in
// for the browser's localStorage: auth token, username and the one-shot
// hand-off records between screens.
type LocalStore interface {
	Set(key, value string) error
	Get(key string) (string, error)
	// Take reads and deletes the key in one step. One-shot hand-off keys
	// are consumed this way so a later screen finds nothing.
	Take(key string) (string, error)
	Del(key string) error
	Ping() error
}
