// Package source retrieves raw configuration content on behalf of the store.
//
// The primary abstraction is [Reader], which decouples loading from the
// transport behind a reference string. The package ships a filesystem
// implementation ([FileReader]), an HTTP(S) implementation over resty
// ([HTTPReader]), and a scheme-dispatching composite ([New]) the store uses
// by default.
//
// Every failure is reported through a wrapped [ErrSourceUnreadable] so that
// callers can use [errors.Is] without knowing which transport served the
// reference.
package source
