// Package gaps performs the authenticated retrieval of the raw grade report
// from the GAPS portal.
//
// The portal authenticates through a plain form POST and keys the session on
// a cookie, so the client carries a cookie jar across the login request and
// the AJAX refresh request that returns the grades. This package is a pure
// I/O boundary; it never inspects the payload it returns.
package gaps
