// Package clientip resolves the address of the visitor behind a request.
//
// The address keys the info-mail rate limiter, so which proxy headers are
// trusted is configurable: NewResolver takes the header names in priority
// order, GetIP uses DefaultHeaders (Cloudflare, DigitalOcean,
// X-Forwarded-For, X-Real-IP). Addresses are normalised with net.ParseIP, so
// "::ffff:192.0.2.1" and "192.0.2.1" yield the same key.
package clientip
