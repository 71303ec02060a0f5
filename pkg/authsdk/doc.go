// Package authsdk contains the wire-level types and error taxonomy of the
// authd HTTP API, plus a small client for the four flows: client-credential
// issuance, account-holder issuance, consent exchange and the protected
// balance resource. The server handlers and external consumers share these
// definitions so the contract only exists in one place.
package authsdk
