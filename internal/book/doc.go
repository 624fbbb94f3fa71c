// Package book models the document tree and the stdin/stdout JSON envelope
// mdBook uses to talk to preprocessors. It does not look inside chapter
// content.
package book
