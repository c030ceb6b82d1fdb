// Package client composes the connection manager, retry executor and
// checksum calculator into the resilient FTP façade. Its Client type is what
// the CLI commands drive: file transfers with integrity verification, and a
// bounded set of named session operations dispatched through one retry
// envelope.
package client
