// Package bot contains the in-process simulation bot and its JSON-RPC
// client.
package bot
