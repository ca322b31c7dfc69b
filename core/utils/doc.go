// Package utils provides parsing helpers shared by the HTTP handlers and the CLI.
package utils
