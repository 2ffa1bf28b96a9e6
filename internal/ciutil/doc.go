// Package ciutil detects CI environments and resolves settings that can be
// supplied under several environment variable names.
package ciutil
