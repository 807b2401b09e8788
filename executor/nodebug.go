//go:build !debug

package executor

func debugLog(string, ...any) {}
