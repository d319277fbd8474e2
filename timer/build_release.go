//go:build !debug

package timer

const debugBuild = false
