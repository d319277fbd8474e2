//go:build debug

package timer

// debugBuild selects DebugDurationSec as the session length.
const debugBuild = true
