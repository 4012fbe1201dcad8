// Package branding centralizes product naming so commands, telemetry, and
// tool descriptions agree on how the product presents itself.
package branding

// AppName is the user-facing product name.
const AppName = "AdPulse"
