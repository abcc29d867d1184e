package config

// Specification of requested output format.
// ENUM(plain, css, yaml)
type OutputFmt int
