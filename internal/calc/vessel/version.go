package vessel

// EngineVersion identifies the locked formula set. Results produced by
// different engine versions are not comparable for audit purposes, so any
// change to a formula, a default, or the interval policy must bump this.
const EngineVersion = "1.2.0"
