package usecase

// Test-only exports so the external usecase_test package can reference
// unexported cache helpers without creating an import cycle with mocks.
var ScoreCacheKey = scoreCacheKey

const ScoreCacheTTL = scoreCacheTTL
