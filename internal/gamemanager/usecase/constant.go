package usecase

// Log prefixes
const (
	LogPrefixExecute = "internal.gamemanager.usecase.Execute"
	LogPrefixList    = "internal.gamemanager.usecase.ListExecutions"
)

// Listing bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)
