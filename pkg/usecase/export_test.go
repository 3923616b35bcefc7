package usecase

// PruneRetention is exported for testing
var PruneRetention = (*PredictionUseCase).pruneRetention
