package repository

// RetentionResult reports what one sweep removed.
type RetentionResult struct {
	ForeignDeleted []string
	AgedDeleted    []string
	Errors         []error
}

// RetentionRepository prunes a single-purpose synthesis directory: files
// not matching the frequency prefix and extension are deleted immediately,
// then the oldest period tokens beyond the retention count are removed.
type RetentionRepository interface {
	Sweep(dir, prefix, extension string, keep int) RetentionResult
}
