package engine

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// EnforceOptions controls enforcement applied to split pairs.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxBytes    int
	// IssueSink is an optional callback to receive non-fatal issues.
	IssueSink func(SimpleIssue)
}

// CheckSize fails when the line exceeds MaxBytes (0 = unlimited).
func CheckSize(text string, opt EnforceOptions) error {
	if opt.MaxBytes > 0 && len(text) > opt.MaxBytes {
		si := SimpleIssue{Code: CodeTooLong, Path: "/", Message: "max bytes exceeded", Offset: int64(opt.MaxBytes)}
		return IssueError{si}
	}
	return nil
}

// EnforcePairs applies the duplicate key policy. Later duplicates still
// overwrite earlier ones unless the policy is DupError.
func EnforcePairs(pairs []Pair, opt EnforceOptions) error {
	if opt.OnDuplicate == DupIgnore {
		return nil
	}
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Key]; ok {
			si := SimpleIssue{Code: CodeDuplicateKey, Path: KeyPointer(p.Key), Message: "key '" + p.Key + "' duplicated", Offset: p.Offset}
			if opt.OnDuplicate == DupError {
				return IssueError{si}
			}
			if opt.IssueSink != nil {
				opt.IssueSink(si)
			}
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}
