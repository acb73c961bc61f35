package retention

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
)

// periodTokenIndex is the underscore-delimited segment carrying the
// YYYYMM period token in a synthesis file name.
const periodTokenIndex = 3

// RetentionRepositoryImpl implements the RetentionRepository.
type RetentionRepositoryImpl struct{}

// NewRetentionRepository creates a new RetentionRepository implementation.
func NewRetentionRepository() repository.RetentionRepository {
	return &RetentionRepositoryImpl{}
}

// Sweep prunes a single-purpose synthesis directory. Files not matching
// the frequency prefix, the extension or the naming convention are deleted
// immediately; then the files carrying the oldest period tokens are
// deleted until at most keep distinct tokens remain. A failed delete is
// recorded and does not stop the sweep.
func (r *RetentionRepositoryImpl) Sweep(dir, prefix, extension string, keep int) repository.RetentionResult {
	var result repository.RetentionResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Errors = append(result.Errors, err)
		return result
	}

	tokenByName := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		token, ok := matchToken(name, prefix, extension)
		if !ok {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				result.Errors = append(result.Errors, err)
			} else {
				result.ForeignDeleted = append(result.ForeignDeleted, name)
			}
			continue
		}
		tokenByName[name] = token
	}

	distinct := map[string]bool{}
	for _, token := range tokenByName {
		distinct[token] = true
	}
	tokens := make([]string, 0, len(distinct))
	for token := range distinct {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for len(tokens) > keep {
		oldest := tokens[0]
		tokens = tokens[1:]
		for name, token := range tokenByName {
			if token != oldest {
				continue
			}
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				result.Errors = append(result.Errors, err)
			} else {
				result.AgedDeleted = append(result.AgedDeleted, name)
			}
			delete(tokenByName, name)
		}
	}

	return result
}

// matchToken reports whether a file name matches the synthesis naming
// convention and returns its period token.
func matchToken(name, prefix, extension string) (string, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, extension) {
		return "", false
	}
	parts := strings.Split(name, "_")
	if len(parts) <= periodTokenIndex {
		return "", false
	}
	return parts[periodTokenIndex], true
}
