package driver

import (
	"fmt"

	"rawfix/internal/diag"
	"rawfix/internal/lexer"
	"rawfix/internal/source"
	"rawfix/internal/token"
)

// TokenizeResult holds the token stream of one file plus any lexical
// diagnostics produced while scanning it.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file from disk.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("driver: load %s: %w", path, err)
	}

	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)

	file := fs.Get(fileID)
	tokens := lexer.Tokens(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
