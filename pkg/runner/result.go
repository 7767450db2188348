package runner

// FileOutcome is the per-file result of a formatting run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Lines holds the rendered lines for the file.
	Lines []string

	// Words is the number of words the file contributed.
	Words int

	// Written is true when the file was rewritten in place.
	Written bool

	// Unchanged is true when an in-place run found the file already
	// formatted and left it alone.
	Unchanged bool

	// Skipped is true when an in-place rewrite was abandoned because the
	// source changed between read and write.
	Skipped bool

	// Error is set when the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully formatted.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesModified is the number of files rewritten in place.
	FilesModified int

	// FilesUnchanged is the number of in-place files already formatted.
	FilesUnchanged int

	// FilesSkipped is the number of files skipped due to concurrent
	// modification.
	FilesSkipped int

	// LinesEmitted is the total number of rendered lines across all files.
	LinesEmitted int

	// WordsTotal is the total number of words across all files.
	WordsTotal int
}

// Result is the overall runner result. Files are ordered deterministically
// (discovery order, which is sorted by path).
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesEmitted += len(outcome.Lines)
	r.Stats.WordsTotal += outcome.Words

	switch {
	case outcome.Skipped:
		r.Stats.FilesSkipped++
	case outcome.Written:
		r.Stats.FilesModified++
	case outcome.Unchanged:
		r.Stats.FilesUnchanged++
	}
}
