package entity

// Report is a workbook written to the reports directory
type Report struct {
	Filename string
	Path     string
	Content  []byte
}

// DispatchSummary counts the outcome of one reminder run
type DispatchSummary struct {
	RunID   string
	Sent    int
	Skipped int
	Failed  int
}
