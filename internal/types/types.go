package types

// ScanProgress is a transient progress notification emitted while a scan is
// running. ScannedFolders counts children whose sizing has already completed;
// one event is emitted before each child plus a single terminal event with
// ScannedFolders == TotalFolders and an empty CurrentFolder.
type ScanProgress struct {
	ScannedFolders uint64  `json:"scanned_folders"`
	TotalFolders   uint64  `json:"total_folders"`
	Percent        float64 `json:"percent"`
	CurrentFolder  string  `json:"current_folder"`
}

// CategorizedFolder is one top-level folder of the scan root, with its
// recursive regular-file byte total and semantic category.
type CategorizedFolder struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes uint64 `json:"size_bytes"`
	Category  string `json:"category"`
}

// ScanResult is the terminal output of a scan. Folders are ordered by
// descending SizeBytes; equal sizes keep directory-enumeration order.
type ScanResult struct {
	TotalSizeBytes uint64              `json:"total_size_bytes"`
	Folders        []CategorizedFolder `json:"folders"`
}
