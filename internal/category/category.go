// Package category maps top-level folder names to semantic categories.
package category

// Category is a semantic label assigned to a folder by exact name match.
type Category string

const (
	VirtualMachines Category = "Virtual Machines & Containers"
	PackageCaches   Category = "Package Caches"
	BuildArtifacts  Category = "Build Artifacts"
	SystemLibraries Category = "System Libraries"
	Trash           Category = "Trash"
	UserFiles       Category = "User Files"
	Other           Category = "Other"
)

// byName is the fixed classification table. Matching is case-sensitive and
// exact against the folder's base name; no patterns or globs.
var byName = map[string]Category{
	".colima":    VirtualMachines,
	".docker":    VirtualMachines,
	".lima":      VirtualMachines,
	".orbstack":  VirtualMachines,
	".multipass": VirtualMachines,

	"node_modules": PackageCaches,
	".npm":         PackageCaches,
	".yarn":        PackageCaches,
	".pnpm-store":  PackageCaches,
	".rustup":      PackageCaches,
	".cargo":       PackageCaches,
	".gradle":      PackageCaches,
	".m2":          PackageCaches,
	".cocoapods":   PackageCaches,
	".pub-cache":   PackageCaches,
	".nuget":       PackageCaches,

	"target":      BuildArtifacts,
	"dist":        BuildArtifacts,
	"build":       BuildArtifacts,
	".next":       BuildArtifacts,
	".turbo":      BuildArtifacts,
	"__pycache__": BuildArtifacts,
	".angular":    BuildArtifacts,
	"out":         BuildArtifacts,
	".build":      BuildArtifacts,

	"Library": SystemLibraries,

	".Trash": Trash,

	"Applications": UserFiles,
	"Desktop":      UserFiles,
	"Documents":    UserFiles,
	"Downloads":    UserFiles,
	"Movies":       UserFiles,
	"Music":        UserFiles,
	"Pictures":     UserFiles,
	"Public":       UserFiles,
}

// Classify returns the category for a folder base name, or Other when the
// name is not in the table.
func Classify(name string) Category {
	if c, ok := byName[name]; ok {
		return c
	}
	return Other
}
