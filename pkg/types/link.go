package types

// Link maps one entry of a package to the path where its symlink lives
type Link struct {
	// Source is the absolute path of the entry inside the package
	Source string `json:"source" yaml:"source"`

	// Target is the absolute (or expanded) destination of the symlink
	Target string `json:"target" yaml:"target"`

	// RelPath is Source relative to the package root
	RelPath string `json:"rel_path" yaml:"rel_path"`

	// IsDir reports whether the entry is a directory (linked as a unit)
	IsDir bool `json:"is_dir" yaml:"is_dir"`
}

// LinkOp is the operation applied to a link
type LinkOp string

const (
	LinkOpCreate LinkOp = "create"
	LinkOpRemove LinkOp = "remove"
)

// LinkOutcome describes what happened to a target path
type LinkOutcome string

const (
	OutcomeCreated      LinkOutcome = "created"
	OutcomeReplaced     LinkOutcome = "replaced"
	OutcomeWouldCreate  LinkOutcome = "would_create"
	OutcomeRemoved      LinkOutcome = "removed"
	OutcomeForceRemoved LinkOutcome = "force_removed"
	OutcomeAbsent       LinkOutcome = "absent"
	OutcomeWouldRemove  LinkOutcome = "would_remove"
)
