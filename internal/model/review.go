package model

import "time"

// CandidateLevel is the seniority the submission is reviewed against.
type CandidateLevel string

const (
	LevelJunior CandidateLevel = "Junior"
	LevelMiddle CandidateLevel = "Middle"
	LevelSenior CandidateLevel = "Senior"
)

// Valid reports whether the level is one of the supported values.
func (l CandidateLevel) Valid() bool {
	switch l {
	case LevelJunior, LevelMiddle, LevelSenior:
		return true
	}
	return false
}

// RepoFile is a single text file fetched from a repository.
type RepoFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ReviewComment is one remark produced by the reviewer, optionally
// attached to a file.
type ReviewComment struct {
	File    string `json:"file,omitempty"`
	Comment string `json:"comment"`
}

// Review is the structured result of analyzing a submission.
type Review struct {
	ID         int64
	FilesFound []string
	Comments   []ReviewComment
	Rating     string
	Conclusion string
	CreatedAt  time.Time
}
