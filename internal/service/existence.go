package service

import (
	"time"

	"gamevault/backend/internal/models"
)

// ExistenceState classifies how an indexed game relates to what is already stored.
type ExistenceState string

const (
	DoesNotExist     ExistenceState = "DOES_NOT_EXIST"
	ExistsButDeleted ExistenceState = "EXISTS_BUT_DELETED"
	ExistsButAltered ExistenceState = "EXISTS_BUT_ALTERED"
	Exists           ExistenceState = "EXISTS"
)

type fieldDiff struct {
	Field     string
	Stored    any
	Candidate any
}

// differences lists the indexed fields in which candidate deviates from stored.
func differences(stored, candidate *models.Game) []fieldDiff {
	var diffs []fieldDiff
	add := func(field string, a, b any) {
		diffs = append(diffs, fieldDiff{Field: field, Stored: a, Candidate: b})
	}

	if stored.FilePath != candidate.FilePath {
		add("file_path", stored.FilePath, candidate.FilePath)
	}
	if stored.Title != candidate.Title {
		add("title", stored.Title, candidate.Title)
	}
	if a, b := epoch(stored.ReleaseDate), epoch(candidate.ReleaseDate); a != b {
		add("release_date", a, b)
	}
	if stored.EarlyAccess != candidate.EarlyAccess {
		add("early_access", stored.EarlyAccess, candidate.EarlyAccess)
	}
	if stored.Version != candidate.Version {
		add("version", stored.Version, candidate.Version)
	}
	if stored.Size != candidate.Size {
		add("size", stored.Size, candidate.Size)
	}
	return diffs
}

// epoch compares dates by instant; a missing date is -1.
func epoch(t *time.Time) int64 {
	if t == nil {
		return -1
	}
	return t.UnixMilli()
}
