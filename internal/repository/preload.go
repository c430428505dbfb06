package repository

import "gorm.io/gorm"

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("created_at ASC")
}

func byCreatedAt(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func byAssignedAt(db *gorm.DB) *gorm.DB {
	return db.Order("assigned_at ASC")
}

// withCardDetail preloads the fixed card include shape under prefix
// ("" for cards themselves, "Cards." for lists, "Lists.Cards." for boards).
func withCardDetail(db *gorm.DB, prefix string) *gorm.DB {
	return db.
		Preload(prefix+"Assignees", byAssignedAt).
		Preload(prefix + "Assignees.TeamMember").
		Preload(prefix + "Labels.Label").
		Preload(prefix+"Checklist", byPosition)
}

// withBoardDetail preloads lists -> cards -> assignees/labels/checklist, members and labels.
func withBoardDetail(db *gorm.DB) *gorm.DB {
	db = db.
		Preload("Lists", byPosition).
		Preload("Lists.Cards", byPosition)
	return withCardDetail(db, "Lists.Cards.").
		Preload("Members", byCreatedAt).
		Preload("Labels")
}
