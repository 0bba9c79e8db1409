package service

import (
	"time"

	"github.com/diskusiapp/diskusi/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleLike flips the like relation between the principal and a post and
// returns whether it is now active.
//
// The write is a single transaction around "insert, on conflict do nothing;
// if nothing inserted, delete". Two concurrent toggles for the same pair
// serialize on the composite primary key instead of both observing "absent"
// and both inserting.
func (s *Service) ToggleLike(principal Principal, postID string) (bool, error) {
	if err := s.requirePost(postID); err != nil {
		return false, err
	}
	return s.toggleRelation(
		&model.PostLike{UserID: principal.UserID, PostID: postID, CreatedAt: time.Now()},
		principal.UserID, postID)
}

// ToggleBookmark flips the bookmark relation, same contract as ToggleLike.
func (s *Service) ToggleBookmark(principal Principal, postID string) (bool, error) {
	if err := s.requirePost(postID); err != nil {
		return false, err
	}
	return s.toggleRelation(
		&model.PostBookmark{UserID: principal.UserID, PostID: postID, CreatedAt: time.Now()},
		principal.UserID, postID)
}

func (s *Service) toggleRelation(row interface{}, userID, postID string) (bool, error) {
	active := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			active = true
			return nil
		}
		// Row was already there: this toggle turns the relation off.
		return tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(row).Error
	})
	if err != nil {
		return false, errors.Wrap(err, "toggle relation")
	}
	return active, nil
}
